package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arthlor/yeser-api/pkg/entity"
)

type RegisterRequest struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=8,max=72"`
	Locale   string `validate:"omitempty,oneof=en tr"`
}

type CreateEntryRequest struct {
	Content   string `validate:"required,not_blank,max=4000"`
	EntryDate time.Time
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateLocale(ctx context.Context, id uuid.UUID, locale string) error
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type EntriesServiceI interface {
	// Stores a gratitude entry and advances the streak when it is the first
	// qualifying entry of the current day
	CreateEntry(ctx context.Context, uid uuid.UUID, req *CreateEntryRequest) (*entity.Entry, error)
	GetEntry(ctx context.Context, entryID, userID uuid.UUID) (*entity.Entry, error)
	GetUserEntries(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Entry, error)
	DeleteEntry(ctx context.Context, entryID, userID uuid.UUID) error
}

type StreakServiceI interface {
	// Derives the display status of the user's streak at the given instant
	GetStatus(ctx context.Context, uid uuid.UUID, locale string, now time.Time) (entity.StreakStatus, error)
	GetMilestoneProgress(ctx context.Context, uid uuid.UUID, locale string) (entity.MilestoneProgress, error)
	GetCategoryProgress(ctx context.Context, uid uuid.UUID, locale string) ([]entity.CategoryProgress, error)
}

type ExportServiceI interface {
	// Assembles the user's whole journal into a JSON document
	BuildJSON(ctx context.Context, uid uuid.UUID, locale string, now time.Time) ([]byte, error)
}

// NotifierI delivers streak reminders. The push-notification SDK lives on the
// client; server side this is a port with a log-backed default.
type NotifierI interface {
	Notify(ctx context.Context, uid uuid.UUID, message string) error
}
