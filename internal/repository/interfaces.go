package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/arthlor/yeser-api/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's locale preference
	UpdateLocale(ctx context.Context, uid uuid.UUID, locale string) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type EntriesRepositoryI interface {
	// Creates new gratitude entry. Only UserID, Content, EntryDate are necessary
	Create(ctx context.Context, entry *entity.Entry) (uuid.UUID, error)
	// Searches entry with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)
	// Lists entries owned by user with uid, newest first. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Entry, error)
	// Lists every entry of the user, oldest first. Used by export assembly
	GetAllByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Entry, error)
	// Inspects if user already has an entry on date
	ExistsForDate(ctx context.Context, uid uuid.UUID, date time.Time) (bool, error)
	// Returns total count of user's entries
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
	// Deletes entry with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type StreaksRepositoryI interface {
	// Returns the user's streak record
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Streak, error)
	// Creates zeroed streak record for a fresh user
	Create(ctx context.Context, uid uuid.UUID) error
	// Persists the streak counters after a qualifying entry
	RecordEntry(ctx context.Context, uid uuid.UUID, currentStreak, longestStreak int, entryDate time.Time) error
	// Lists streaks whose last entry was on lastEntryDate and that still need a reminder
	GetPendingReminders(ctx context.Context, lastEntryDate time.Time) ([]*entity.Streak, error)
	// Flags that today's reminder went out
	MarkReminderSent(ctx context.Context, uid uuid.UUID) error
	// Clears reminder flags at day rollover
	ResetReminderFlags(ctx context.Context) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
