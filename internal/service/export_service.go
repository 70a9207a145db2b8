package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/arthlor/yeser-api/internal/error_values"
	"github.com/arthlor/yeser-api/internal/repository"
	"github.com/arthlor/yeser-api/pkg/entity"
	"github.com/arthlor/yeser-api/pkg/streak"
)

// ExportDocument is the assembled full-journal export the mobile app turns
// into a shareable file.
type ExportDocument struct {
	Email        string                   `json:"email"`
	GeneratedAt  time.Time                `json:"generated_at"`
	TotalEntries int                      `json:"total_entries"`
	Streak       *entity.Streak           `json:"streak,omitempty"`
	Milestones   entity.MilestoneProgress `json:"milestones"`
	Entries      []*entity.Entry          `json:"entries"`
}

type ExportService struct {
	usersRepo   repository.UsersRepositoryI
	entriesRepo repository.EntriesRepositoryI
	streaksRepo repository.StreaksRepositoryI
	tables      map[string][]entity.Milestone
}

func NewExportService(usersRepo repository.UsersRepositoryI, entriesRepo repository.EntriesRepositoryI, streaksRepo repository.StreaksRepositoryI) *ExportService {
	if usersRepo == nil || entriesRepo == nil || streaksRepo == nil {
		log.Fatal("on export service provided nil repos")
	}
	return &ExportService{
		usersRepo:   usersRepo,
		entriesRepo: entriesRepo,
		streaksRepo: streaksRepo,
		tables: map[string][]entity.Milestone{
			"en": streak.BuildMilestoneTable(streak.EnglishTranslator()),
			"tr": streak.BuildMilestoneTable(streak.TurkishTranslator()),
		},
	}
}

func (es *ExportService) BuildJSON(ctx context.Context, uid uuid.UUID, locale string, now time.Time) ([]byte, error) {
	user, err := es.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	entries, err := es.entriesRepo.GetAllByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	total, err := es.entriesRepo.CountByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	record, err := es.streaksRepo.GetByUserID(ctx, uid)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrStreakNotFound) {
			return nil, errors.New("streaks repository error: " + err.Error())
		}
		record = nil
	}

	table, ok := es.tables[locale]
	if !ok {
		table = es.tables["en"]
	}
	currentStreak, longestStreak := 0, 0
	if record != nil {
		currentStreak, longestStreak = record.CurrentStreak, record.LongestStreak
	}
	doc := ExportDocument{
		Email:        user.Email,
		GeneratedAt:  now,
		TotalEntries: total,
		Streak:       record,
		Milestones:   streak.EvaluateProgress(table, currentStreak, longestStreak),
		Entries:      entries,
	}
	data, err := sonic.ConfigDefault.Marshal(&doc)
	if err != nil {
		return nil, errors.New("export marshaling error: " + err.Error())
	}
	return data, nil
}
