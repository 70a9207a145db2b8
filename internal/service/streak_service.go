package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/arthlor/yeser-api/internal/error_values"
	"github.com/arthlor/yeser-api/internal/repository"
	"github.com/arthlor/yeser-api/pkg/entity"
	"github.com/arthlor/yeser-api/pkg/streak"
)

type StreakService struct {
	streaksRepo repository.StreaksRepositoryI
	// Locale-keyed milestone tables, built once and never mutated. A new
	// locale means a new table value, so concurrent readers never observe a
	// half-built one.
	tables      map[string][]entity.Milestone
	translators map[string]streak.Translator
}

func NewStreakService(streaksRepo repository.StreaksRepositoryI) *StreakService {
	if streaksRepo == nil {
		log.Fatal("provided nil streaksRepo")
	}
	translators := map[string]streak.Translator{
		"en": streak.EnglishTranslator(),
		"tr": streak.TurkishTranslator(),
	}
	tables := make(map[string][]entity.Milestone, len(translators))
	for locale, tr := range translators {
		tables[locale] = streak.BuildMilestoneTable(tr)
	}
	return &StreakService{
		streaksRepo: streaksRepo,
		tables:      tables,
		translators: translators,
	}
}

func (ss *StreakService) translator(locale string) streak.Translator {
	if tr, ok := ss.translators[locale]; ok {
		return tr
	}
	return ss.translators["en"]
}

func (ss *StreakService) table(locale string) []entity.Milestone {
	if table, ok := ss.tables[locale]; ok {
		return table
	}
	return ss.tables["en"]
}

// GetStatus reads the streak record and runs the pure status engine against
// it. A missing record is a valid state: the user simply has no streak yet.
func (ss *StreakService) GetStatus(ctx context.Context, uid uuid.UUID, locale string, now time.Time) (entity.StreakStatus, error) {
	record, err := ss.streaksRepo.GetByUserID(ctx, uid)
	if err != nil && !errors.Is(err, errorvalues.ErrStreakNotFound) {
		return entity.StreakStatus{}, errors.New("streaks repository error: " + err.Error())
	}
	return streak.EvaluateStatus(record, now, ss.translator(locale)), nil
}

func (ss *StreakService) GetMilestoneProgress(ctx context.Context, uid uuid.UUID, locale string) (entity.MilestoneProgress, error) {
	record, err := ss.streaksRepo.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStreakNotFound) {
			record = &entity.Streak{UserID: uid}
		} else {
			return entity.MilestoneProgress{}, errors.New("streaks repository error: " + err.Error())
		}
	}
	return streak.EvaluateProgress(ss.table(locale), record.CurrentStreak, record.LongestStreak), nil
}

func (ss *StreakService) GetCategoryProgress(ctx context.Context, uid uuid.UUID, locale string) ([]entity.CategoryProgress, error) {
	record, err := ss.streaksRepo.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStreakNotFound) {
			record = &entity.Streak{UserID: uid}
		} else {
			return nil, errors.New("streaks repository error: " + err.Error())
		}
	}
	return streak.CategoryProgress(ss.table(locale), record.CurrentStreak), nil
}
