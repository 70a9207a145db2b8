package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/arthlor/yeser-api/internal/error_values"
	"github.com/arthlor/yeser-api/internal/repository"
	"github.com/arthlor/yeser-api/pkg/entity"
)

const dateLayout = "2006-01-02"

type EntriesService struct {
	entriesRepo repository.EntriesRepositoryI
	streaksRepo repository.StreaksRepositoryI
}

func NewEntriesService(entriesRepo repository.EntriesRepositoryI, streaksRepo repository.StreaksRepositoryI) *EntriesService {
	if entriesRepo == nil || streaksRepo == nil {
		log.Fatal("on entries service provided nil repos")
	}
	return &EntriesService{
		entriesRepo: entriesRepo,
		streaksRepo: streaksRepo,
	}
}

func (serv *EntriesService) CreateEntry(ctx context.Context, uid uuid.UUID, req *CreateEntryRequest) (*entity.Entry, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			if hasTag(validationError, "not_blank") {
				return nil, errorvalues.ErrEmptyContent
			}
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	now := time.Now()
	entryDate := req.EntryDate
	if entryDate.IsZero() {
		entryDate = now
	}
	entryDate = truncateToDay(entryDate)
	if entryDate.After(now) {
		return nil, errorvalues.ErrEntryDateInFuture
	}

	// Only the first entry of a day qualifies for the streak
	alreadyHasEntry, err := serv.entriesRepo.ExistsForDate(ctx, uid, entryDate)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}

	id, err := serv.entriesRepo.Create(ctx, &entity.Entry{
		UserID:    uid,
		Content:   strings.TrimSpace(req.Content),
		EntryDate: entryDate,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	entry, err := serv.entriesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}

	// Backdated entries never extend the streak; the grace-window rule only
	// applies to today's qualifying entry.
	if !alreadyHasEntry && entryDate.Format(dateLayout) == now.Format(dateLayout) {
		if err = serv.advanceStreak(ctx, uid, entryDate); err != nil {
			return nil, err
		}
	}
	return entry, nil
}

// advanceStreak applies the backend side of the streak invariant: same-day
// entries are a no-op, a yesterday streak grows by one, anything else starts
// over at one. Longest streak only ever grows.
func (serv *EntriesService) advanceStreak(ctx context.Context, uid uuid.UUID, entryDate time.Time) error {
	record, err := serv.streaksRepo.GetByUserID(ctx, uid)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrStreakNotFound) {
			return errors.New("streaks repository error: " + err.Error())
		}
		if err = serv.streaksRepo.Create(ctx, uid); err != nil {
			return errors.New("streaks repository error: " + err.Error())
		}
		record = &entity.Streak{UserID: uid}
	}

	newStreak := 1
	if record.LastEntryDate != nil {
		switch record.LastEntryDate.Format(dateLayout) {
		case entryDate.Format(dateLayout):
			return nil
		case entryDate.AddDate(0, 0, -1).Format(dateLayout):
			newStreak = record.CurrentStreak + 1
		}
	}
	longest := record.LongestStreak
	if newStreak > longest {
		longest = newStreak
	}
	if err = serv.streaksRepo.RecordEntry(ctx, uid, newStreak, longest, entryDate); err != nil {
		return errors.New("streaks repository error: " + err.Error())
	}
	return nil
}

func (serv *EntriesService) GetEntry(ctx context.Context, entryID, userID uuid.UUID) (*entity.Entry, error) {
	entry, err := serv.entriesRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	if entry.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return entry, nil
}

func (serv *EntriesService) GetUserEntries(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Entry, error) {
	entries, err := serv.entriesRepo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	return entries, nil
}

func (serv *EntriesService) DeleteEntry(ctx context.Context, entryID, userID uuid.UUID) error {
	entry, err := serv.entriesRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return err
		}
		return errors.New("entries repository error: " + err.Error())
	}
	if entry.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	err = serv.entriesRepo.Delete(ctx, entryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return err
		}
		return errors.New("entries repository error: " + err.Error())
	}
	return nil
}

func hasTag(errs validator.ValidationErrors, tag string) bool {
	for _, fieldErr := range errs {
		if fieldErr.Tag() == tag {
			return true
		}
	}
	return false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
