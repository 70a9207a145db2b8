package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arthlor/yeser-api/internal/repository"
	"github.com/arthlor/yeser-api/pkg/streak"
)

type ReminderService struct {
	streaksRepo repository.StreaksRepositoryI
	usersRepo   repository.UsersRepositoryI
	notifier    NotifierI
	translators map[string]streak.Translator
}

func NewReminderService(streaksRepo repository.StreaksRepositoryI, usersRepo repository.UsersRepositoryI, notifier NotifierI) *ReminderService {
	if streaksRepo == nil || usersRepo == nil || notifier == nil {
		log.Fatal("on reminder service provided nil deps")
	}
	return &ReminderService{
		streaksRepo: streaksRepo,
		usersRepo:   usersRepo,
		notifier:    notifier,
		translators: map[string]streak.Translator{
			"en": streak.EnglishTranslator(),
			"tr": streak.TurkishTranslator(),
		},
	}
}

// SendGraceReminders notifies everyone whose streak is in today's grace
// window and hasn't been reminded yet. One bad user never aborts the sweep.
func (rs *ReminderService) SendGraceReminders(ctx context.Context, now time.Time) error {
	yesterday := truncateToDay(now.AddDate(0, 0, -1))
	pending, err := rs.streaksRepo.GetPendingReminders(ctx, yesterday)
	if err != nil {
		return errors.New("streaks repository error: " + err.Error())
	}
	for _, record := range pending {
		status := streak.EvaluateStatus(record, now, rs.translatorFor(ctx, record.UserID))
		if !status.CanExtendToday {
			continue
		}
		if err = rs.notifier.Notify(ctx, record.UserID, status.StatusMessage); err != nil {
			slog.Error("sending reminder failed", slog.String("uid", record.UserID.String()), slog.String("error", err.Error()))
			continue
		}
		if err = rs.streaksRepo.MarkReminderSent(ctx, record.UserID); err != nil {
			slog.Error("marking reminder sent failed", slog.String("uid", record.UserID.String()), slog.String("error", err.Error()))
		}
	}
	return nil
}

// ResetDaily clears reminder flags at day rollover.
func (rs *ReminderService) ResetDaily(ctx context.Context) error {
	if err := rs.streaksRepo.ResetReminderFlags(ctx); err != nil {
		return errors.New("streaks repository error: " + err.Error())
	}
	return nil
}

func (rs *ReminderService) translatorFor(ctx context.Context, uid uuid.UUID) streak.Translator {
	user, err := rs.usersRepo.FindByID(ctx, uid)
	if err != nil {
		return rs.translators["en"]
	}
	if tr, ok := rs.translators[user.Locale]; ok {
		return tr
	}
	return rs.translators["en"]
}

// LogNotifier is the default notifier: structured log lines instead of a push
// gateway. The mobile client schedules real local notifications on-device.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, uid uuid.UUID, message string) error {
	slog.Info("streak reminder", slog.String("uid", uid.String()), slog.String("message", message))
	return nil
}
