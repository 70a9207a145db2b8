// Package jobs runs the background cron tasks: the evening grace-period
// reminder sweep and the after-midnight reminder-flag reset.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/arthlor/yeser-api/internal/service"
)

type Scheduler struct {
	cron            *cron.Cron
	reminderService *service.ReminderService
}

func NewScheduler(reminderService *service.ReminderService) *Scheduler {
	return &Scheduler{
		cron:            cron.New(),
		reminderService: reminderService,
	}
}

// Start registers the jobs and launches the cron loop.
func (s *Scheduler) Start(ctx context.Context, reminderSpec, resetSpec string) error {
	_, err := s.cron.AddFunc(reminderSpec, func() {
		if err := s.reminderService.SendGraceReminders(ctx, time.Now()); err != nil {
			slog.Error("reminder sweep failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return err
	}
	_, err = s.cron.AddFunc(resetSpec, func() {
		if err := s.reminderService.ResetDaily(ctx); err != nil {
			slog.Error("daily reminder reset failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	slog.Info("reminder scheduler started", slog.String("reminder_spec", reminderSpec), slog.String("reset_spec", resetSpec))
	return nil
}

func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	slog.Info("reminder scheduler stopped")
}
