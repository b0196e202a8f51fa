// Package worker runs the scheduled background jobs: appointment reminders
// and expired session cleanup.
package worker

import (
	"context"
	"log/slog"
	"time"

	"petspa/config"
	"petspa/internal/delivery"
	"petspa/internal/domain/entity"
	"petspa/internal/domain/lifecycle"
	"petspa/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// tokenCleanupSpec purges expired refresh tokens nightly.
const tokenCleanupSpec = "30 3 * * *"

// ReminderParams holds dependencies for the reminder worker
type ReminderParams struct {
	fx.In
	fx.Lifecycle

	Cfg         *config.Config
	Logger      *slog.Logger
	RepoFactory repository.RepositoryFactory
}

type reminderWorker struct {
	cfg         *config.Config
	logger      *slog.Logger
	repoFactory repository.RepositoryFactory
	scheduler   *cron.Cron
	done        chan struct{}
}

// NewReminderWorker creates the cron-backed background worker.
func NewReminderWorker(params ReminderParams) (delivery.Delivery, error) {
	worker := &reminderWorker{
		cfg:         params.Cfg,
		logger:      params.Logger,
		repoFactory: params.RepoFactory,
		scheduler:   cron.New(),
		done:        make(chan struct{}),
	}

	if params.Cfg.Reminder != nil && params.Cfg.Reminder.Enabled {
		spec := params.Cfg.Reminder.CronSpec
		if spec == "" {
			spec = "0 9 * * *"
		}
		if _, err := worker.scheduler.AddFunc(spec, worker.sendReminders); err != nil {
			return nil, errors.Wrap(err, "failed to schedule appointment reminders")
		}
	}

	if _, err := worker.scheduler.AddFunc(tokenCleanupSpec, worker.cleanupExpiredTokens); err != nil {
		return nil, errors.Wrap(err, "failed to schedule token cleanup")
	}

	params.Append(fx.Hook{
		OnStop: worker.stop,
	})

	return worker, nil
}

// Serve starts the scheduler and blocks until the worker is stopped.
func (w *reminderWorker) Serve(ctx context.Context) error {
	w.logger.Info("Starting background worker")
	w.scheduler.Start()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-w.done:
		return nil
	}
}

func (w *reminderWorker) stop(ctx context.Context) error {
	w.logger.Info("Shutting down background worker")

	stopCtx := w.scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(lifecycle.DefaultTimeout):
		w.logger.Warn("Background worker jobs did not finish before timeout")
	}
	close(w.done)

	return nil
}

// sendReminders finds tomorrow's pending and confirmed appointments and logs
// a reminder line per visit for the notification pipeline to pick up.
func (w *reminderWorker) sendReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	tomorrow := time.Now().AddDate(0, 0, 1)
	appointments, err := w.repoFactory.AppointmentRepo().FindAppointmentsOnDate(ctx, tomorrow,
		[]entity.AppointmentStatus{entity.StatusPending, entity.StatusConfirmed})
	if err != nil {
		w.logger.Error("Failed to load appointments for reminders", "error", err)

		return
	}

	for _, appointment := range appointments {
		w.logger.Info("Appointment reminder",
			"appointmentID", appointment.ID,
			"customerID", appointment.CustomerID,
			"petName", appointment.PetName,
			"serviceName", appointment.ServiceName,
			"date", appointment.Date.Format(time.DateOnly),
			"startTime", appointment.StartTime,
			"status", appointment.Status,
		)
	}

	w.logger.Info("Reminder run finished", "count", len(appointments))
}

// cleanupExpiredTokens removes refresh tokens past their expiry so the
// table does not grow without bound.
func (w *reminderWorker) cleanupExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := w.repoFactory.RefreshTokenRepo().DeleteExpiredRefreshTokens(ctx); err != nil {
		w.logger.Error("Failed to clean up expired refresh tokens", "error", err)

		return
	}

	w.logger.Info("Expired refresh tokens cleaned up")
}
