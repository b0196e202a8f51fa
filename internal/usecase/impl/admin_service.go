// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"petspa/internal/domain/entity"
	domainerrors "petspa/internal/domain/errors"
	"petspa/internal/domain/repository"
	"petspa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// loyaltyDollarsPerPoint awards one point for every whole ten dollars paid.
const loyaltyDollarsPerPoint = 10

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager   repository.TransactionManager
	repoFactory repository.RepositoryFactory
	logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	txManager repository.TransactionManager,
	repoFactory repository.RepositoryFactory,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		txManager:   txManager,
		repoFactory: repoFactory,
		logger:      logger,
	}
}

// ListAppointments retrieves appointments matching the filter for the back office.
func (srv *adminService) ListAppointments(ctx context.Context, session *entity.Session, input *usecase.ListAppointmentsInput) ([]*entity.Appointment, error) {
	if err := requireCapability(session, entity.CapabilityManageAppointments); err != nil {
		return nil, err
	}

	appointments, err := srv.repoFactory.AppointmentRepo().FindAppointments(ctx, input.ToRepositoryFilter())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	return appointments, nil
}

// UpdateAppointment applies back-office changes to an appointment.
func (srv *adminService) UpdateAppointment(ctx context.Context, session *entity.Session, appointmentID uuid.UUID, input *usecase.UpdateAppointmentInput) (*entity.Appointment, error) {
	if err := requireCapability(session, entity.CapabilityManageAppointments); err != nil {
		return nil, err
	}
	srv.logger.Info("Updating appointment", "appointmentID", appointmentID, "adminID", session.UserID)

	var updated *entity.Appointment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appointmentRepo := repoFactory.AppointmentRepo()

		appointment, err := appointmentRepo.FindAppointmentByID(ctx, appointmentID)
		if err != nil {
			if errors.Is(err, repository.ErrAppointmentNotFound) {
				return domainerrors.ErrAppointmentNotFound.WrapMessage("appointment update failed")
			}

			return errors.Wrap(err, "failed to find appointment")
		}

		completing := false
		if input.Status != nil && *input.Status != appointment.Status {
			if !entity.CanTransition(appointment.Status, *input.Status, entity.RoleAdmin) {
				return domainerrors.ErrInvalidStatusTransition.WithDetails(
					"cannot move appointment from " + appointment.Status.String() + " to " + input.Status.String())
			}
			completing = *input.Status == entity.StatusCompleted
			appointment.Status = *input.Status
		}

		if input.GroomerID != nil {
			if _, err := repoFactory.GroomerRepo().FindGroomerByID(ctx, *input.GroomerID); err != nil {
				if errors.Is(err, repository.ErrGroomerNotFound) {
					return domainerrors.ErrGroomerNotFound.WrapMessage("appointment update failed")
				}

				return errors.Wrap(err, "failed to find groomer")
			}
			appointment.GroomerID = input.GroomerID
		}
		if input.TotalPrice != nil {
			if *input.TotalPrice < 0 {
				return domainerrors.ErrValidationFailed.WithDetails("total price must not be negative")
			}
			appointment.TotalPrice = input.TotalPrice
		}
		if input.DiscountApplied != nil {
			if *input.DiscountApplied < 0 {
				return domainerrors.ErrValidationFailed.WithDetails("discount must not be negative")
			}
			appointment.DiscountApplied = input.DiscountApplied
		}
		if input.EstimatedWaitMinutes != nil {
			appointment.EstimatedWaitMinutes = input.EstimatedWaitMinutes
		}
		if input.Notes != nil {
			appointment.Notes = *input.Notes
		}

		if err := appointmentRepo.UpdateAppointment(ctx, appointment); err != nil {
			return errors.Wrap(err, "failed to update appointment")
		}

		// Completion settles the visit: record it in the customer's history
		// and credit loyalty points on the amount actually paid.
		if completing {
			if err := srv.settleCompletedVisit(ctx, repoFactory, appointment); err != nil {
				return err
			}
		}
		updated = appointment

		return nil
	})
	if err != nil {
		srv.logger.Warn("Appointment update failed", "error", err, "appointmentID", appointmentID)

		return nil, errors.Wrap(err, "failed to update appointment")
	}

	return updated, nil
}

// settleCompletedVisit writes the history row and loyalty credit for a completed appointment.
func (srv *adminService) settleCompletedVisit(ctx context.Context, repoFactory repository.RepositoryFactory, appointment *entity.Appointment) error {
	amountPaid := appointment.FinalPrice()
	pointsEarned := int(amountPaid) / loyaltyDollarsPerPoint

	history := &entity.ServiceHistory{
		CustomerID:          appointment.CustomerID,
		PetID:               appointment.PetID,
		AppointmentID:       &appointment.ID,
		ServiceName:         appointment.ServiceName,
		ServiceDate:         appointment.Date,
		AmountPaid:          amountPaid,
		LoyaltyPointsEarned: pointsEarned,
	}
	if err := repoFactory.ServiceHistoryRepo().CreateServiceHistory(ctx, history); err != nil {
		return errors.Wrap(err, "failed to record visit history")
	}

	if pointsEarned > 0 {
		if err := repoFactory.UserRepo().AddLoyaltyPoints(ctx, appointment.CustomerID, pointsEarned); err != nil {
			return errors.Wrap(err, "failed to credit loyalty points")
		}
	}

	return nil
}

// GetStats gathers the back-office dashboard counters.
// The four counts are independent, so they run in parallel on the base connection.
func (srv *adminService) GetStats(ctx context.Context, session *entity.Session) (*usecase.AdminStatsOutput, error) {
	if err := requireCapability(session, entity.CapabilityViewReports); err != nil {
		return nil, err
	}
	srv.logger.Debug("Gathering back-office stats", "adminID", session.UserID)

	stats := &usecase.AdminStatsOutput{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := srv.repoFactory.AppointmentRepo().CountAppointments(gctx)
		if err != nil {
			return errors.Wrap(err, "failed to count appointments")
		}
		stats.TotalAppointments = count

		return nil
	})

	g.Go(func() error {
		count, err := srv.repoFactory.AppointmentRepo().CountAppointmentsByStatus(gctx, entity.StatusPending)
		if err != nil {
			return errors.Wrap(err, "failed to count pending appointments")
		}
		stats.PendingAppointments = count

		return nil
	})

	g.Go(func() error {
		count, err := srv.repoFactory.UserRepo().CountByRole(gctx, entity.RoleCustomer)
		if err != nil {
			return errors.Wrap(err, "failed to count customers")
		}
		stats.TotalCustomers = count

		return nil
	})

	g.Go(func() error {
		count, err := srv.repoFactory.ServiceRepo().CountActiveServices(gctx)
		if err != nil {
			return errors.Wrap(err, "failed to count active services")
		}
		stats.ActiveServices = count

		return nil
	})

	if err := g.Wait(); err != nil {
		srv.logger.Error("Failed to gather back-office stats", "error", err)

		return nil, errors.Wrap(err, "failed to gather back-office stats")
	}

	return stats, nil
}
