// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"petspa/internal/domain/entity"
	domainerrors "petspa/internal/domain/errors"
	"petspa/internal/domain/repository"
	"petspa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	txManager   repository.TransactionManager
	repoFactory repository.RepositoryFactory
	logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(
	txManager repository.TransactionManager,
	repoFactory repository.RepositoryFactory,
	logger *slog.Logger,
) usecase.BookingUsecase {
	return &bookingService{
		txManager:   txManager,
		repoFactory: repoFactory,
		logger:      logger,
	}
}

// BookAppointment creates a new appointment in pending status.
func (srv *bookingService) BookAppointment(ctx context.Context, session *entity.Session, input *usecase.BookAppointmentInput) (*entity.Appointment, error) {
	if err := requireCapability(session, entity.CapabilityBookAppointment); err != nil {
		return nil, err
	}
	srv.logger.Info("Booking appointment", "customerID", session.UserID, "serviceID", input.ServiceID)

	if !input.ServiceType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown service type: " + input.ServiceType.String())
	}
	if !entity.IsBookableSlot(input.StartTime) {
		return nil, domainerrors.ErrInvalidTimeSlot.WithDetails("start time " + input.StartTime + " is not offered")
	}

	var booked *entity.Appointment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. The pet must exist and belong to the booking customer.
		pet, err := repoFactory.PetRepo().FindPetByID(ctx, input.PetID)
		if err != nil {
			if errors.Is(err, repository.ErrPetNotFound) {
				return domainerrors.ErrPetNotFound.WrapMessage("booking failed")
			}

			return errors.Wrap(err, "failed to find pet")
		}
		if pet.OwnerID != session.UserID {
			return domainerrors.ErrPetNotFound.WrapMessage("booking failed")
		}

		// 2. The service must exist and still be offered.
		svc, err := repoFactory.ServiceRepo().FindServiceByID(ctx, input.ServiceID)
		if err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return domainerrors.ErrServiceNotFound.WrapMessage("booking failed")
			}

			return errors.Wrap(err, "failed to find service")
		}
		if !svc.IsActive {
			return domainerrors.ErrServiceInactive.WrapMessage("booking failed")
		}

		// 3. A requested groomer must exist and be taking appointments.
		if input.GroomerID != nil {
			groomer, err := repoFactory.GroomerRepo().FindGroomerByID(ctx, *input.GroomerID)
			if err != nil {
				if errors.Is(err, repository.ErrGroomerNotFound) {
					return domainerrors.ErrGroomerNotFound.WrapMessage("booking failed")
				}

				return errors.Wrap(err, "failed to find groomer")
			}
			if !groomer.IsAvailable {
				return domainerrors.ErrGroomerNotFound.WrapMessage("booking failed")
			}
		}

		// 4. Quote the service's minimum price; staff settle the final amount later.
		quoted := svc.PriceMin

		appointment := &entity.Appointment{
			CustomerID:  session.UserID,
			PetID:       input.PetID,
			ServiceID:   &input.ServiceID,
			GroomerID:   input.GroomerID,
			ServiceType: input.ServiceType,
			Date:        input.Date,
			StartTime:   input.StartTime,
			Status:      entity.StatusPending,
			Notes:       input.Notes,
			TotalPrice:  &quoted,
		}

		if err := repoFactory.AppointmentRepo().CreateAppointment(ctx, appointment); err != nil {
			return errors.WithStack(err)
		}
		booked = appointment

		return nil
	})
	if err != nil {
		srv.logger.Warn("Booking failed", "error", err, "customerID", session.UserID)

		return nil, errors.Wrap(err, "failed to book appointment")
	}
	srv.logger.Debug("Appointment booked", "appointmentID", booked.ID)

	return booked, nil
}

// GetAppointment retrieves one of the session user's appointments.
func (srv *bookingService) GetAppointment(ctx context.Context, session *entity.Session, appointmentID uuid.UUID) (*entity.Appointment, error) {
	if err := requireCapability(session, entity.CapabilityViewOwnData); err != nil {
		return nil, err
	}

	appointment, err := srv.repoFactory.AppointmentRepo().FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return nil, domainerrors.ErrAppointmentNotFound.WrapMessage("appointment lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find appointment")
	}
	if appointment.CustomerID != session.UserID && !session.IsAdmin() {
		return nil, domainerrors.ErrAppointmentNotFound.WrapMessage("appointment lookup failed")
	}

	return appointment, nil
}

// ListMyAppointments retrieves the session user's appointments partitioned
// into upcoming and past by status.
func (srv *bookingService) ListMyAppointments(ctx context.Context, session *entity.Session) (*usecase.AppointmentListOutput, error) {
	if err := requireCapability(session, entity.CapabilityViewOwnData); err != nil {
		return nil, err
	}

	appointments, err := srv.repoFactory.AppointmentRepo().FindAppointmentsByCustomer(ctx, session.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	out := &usecase.AppointmentListOutput{
		Upcoming: []*entity.Appointment{},
		Past:     []*entity.Appointment{},
	}
	for _, appointment := range appointments {
		// The split is purely by status: an appointment reads as history
		// exactly when it reached a terminal state, regardless of its date.
		// A pending booking dated last week still needs the customer's
		// attention, so it stays upcoming.
		if appointment.Status.IsTerminal() {
			out.Past = append(out.Past, appointment)
		} else {
			out.Upcoming = append(out.Upcoming, appointment)
		}
	}

	return out, nil
}

// CancelAppointment cancels one of the session user's appointments.
func (srv *bookingService) CancelAppointment(ctx context.Context, session *entity.Session, appointmentID uuid.UUID) (*entity.Appointment, error) {
	if err := requireCapability(session, entity.CapabilityViewOwnData); err != nil {
		return nil, err
	}
	srv.logger.Info("Cancelling appointment", "appointmentID", appointmentID, "customerID", session.UserID)

	var cancelled *entity.Appointment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appointmentRepo := repoFactory.AppointmentRepo()

		appointment, err := appointmentRepo.FindAppointmentByID(ctx, appointmentID)
		if err != nil {
			if errors.Is(err, repository.ErrAppointmentNotFound) {
				return domainerrors.ErrAppointmentNotFound.WrapMessage("cancellation failed")
			}

			return errors.Wrap(err, "failed to find appointment")
		}
		if appointment.CustomerID != session.UserID {
			return domainerrors.ErrAppointmentNotFound.WrapMessage("cancellation failed")
		}

		// Customers may only abandon appointments the salon has not yet acted on.
		if !entity.CanTransition(appointment.Status, entity.StatusCancelled, entity.RoleCustomer) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(
				"cannot cancel an appointment in status " + appointment.Status.String())
		}

		appointment.Status = entity.StatusCancelled
		if err := appointmentRepo.UpdateAppointment(ctx, appointment); err != nil {
			return errors.Wrap(err, "failed to update appointment")
		}
		cancelled = appointment

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel appointment")
	}

	return cancelled, nil
}

// ListTimeSlots returns the bookable start times for a calendar day.
// The grid is fixed; slots already behind now are omitted when the
// requested date falls on now's day.
func (srv *bookingService) ListTimeSlots(_ context.Context, date time.Time, now time.Time) ([]string, error) {
	sameDay := date.Year() == now.Year() && date.YearDay() == now.YearDay()
	if !sameDay {
		slots := make([]string, len(entity.TimeSlots))
		copy(slots, entity.TimeSlots)

		return slots, nil
	}

	current := now.Format("15:04")
	slots := make([]string, 0, len(entity.TimeSlots))
	for _, slot := range entity.TimeSlots {
		if slot > current {
			slots = append(slots, slot)
		}
	}

	return slots, nil
}
