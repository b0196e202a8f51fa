// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"petspa/internal/domain/entity"
	"petspa/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListAppointmentsInput narrows the back-office appointment listing.
type ListAppointmentsInput struct {
	Status   entity.AppointmentStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

// UpdateAppointmentInput defines the fields an administrator may change on an appointment.
// Nil fields are left unchanged.
type UpdateAppointmentInput struct {
	Status               *entity.AppointmentStatus
	GroomerID            *uuid.UUID
	TotalPrice           *float64
	DiscountApplied      *float64
	EstimatedWaitMinutes *int
	Notes                *string
}

// --- Output DTOs ---

// AdminStatsOutput aggregates the figures shown on the back-office dashboard.
type AdminStatsOutput struct {
	TotalAppointments   int64
	PendingAppointments int64
	TotalCustomers      int64
	ActiveServices      int64
}

// AdminUsecase defines the interface for back-office operations.
type AdminUsecase interface {
	// ListAppointments retrieves appointments matching the filter, newest first.
	ListAppointments(ctx context.Context, session *entity.Session, input *ListAppointmentsInput) ([]*entity.Appointment, error)

	// UpdateAppointment applies back-office changes to an appointment.
	// Status changes are validated against the appointment lifecycle, and
	// completing an appointment records a visit and awards loyalty points.
	UpdateAppointment(ctx context.Context, session *entity.Session, appointmentID uuid.UUID, input *UpdateAppointmentInput) (*entity.Appointment, error)

	// GetStats gathers the back-office dashboard counters in parallel.
	GetStats(ctx context.Context, session *entity.Session) (*AdminStatsOutput, error)
}

// ToRepositoryFilter converts a listing input into the persistence filter shape.
func (in *ListAppointmentsInput) ToRepositoryFilter() repository.AppointmentFilter {
	if in == nil {
		return repository.AppointmentFilter{}
	}

	return repository.AppointmentFilter{
		Status:   in.Status,
		DateFrom: in.DateFrom,
		DateTo:   in.DateTo,
	}
}
