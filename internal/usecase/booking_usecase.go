// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"petspa/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// BookAppointmentInput defines the data required to book a grooming appointment.
type BookAppointmentInput struct {
	PetID       uuid.UUID
	ServiceID   uuid.UUID
	GroomerID   *uuid.UUID
	ServiceType entity.ServiceType
	Date        time.Time
	StartTime   string
	Notes       string
}

// --- Output DTOs ---

// AppointmentListOutput partitions a customer's appointments for display.
type AppointmentListOutput struct {
	Upcoming []*entity.Appointment
	Past     []*entity.Appointment
}

// BookingUsecase defines the interface for customer-facing appointment operations.
type BookingUsecase interface {
	// BookAppointment creates a new appointment in pending status.
	// The quoted total is the booked service's minimum price.
	BookAppointment(ctx context.Context, session *entity.Session, input *BookAppointmentInput) (*entity.Appointment, error)

	// GetAppointment retrieves one of the session user's appointments by ID.
	GetAppointment(ctx context.Context, session *entity.Session, appointmentID uuid.UUID) (*entity.Appointment, error)

	// ListMyAppointments retrieves the session user's appointments partitioned
	// into upcoming and past. The split is by status alone: terminal
	// appointments are past, everything else is upcoming.
	ListMyAppointments(ctx context.Context, session *entity.Session) (*AppointmentListOutput, error)

	// CancelAppointment cancels one of the session user's appointments.
	// Customers may only cancel appointments that are still pending.
	CancelAppointment(ctx context.Context, session *entity.Session, appointmentID uuid.UUID) (*entity.Appointment, error)

	// ListTimeSlots returns the bookable start times for a calendar day.
	// Slots already behind now are omitted when date falls on now's day.
	ListTimeSlots(ctx context.Context, date time.Time, now time.Time) ([]string, error)
}
