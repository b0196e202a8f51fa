// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"petspa/internal/domain/entity"
	"petspa/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for appointment persistence.
var (
	// ErrAppointmentNotFound is returned when an appointment is not found.
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// AppointmentFilter narrows admin appointment listings.
// Zero values mean the dimension is not filtered.
type AppointmentFilter struct {
	Status   entity.AppointmentStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

// AppointmentRepository defines the interface for appointment database operations.
type AppointmentRepository interface {
	// CreateAppointment persists a new appointment.
	CreateAppointment(ctx context.Context, appointment *entity.Appointment) error

	// FindAppointmentByID retrieves an appointment by its unique ID,
	// including denormalized pet, service and groomer names.
	FindAppointmentByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// FindAppointmentsByCustomer retrieves all appointments booked by a customer,
	// ordered by date descending then start time.
	FindAppointmentsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Appointment, error)

	// FindUpcomingByCustomer retrieves appointments on or after the given date
	// for a customer, excluding cancelled ones, ordered by date ascending, up to limit.
	FindUpcomingByCustomer(ctx context.Context, customerID uuid.UUID, from time.Time, limit int) ([]*entity.Appointment, error)

	// FindAppointments retrieves appointments matching the filter,
	// ordered by date descending then start time. Used by the back office.
	FindAppointments(ctx context.Context, filter AppointmentFilter) ([]*entity.Appointment, error)

	// FindAppointmentsOnDate retrieves appointments scheduled on a given calendar day
	// in any of the provided statuses. Used by the reminder worker.
	FindAppointmentsOnDate(ctx context.Context, date time.Time, statuses []entity.AppointmentStatus) ([]*entity.Appointment, error)

	// UpdateAppointment modifies an existing appointment.
	UpdateAppointment(ctx context.Context, appointment *entity.Appointment) error

	// CountAppointments returns the total number of appointments.
	CountAppointments(ctx context.Context) (int64, error)

	// CountAppointmentsByStatus returns the number of appointments in the given status.
	CountAppointmentsByStatus(ctx context.Context, status entity.AppointmentStatus) (int64, error)
}
