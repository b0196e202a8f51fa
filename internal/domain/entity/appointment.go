// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	// StatusPending is the initial state of every booked appointment.
	StatusPending AppointmentStatus = "pending"
	// StatusConfirmed means an administrator accepted the booking.
	StatusConfirmed AppointmentStatus = "confirmed"
	// StatusInProgress means the groomer started working on the pet.
	StatusInProgress AppointmentStatus = "in-progress"
	// StatusCompleted is a terminal state; the service was delivered.
	StatusCompleted AppointmentStatus = "completed"
	// StatusCancelled is a terminal state; the appointment will not happen.
	StatusCancelled AppointmentStatus = "cancelled"
)

// String returns the string representation of the status.
func (s AppointmentStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the five known values.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the appointment reached its final state.
// The upcoming/past partition in listings is derived from this.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// customerTransitions lists the transitions a customer may perform on their
// own appointment. Cancellation of a pending booking is the only one.
var customerTransitions = map[AppointmentStatus]map[AppointmentStatus]bool{
	StatusPending: {StatusCancelled: true},
}

// CanTransition reports whether the actor with the given role may move an
// appointment from one status to another. Administrators may set any status
// from any status; this asymmetry mirrors the business back-office, where
// staff correct records freely while customers can only withdraw a booking
// that has not been confirmed yet.
func CanTransition(from, to AppointmentStatus, actor Role) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}

	if actor == RoleAdmin {
		return true
	}

	return customerTransitions[from][to]
}

// ServiceType represents how the pet gets to the salon.
type ServiceType string

const (
	ServiceTypeWalkIn      ServiceType = "walk-in"
	ServiceTypeHomeService ServiceType = "home-service"
	ServiceTypePickUp      ServiceType = "pick-up"
)

// String returns the string representation of the service type.
func (t ServiceType) String() string {
	return string(t)
}

// IsValid checks if the service type is a known value.
func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceTypeWalkIn, ServiceTypeHomeService, ServiceTypePickUp:
		return true
	default:
		return false
	}
}

// Appointment is a scheduled instance of a Service for a specific pet,
// customer, and optional groomer. Appointments are never hard-deleted;
// cancellation is a status transition.
type Appointment struct {
	ID                   uuid.UUID
	CustomerID           uuid.UUID  // The user who booked; not cross-checked against the pet's owner by the store.
	PetID                uuid.UUID
	ServiceID            *uuid.UUID // Kept after the service is deactivated or edited.
	GroomerID            *uuid.UUID
	ServiceType          ServiceType
	Date                 time.Time // Calendar date of the visit; time-of-day portion is unused.
	StartTime            string    // "HH:MM" slot from the static grid.
	EndTime              *string
	Status               AppointmentStatus
	Notes                string
	TotalPrice           *float64 // Snapshot of the service's minimum price at booking time.
	DiscountApplied      *float64
	EstimatedWaitMinutes *int
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Denormalized display names, populated on reads that join related rows.
	PetName     string
	ServiceName string
	GroomerName string
}

// FinalPrice returns total price minus discount, for display only.
// The subtraction result is never persisted.
func (a *Appointment) FinalPrice() float64 {
	if a.TotalPrice == nil {
		return 0
	}

	price := *a.TotalPrice
	if a.DiscountApplied != nil {
		price -= *a.DiscountApplied
	}
	if price < 0 {
		return 0
	}

	return price
}

// TimeSlots is the fixed grid of bookable start times presented to customers.
// Slots are offered regardless of existing bookings; there is no conflict
// detection. The midday gap is the salon's lunch break.
var TimeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
}

// IsBookableSlot reports whether the given start time is on the static grid.
func IsBookableSlot(startTime string) bool {
	for _, slot := range TimeSlots {
		if slot == startTime {
			return true
		}
	}

	return false
}
