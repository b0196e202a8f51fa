// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceCategory classifies a bookable offering.
type ServiceCategory string

const (
	CategoryGrooming ServiceCategory = "grooming"
	CategoryBoarding ServiceCategory = "boarding"
)

// String returns the string representation of the category.
func (c ServiceCategory) String() string {
	return string(c)
}

// IsValid checks if the category is a known value.
func (c ServiceCategory) IsValid() bool {
	switch c {
	case CategoryGrooming, CategoryBoarding:
		return true
	default:
		return false
	}
}

// Service is a bookable offering with a price range and duration.
// Inactive services disappear from customer-facing listings but remain
// referenceable by historical appointments.
type Service struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Category        ServiceCategory
	PriceMin        float64 // Lower bound of the quoted range; the booking snapshot price.
	PriceMax        float64
	DurationMinutes int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Groomer is a member of staff customers may request at booking time.
// Only available groomers are offered.
type Groomer struct {
	ID          uuid.UUID
	Name        string
	Specialty   string
	PhotoURL    string
	IsAvailable bool
	CreatedAt   time.Time
}

// ServiceHistory records a delivered service: what was paid and how many
// loyalty points it earned. Rows are written when an appointment completes
// and feed the customer's "total spent" stat.
type ServiceHistory struct {
	ID                  uuid.UUID
	CustomerID          uuid.UUID
	PetID               uuid.UUID
	AppointmentID       *uuid.UUID
	ServiceName         string
	ServiceDate         time.Time
	AmountPaid          float64
	LoyaltyPointsEarned int
	CreatedAt           time.Time
}
