// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"petspa/internal/domain/entity"
)

// --- Input DTOs ---

// UpdateProfileInput defines the data a customer may change on their own profile.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// --- Output DTOs ---

// LoyaltyCardOutput bundles a customer's loyalty card with a scannable QR image.
type LoyaltyCardOutput struct {
	CardNumber string
	Points     int
	QRCodePNG  []byte
}

// CustomerStatsOutput aggregates the figures shown on the customer dashboard.
type CustomerStatsOutput struct {
	PetCount             int64
	UpcomingAppointments []*entity.Appointment
	LoyaltyPoints        int
	TotalSpent           float64
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile retrieves the full account of the session user, including roles.
	GetProfile(ctx context.Context, session *entity.Session) (*entity.User, error)

	// UpdateProfile updates the contact details of the session user.
	UpdateProfile(ctx context.Context, session *entity.Session, input *UpdateProfileInput) (*entity.Profile, error)

	// GetLoyaltyCard returns the session user's loyalty card and its QR image.
	GetLoyaltyCard(ctx context.Context, session *entity.Session) (*LoyaltyCardOutput, error)

	// GetCustomerStats gathers the customer dashboard figures for the session user.
	GetCustomerStats(ctx context.Context, session *entity.Session) (*CustomerStatsOutput, error)
}
