// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It contains only the most fundamental identity information shared across all roles.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's primary contact email, used as the login identifier.
	Profile   *Profile  // The business-domain record associated one-to-one with this identity.
	Roles     Roles     // Role assignments resolved from the user_roles table.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// Profile holds the business-domain data for an identity: display name,
// contact details, and the loyalty card. Loyalty points only accumulate;
// there is no redemption path.
type Profile struct {
	ID                uuid.UUID
	UserID            uuid.UUID // Foreign Key that links this profile to a core User entity.
	FullName          string
	Phone             string
	Address           string
	LoyaltyCardNumber string // Generated once at sign-up, never changed.
	LoyaltyPoints     int    // Non-negative, monotonically non-decreasing.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
