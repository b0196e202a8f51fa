// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Species enumerates the kinds of pets the salon accepts.
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesBird   Species = "bird"
	SpeciesRabbit Species = "rabbit"
	SpeciesOther  Species = "other"
)

// String returns the string representation of the species.
func (s Species) String() string {
	return string(s)
}

// IsValid checks if the species is a known value.
func (s Species) IsValid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit, SpeciesOther:
		return true
	default:
		return false
	}
}

// Pet belongs to exactly one customer. Breed, age, weight and notes are
// optional details the owner may fill in.
type Pet struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Species   Species
	Breed     string
	Age       *int
	Weight    *float64
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
