// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"petspa/internal/domain/entity"

	"github.com/google/uuid"
)

// ServiceHistoryRepository defines the interface for completed-visit history operations.
// History rows are append-only; they survive catalog edits and appointment deletions.
type ServiceHistoryRepository interface {
	// CreateServiceHistory persists a completed-visit record.
	CreateServiceHistory(ctx context.Context, history *entity.ServiceHistory) error

	// FindServiceHistoryByCustomer retrieves the visit history of a customer,
	// ordered by service date descending.
	FindServiceHistoryByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.ServiceHistory, error)

	// SumAmountPaidByCustomer returns the lifetime spend of a customer.
	SumAmountPaidByCustomer(ctx context.Context, customerID uuid.UUID) (float64, error)
}
