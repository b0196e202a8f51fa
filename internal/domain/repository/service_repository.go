// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"petspa/internal/domain/entity"
	"petspa/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for service catalog persistence.
var (
	// ErrServiceNotFound is returned when a catalog service is not found.
	ErrServiceNotFound = errors.New("service not found")
)

// ServiceRepository defines the interface for service catalog database operations.
type ServiceRepository interface {
	// CreateService persists a new catalog service.
	CreateService(ctx context.Context, service *entity.Service) error

	// FindServiceByID retrieves a catalog service by its unique ID.
	FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// FindActiveServices retrieves all active services, ordered by name.
	FindActiveServices(ctx context.Context) ([]*entity.Service, error)

	// FindAllServices retrieves every service regardless of active state, ordered by name.
	FindAllServices(ctx context.Context) ([]*entity.Service, error)

	// UpdateService modifies an existing catalog service.
	UpdateService(ctx context.Context, service *entity.Service) error

	// DeleteService removes a catalog service row permanently. Appointments
	// keep their nullable service reference and snapshot price.
	DeleteService(ctx context.Context, id uuid.UUID) error

	// CountActiveServices returns the number of active services.
	CountActiveServices(ctx context.Context) (int64, error)
}
