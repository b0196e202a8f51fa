package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceModel mirrors the 'services' table, the grooming service catalog.
type ServiceModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Description     string    `gorm:"type:text"`
	Category        string    `gorm:"type:varchar(20);not null"`
	PriceMin        float64   `gorm:"type:numeric(10,2);not null"`
	PriceMax        float64   `gorm:"type:numeric(10,2);not null"`
	DurationMinutes int       `gorm:"not null"`
	IsActive        bool      `gorm:"not null;default:true;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

// GroomerModel mirrors the 'groomers' table, the staff roster.
type GroomerModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Specialty   string    `gorm:"type:varchar(100)"`
	PhotoURL    string    `gorm:"type:text"`
	IsAvailable bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GroomerModel) TableName() string {
	return "groomers"
}
