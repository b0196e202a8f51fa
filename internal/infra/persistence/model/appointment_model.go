package model

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentModel mirrors the 'appointments' table.
// ServiceID and GroomerID are nullable so catalog rows can be retired
// without breaking historical appointments.
type AppointmentModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CustomerID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	PetID                uuid.UUID  `gorm:"type:uuid;not null"`
	ServiceID            *uuid.UUID `gorm:"type:uuid"`
	GroomerID            *uuid.UUID `gorm:"type:uuid"`
	ServiceType          string     `gorm:"type:varchar(20);not null"`
	Date                 time.Time  `gorm:"type:date;not null;index"`
	StartTime            string     `gorm:"type:varchar(5);not null"`
	EndTime              *string    `gorm:"type:varchar(5)"`
	Status               string     `gorm:"type:varchar(20);not null;index"`
	Notes                string     `gorm:"type:text"`
	TotalPrice           *float64   `gorm:"type:numeric(10,2)"`
	DiscountApplied      *float64   `gorm:"type:numeric(10,2)"`
	EstimatedWaitMinutes *int
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Pet     *PetModel     `gorm:"foreignKey:PetID"`
	Service *ServiceModel `gorm:"foreignKey:ServiceID"`
	Groomer *GroomerModel `gorm:"foreignKey:GroomerID"`
}

// TableName explicitly sets the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}
