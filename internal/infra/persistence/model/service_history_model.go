package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceHistoryModel mirrors the 'service_history' table.
// The service name is denormalized so history survives catalog edits.
type ServiceHistoryModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CustomerID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	PetID               uuid.UUID  `gorm:"type:uuid;not null"`
	AppointmentID       *uuid.UUID `gorm:"type:uuid"`
	ServiceName         string     `gorm:"type:varchar(100);not null"`
	ServiceDate         time.Time  `gorm:"type:date;not null"`
	AmountPaid          float64    `gorm:"type:numeric(10,2);not null"`
	LoyaltyPointsEarned int        `gorm:"not null;default:0"`
	CreatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceHistoryModel) TableName() string {
	return "service_history"
}
