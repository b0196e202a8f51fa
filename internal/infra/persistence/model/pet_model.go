package model

import (
	"time"

	"github.com/google/uuid"
)

// PetModel mirrors the 'pets' table. OwnerID references users.id (UUID).
type PetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Species   string    `gorm:"type:varchar(20);not null"`
	Breed     string    `gorm:"type:varchar(100)"`
	Age       *int
	Weight    *float64 `gorm:"type:numeric(6,2)"`
	Notes     string   `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "pets"
}
