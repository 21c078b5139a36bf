package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressModel mirrors the 'addresses' table.
type AddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null"`
	FirstName  string    `gorm:"type:varchar(100);not null"`
	LastName   string    `gorm:"type:varchar(100);not null"`
	Phone      string    `gorm:"type:varchar(30);not null"`
	Address    string    `gorm:"type:varchar(255);not null"`
	City       string    `gorm:"type:varchar(100)"`
	PostalCode string    `gorm:"type:varchar(20)"`
	Country    string    `gorm:"type:varchar(100)"`
	IsDefault  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// BeforeCreate assigns the primary key when the application did not set one.
func (m *AddressModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
