package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttributeModel mirrors the 'attributes' table.
type AttributeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Values []*AttributeValueModel `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AttributeModel) TableName() string {
	return "attributes"
}

// BeforeCreate assigns the primary key when the application did not set one.
func (m *AttributeModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// AttributeValueModel mirrors the 'attribute_values' table. Value uniqueness
// is scoped per attribute via the composite unique index.
type AttributeValueModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AttributeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attribute_value"`
	Value       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_attribute_value"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Attribute *AttributeModel `gorm:"foreignKey:AttributeID"`
}

// TableName explicitly sets the table name for GORM.
func (AttributeValueModel) TableName() string {
	return "attribute_values"
}

// BeforeCreate assigns the primary key when the application did not set one.
func (m *AttributeValueModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
