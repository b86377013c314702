package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel carries the fields shared by every stored record. ID and CreatedAt
// are fixed at creation; Active=false marks a record as logically deleted.
type BaseModel struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;index;<-:create"`
	UpdatedAt  time.Time `json:"updated_at"`
	CreatedBy  string    `json:"created_by,omitempty" gorm:"size:100;<-:create"`
	ModifiedBy string    `json:"modified_by,omitempty" gorm:"size:100"`
	Active     bool      `json:"active" gorm:"not null;index"`
}

// Now is the current UTC time at the microsecond precision postgres keeps, so
// a timestamp handed back on create compares equal to the stored one.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func NewBaseModel() BaseModel {
	now := Now()
	return BaseModel{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Active:    true,
	}
}

// Hooks fill identity fields for records built without NewBaseModel.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.CreatedAt = b.CreatedAt.Truncate(time.Microsecond)
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = Now()
	return nil
}
