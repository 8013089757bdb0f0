package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides the bookkeeping columns shared by stored rows
type BaseModel struct {
	Revision  uuid.UUID `json:"revision" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave stamps a fresh revision on every write
func (base *BaseModel) BeforeSave(tx *gorm.DB) error {
	base.Revision = uuid.New()
	return nil
}
