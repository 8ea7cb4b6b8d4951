package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel holds the columns every booking record shares.
type BaseModel struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Status        Status    `gorm:"type:varchar(16);not null;index" json:"status"`
	CreatedOn     time.Time `gorm:"column:created_on;not null" json:"createdOn"`
	LastUpdatedOn time.Time `gorm:"column:last_updated_on;not null" json:"lastUpdatedOn"`
}

// BeforeCreate assigns the id and creation time. Both are never touched again.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedOn.IsZero() {
		m.CreatedOn = time.Now()
	}
	return nil
}

// BeforeSave runs for inserts and updates alike.
func (m *BaseModel) BeforeSave(tx *gorm.DB) error {
	m.LastUpdatedOn = time.Now()
	return nil
}
