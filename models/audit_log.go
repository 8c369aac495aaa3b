package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLog struct {
	ID          uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	EntityType  string     `gorm:"size:30;index;not null" json:"entity_type"`
	EntityID    uuid.UUID  `gorm:"type:char(36);index;not null" json:"entity_id"`
	Action      string     `gorm:"size:20;not null" json:"action"`
	UserID      *uuid.UUID `gorm:"type:char(36);index" json:"user_id,omitempty"`
	OldValue    *string    `gorm:"type:text" json:"old_value,omitempty"`
	NewValue    *string    `gorm:"type:text" json:"new_value,omitempty"`
	Changes     *string    `gorm:"type:text" json:"changes,omitempty"`
	IPAddress   *string    `gorm:"size:45" json:"ip_address,omitempty"`
	Description string     `gorm:"size:255" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
