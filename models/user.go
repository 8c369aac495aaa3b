package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID              uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	Email           string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password        string     `gorm:"size:255;not null" json:"-"`
	Role            string     `gorm:"type:enum('admin','owner');default:'owner'" json:"role"`
	FullName        *string    `gorm:"size:100" json:"full_name,omitempty"`
	ContactNo       *string    `gorm:"size:20" json:"contact_no,omitempty"`
	ProfilePhotoURL *string    `gorm:"size:500" json:"profile_photo_url,omitempty"`
	HotelName       *string    `gorm:"size:100" json:"hotel_name,omitempty"`
	HotelLocation   *string    `gorm:"size:200" json:"hotel_location,omitempty"`
	ApprovalStatus  string     `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"approval_status"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	ApprovedBy      *uuid.UUID `gorm:"type:char(36)" json:"approved_by,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
