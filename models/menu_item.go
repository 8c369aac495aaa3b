package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuCategories is the fixed set of categories a menu item may belong to.
var MenuCategories = []string{"Tea", "Coffee", "Drinks", "Snacks", "Meals", "Desserts"}

type MenuItem struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	OwnerID  uuid.UUID `gorm:"type:char(36);index;not null" json:"owner_id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Category string    `gorm:"size:30;not null" json:"category"`
	Price    float64   `gorm:"not null" json:"price"`
	Image    *string   `gorm:"size:500" json:"image,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func ValidMenuCategory(category string) bool {
	for _, c := range MenuCategories {
		if c == category {
			return true
		}
	}
	return false
}
