package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID           uuid.UUID   `gorm:"type:char(36);primaryKey" json:"id"`
	OwnerID      uuid.UUID   `gorm:"type:char(36);not null;uniqueIndex:idx_owner_order_number" json:"owner_id"`
	OrderNumber  int         `gorm:"not null;uniqueIndex:idx_owner_order_number" json:"order_number"`
	Subtotal     float64     `gorm:"not null;default:0" json:"subtotal"`
	Discount     float64     `gorm:"not null;default:0" json:"discount"`
	Total        float64     `gorm:"not null;default:0" json:"total"`
	CustomerName  *string     `gorm:"size:100" json:"customer_name,omitempty"`
	TableGroup    *string     `gorm:"size:10" json:"table_group,omitempty"`
	TableNumber   *string     `gorm:"size:10;index" json:"table_number,omitempty"`
	PaymentMethod *string     `gorm:"type:enum('cash','online')" json:"payment_method,omitempty"`
	Closed        bool        `gorm:"not null;default:false" json:"closed"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem keeps a denormalized name/price snapshot so historical orders
// are unaffected by later menu edits. ItemID is NULL for one-off lines.
type OrderItem struct {
	ID       uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	OrderID  uuid.UUID  `gorm:"type:char(36);index;not null" json:"order_id"`
	ItemID   *uuid.UUID `gorm:"type:char(36);index" json:"item_id,omitempty"`
	MenuItem *MenuItem  `gorm:"foreignKey:ItemID" json:"menu_item,omitempty"`
	Name     *string    `gorm:"size:100" json:"name,omitempty"`
	Quantity int        `gorm:"not null" json:"quantity"`
	Price    float64    `gorm:"not null" json:"price"`
	Total    float64    `gorm:"not null" json:"total"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// DisplayName resolves the line name: the snapshot for one-off lines,
// the joined menu item for catalog lines.
func (i OrderItem) DisplayName() string {
	if i.Name != nil && *i.Name != "" {
		return *i.Name
	}
	if i.MenuItem != nil {
		return i.MenuItem.Name
	}
	return "Unknown"
}
