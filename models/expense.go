package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseSection groups purchase receipts by supplier category
// (e.g. Dairy, Vegetables). Unit/Rate are set for quantity-billed sections.
type ExpenseSection struct {
	ID      uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	OwnerID uuid.UUID `gorm:"type:char(36);index;not null" json:"owner_id"`
	Name    string    `gorm:"size:100;not null" json:"name"`
	Unit    *string   `gorm:"size:20" json:"unit,omitempty"`
	Rate    *float64  `json:"rate,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *ExpenseSection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type ExpenseReceipt struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	OwnerID    uuid.UUID `gorm:"type:char(36);index;not null" json:"owner_id"`
	SectionID  uuid.UUID `gorm:"type:char(36);index;not null" json:"section_id"`
	SourceType string    `gorm:"type:enum('firm','one-off');default:'firm'" json:"source_type"`
	SourceName string    `gorm:"size:100;not null" json:"source_name"`
	BillAmount float64   `gorm:"not null" json:"bill_amount"`
	Quantity   *float64  `json:"quantity,omitempty"`
	Rate       *float64  `json:"rate,omitempty"`
	Paid       bool      `gorm:"not null;default:false" json:"paid"`
	Date       time.Time `gorm:"not null" json:"date"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *ExpenseReceipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type StaffRecord struct {
	ID                  uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	OwnerID             uuid.UUID `gorm:"type:char(36);index;not null" json:"owner_id"`
	Name                string    `gorm:"size:100;not null" json:"name"`
	Role                *string   `gorm:"size:50" json:"role,omitempty"`
	Salary              float64   `gorm:"not null;default:0" json:"salary"`
	Advance             float64   `gorm:"not null;default:0" json:"advance"`
	Reduced             float64   `gorm:"not null;default:0" json:"reduced"`
	ReduceNextMonth     bool      `gorm:"not null;default:false" json:"reduce_next_month"`
	PaidThisMonth       bool      `gorm:"not null;default:false" json:"paid_this_month"`
	PaidThisMonthAmount *float64  `json:"paid_this_month_amount,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *StaffRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
