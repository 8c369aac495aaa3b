package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CashSession struct {
	ID           uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	OwnerID      uuid.UUID  `gorm:"type:char(36);index;not null" json:"owner_id"`
	OpeningCash  float64    `gorm:"not null" json:"opening_cash"`
	TotalCashIn  float64    `gorm:"not null;default:0" json:"total_cash_in"`
	ExpectedCash float64    `gorm:"not null;default:0" json:"expected_cash"`
	ClosingCash  *float64   `json:"closing_cash,omitempty"`
	Difference   *float64   `json:"difference,omitempty"`
	Status       string     `gorm:"type:enum('open','closed');default:'open'" json:"status"`
	OpenedAt     time.Time  `gorm:"not null" json:"opened_at"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
}

func (s *CashSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
