package models

import (
	"time"
)

// PaymentTransaction is an audit record tying a gateway payment id to a
// customer and a captured amount. Amount is stored in paise. It is written
// only after signature verification succeeds and is never a source of truth
// for order state.
type PaymentTransaction struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	PaymentID  string    `json:"payment_id" gorm:"uniqueIndex;not null"`
	CustomerID uint      `json:"customer_id"`
	Customer   Customer  `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"` // completed, refunded
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
