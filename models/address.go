package models

import (
	"time"
)

// Address captures a shipping or billing destination for a customer.
// Rows referenced by an order are never updated afterwards; edits create
// new rows so historical orders keep the address they shipped to.
type Address struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"not null"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Line1      string    `json:"line1"`
	Line2      string    `json:"line2"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	ZipCode    string    `json:"zip_code"`
	Country    string    `json:"country" gorm:"default:India"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
