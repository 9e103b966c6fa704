package models

import (
	"time"
)

// Customer represents a storefront customer. Guest checkouts create a
// customer row with a NULL email, so Email is a pointer; the unique index
// only applies to non-null values.
type Customer struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	FullName        string    `json:"full_name"`
	DisplayName     string    `json:"display_name"`
	Email           *string   `json:"email" gorm:"uniqueIndex"`
	Phone           string    `json:"phone"`
	IsEmailVerified bool      `json:"is_email_verified" gorm:"default:false"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Addresses []Address `json:"addresses,omitempty" gorm:"foreignKey:CustomerID"`
	Orders    []Order   `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
}
