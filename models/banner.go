package models

import (
	"time"
)

// Banner is a homepage promotional slide managed from the back office.
type Banner struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Image       string    `json:"image" gorm:"not null"`
	ImageID     string    `json:"image_id"`
	ImageName   string    `json:"image_name"`
	Link        string    `json:"link"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
