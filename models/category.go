package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;uniqueIndex"`
	Slug        string    `json:"slug" gorm:"not null;uniqueIndex"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Featured    bool      `json:"featured" gorm:"default:false"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Subcategories []Subcategory `json:"subcategories" gorm:"foreignKey:CategoryID"`
}

// BeforeSave hook to standardize category names
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return nil
}

type Subcategory struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CategoryID uint      `json:"category_id" gorm:"not null"`
	Name       string    `json:"name" gorm:"not null"`
	Slug       string    `json:"slug" gorm:"not null"`
	SortOrder  int       `json:"sort_order" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeSave hook to standardize subcategory names
func (s *Subcategory) BeforeSave(tx *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Slug == "" {
		s.Slug = Slugify(s.Name)
	}
	return nil
}
