package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Product represents a garment in the catalog.
type Product struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Name         string   `json:"name" gorm:"not null"`
	Handle       string   `json:"handle" gorm:"uniqueIndex"`
	Description  string   `json:"description"`
	SellingPrice float64  `json:"price"`
	ComparePrice *float64 `json:"compare_price,omitempty"`
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory"`
	Tags         string   `json:"tags"` // comma separated
	Stock        int      `json:"stock" gorm:"default:0"`
	SKU          string   `json:"sku"`
	Featured     bool     `json:"featured" gorm:"default:false"`
	// No column default on IsAvailable: gorm skips zero-value fields on
	// insert when one exists, so an explicit false would be stored as true.
	IsAvailable bool      `json:"is_available"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Images []ProductImage `json:"images" gorm:"foreignKey:ProductID"`
}

// BeforeCreate derives a URL handle from the name when none was supplied.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Handle == "" {
		p.Handle = Slugify(p.Name)
	}
	return nil
}

// ProductImage holds one CDN image URL for a product.
type ProductImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null"`
	URL       string    `json:"url" gorm:"not null"`
	Position  int       `json:"position" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}

// Slugify lowercases a name and replaces runs of non-alphanumerics with
// hyphens, matching the handles the storefront links to.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
