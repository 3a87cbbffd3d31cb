package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Category groups products for storefront browsing.
type Category struct {
	BaseModel
	Slug        string `gorm:"uniqueIndex" json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

// Product is a stationery catalog item.
type Product struct {
	BaseModel
	SKU         string         `gorm:"uniqueIndex" json:"sku"`
	Slug        string         `gorm:"uniqueIndex" json:"slug"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Stock       int            `json:"stock"`
	Image       string         `json:"image"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CategoryID  *uuid.UUID     `gorm:"type:uuid" json:"category_id"`
	Category    *Category      `json:"category,omitempty"`
}
