package models

import (
	"time"

	"gorm.io/gorm"
)

// LaundryItem is a catalog entry for per-item pricing. Prices here are only
// starting points: orders snapshot the price at selection time and never
// follow later catalog edits.
type LaundryItem struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null"`
	PricePerItem float64        `json:"price_per_item"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// ServiceType is a catalog entry for per-kilogram pricing.
type ServiceType struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	PricePerKg  float64        `json:"price_per_kg" gorm:"not null"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
