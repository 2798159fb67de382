package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"not null"`
	Email         string         `json:"email" gorm:"not null"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	LoyaltyTier   string         `json:"loyalty_tier" gorm:"default:'bronze'"` // bronze, silver, gold, platinum
	Status        string         `json:"status" gorm:"default:'active'"`       // active, inactive, suspended
	TotalOrders   int            `json:"total_orders" gorm:"default:0"`
	TotalSpent    float64        `json:"total_spent" gorm:"default:0"`
	Rating        float64        `json:"rating" gorm:"default:0"`
	LastOrderDate *time.Time     `json:"last_order_date"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type LoyaltyTier string

const (
	TierBronze   LoyaltyTier = "bronze"
	TierSilver   LoyaltyTier = "silver"
	TierGold     LoyaltyTier = "gold"
	TierPlatinum LoyaltyTier = "platinum"
)
