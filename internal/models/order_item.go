package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is one priced line of an item-mode order. Lines are owned by
// their order and replaced wholesale whenever the order's items are edited.
type OrderItem struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	OrderID        uint           `json:"order_id" gorm:"not null;index"`
	ItemName       string         `json:"item_name" gorm:"not null"`
	Quantity       int            `json:"quantity" gorm:"not null"`
	PricePerItem   float64        `json:"price_per_item" gorm:"not null"`
	TotalPrice     float64        `json:"total_price" gorm:"not null"`
	PaymentPending bool           `json:"payment_pending"`
	Notes          string         `json:"notes" gorm:"type:text"`
	Tags           StringList     `json:"tags" gorm:"serializer:json"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type StringList []string
