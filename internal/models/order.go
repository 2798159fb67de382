package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	OrderNumber   string `json:"order_number" gorm:"unique;not null"`
	CustomerID    *uint  `json:"customer_id" gorm:"index"`
	CustomerName  string `json:"customer_name" gorm:"not null"`
	CustomerPhone string `json:"customer_phone"`

	// Items is the human-readable summary shown on listings.
	// ItemsDetail is only persisted for kg-priced orders; item-priced orders
	// decompose into OrderItem rows instead.
	Items       string          `json:"items"`
	ItemsDetail ItemDescriptors `json:"items_detail" gorm:"serializer:json"`

	PricingType   string  `json:"pricing_type" gorm:"default:'item'"` // item, kg
	ServiceTypeID *uint   `json:"service_type_id"`
	PricePerKg    float64 `json:"price_per_kg"`
	TotalWeight   float64 `json:"total_weight"`

	Subtotal       float64 `json:"subtotal"`
	Discount       float64 `json:"discount"`
	DiscountType   string  `json:"discount_type" gorm:"default:'percentage'"` // percentage, fixed
	Amount         float64 `json:"amount" gorm:"not null"`
	AmountOverride bool    `json:"amount_override"`

	Status        string     `json:"status" gorm:"default:'received'"` // received, processing, ready, completed, delayed
	Priority      string     `json:"priority" gorm:"default:'normal'"` // low, normal, urgent
	QualityScore  int        `json:"quality_score" gorm:"default:0"`
	DateReceived  time.Time  `json:"date_received" gorm:"not null"`
	DueDate       time.Time  `json:"due_date" gorm:"not null"`
	CompletedDate *time.Time `json:"completed_date"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// ItemDescriptor is a lightweight item note on a kg-priced order. It carries
// no quantity or price because kg pricing depends on weight alone.
type ItemDescriptor struct {
	Name  string   `json:"name"`
	Notes string   `json:"notes,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

type ItemDescriptors []ItemDescriptor

type OrderStatus string

const (
	OrderReceived   OrderStatus = "received"
	OrderProcessing OrderStatus = "processing"
	OrderReady      OrderStatus = "ready"
	OrderCompleted  OrderStatus = "completed"
	OrderDelayed    OrderStatus = "delayed"
)

type OrderPriority string

const (
	PriorityLow    OrderPriority = "low"
	PriorityNormal OrderPriority = "normal"
	PriorityUrgent OrderPriority = "urgent"
)

type PricingType string

const (
	PricingPerItem PricingType = "item"
	PricingPerKg   PricingType = "kg"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// ValidOrderStatus reports whether s is one of the five workflow statuses.
// Transitions between statuses are deliberately unrestricted; any status may
// follow any other.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderReceived, OrderProcessing, OrderReady, OrderCompleted, OrderDelayed:
		return true
	}
	return false
}
