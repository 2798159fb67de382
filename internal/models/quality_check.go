package models

import (
	"time"

	"gorm.io/gorm"
)

// QualityCheck is an inspection record for an order at one stage of the
// wash cycle. Order number and customer name are denormalized so the record
// stays readable even if the order is later deleted.
type QualityCheck struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	OrderID      *uint          `json:"order_id" gorm:"index"`
	OrderNumber  string         `json:"order_number" gorm:"not null"`
	CustomerName string         `json:"customer_name" gorm:"not null"`
	CheckType    string         `json:"check_type" gorm:"not null"`      // pre-wash, post-wash, pre-dry, post-dry, final
	Status       string         `json:"status" gorm:"default:'pending'"` // pending, passed, failed, review
	Score        int            `json:"score" gorm:"default:0"`
	Issues       StringList     `json:"issues" gorm:"serializer:json"`
	Notes        string         `json:"notes" gorm:"type:text"`
	Inspector    string         `json:"inspector"`
	CheckedAt    *time.Time     `json:"checked_at"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type CheckType string

const (
	CheckPreWash  CheckType = "pre-wash"
	CheckPostWash CheckType = "post-wash"
	CheckPreDry   CheckType = "pre-dry"
	CheckPostDry  CheckType = "post-dry"
	CheckFinal    CheckType = "final"
)

type CheckStatus string

const (
	CheckPending CheckStatus = "pending"
	CheckPassed  CheckStatus = "passed"
	CheckFailed  CheckStatus = "failed"
	CheckReview  CheckStatus = "review"
)
