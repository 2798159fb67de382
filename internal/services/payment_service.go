package services

import (
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/models"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/redis"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/repository"
)

// PaymentSummary condenses an order's line payment flags into one view.
// Kg-priced orders carry no lines; they report zero counts and never have
// pending payments.
type PaymentSummary struct {
	TotalCount         int     `json:"total_count"`
	PaidCount          int     `json:"paid_count"`
	PaidAmount         float64 `json:"paid_amount"`
	HasPendingPayments bool    `json:"has_pending_payments"`
}

type PaymentService interface {
	GetSummary(orderID uint) (*PaymentSummary, error)
	SetItemPayment(itemID uint, pending bool) error
	MarkAllPaid(orderID uint) error
	MarkAllPending(orderID uint) error
}

type paymentService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	cache         *redis.Client
}

func NewPaymentService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	cache *redis.Client,
) PaymentService {
	return &paymentService{orderRepo: orderRepo, orderItemRepo: orderItemRepo, cache: cache}
}

// SummarizeItems derives the aggregate payment state from a line item set.
func SummarizeItems(items []models.OrderItem) PaymentSummary {
	summary := PaymentSummary{TotalCount: len(items)}
	for _, item := range items {
		if item.PaymentPending {
			summary.HasPendingPayments = true
			continue
		}
		summary.PaidCount++
		summary.PaidAmount += item.TotalPrice
	}
	return summary
}

func (s *paymentService) GetSummary(orderID uint) (*PaymentSummary, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	// Kg orders are settled at the order level, never per item.
	if order.PricingType == string(models.PricingPerKg) {
		return &PaymentSummary{}, nil
	}

	items, err := s.orderItemRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	summary := SummarizeItems(items)
	return &summary, nil
}

// Payment toggles feed the pending-payment dashboard numbers, so each one
// drops the cached stats like the order mutations do.
func (s *paymentService) SetItemPayment(itemID uint, pending bool) error {
	if err := s.orderItemRepo.SetPaymentPending(itemID, pending); err != nil {
		return err
	}
	s.invalidateDashboard()
	return nil
}

func (s *paymentService) MarkAllPaid(orderID uint) error {
	if err := s.orderItemRepo.SetAllPaymentPending(orderID, false); err != nil {
		return err
	}
	s.invalidateDashboard()
	return nil
}

func (s *paymentService) MarkAllPending(orderID uint) error {
	if err := s.orderItemRepo.SetAllPaymentPending(orderID, true); err != nil {
		return err
	}
	s.invalidateDashboard()
	return nil
}

func (s *paymentService) invalidateDashboard() {
	if s.cache != nil {
		s.cache.InvalidateDashboard()
	}
}
