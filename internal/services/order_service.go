package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/models"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/redis"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ErrValidation marks failures caught before any persistence call. Callers
// that need to tell a bad request from a storage failure check it with
// errors.Is.
var ErrValidation = errors.New("validation failed")

var validate = validator.New()

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// OrderInput is the full order snapshot submitted on create and update.
// Items carries price snapshots taken from the catalog at selection time;
// the per-kg rate is snapshotted here from the referenced service type.
type OrderInput struct {
	CustomerID     *uint
	CustomerName   string `validate:"required"`
	CustomerPhone  string
	Priority       string `validate:"omitempty,oneof=low normal urgent"`
	DueDate        time.Time
	DateReceived   time.Time
	PricingType    string `validate:"required,oneof=item kg"`
	Items          ItemMap
	ServiceTypeID  *uint
	TotalWeight    float64 `validate:"gte=0"`
	Discount       float64 `validate:"gte=0"`
	DiscountType   string  `validate:"omitempty,oneof=percentage fixed"`
	OverrideAmount *float64
}

type OrderService interface {
	CreateOrder(input OrderInput) (*models.Order, error)
	UpdateOrder(id uint, input OrderInput) (*models.Order, error)
	GetOrder(id uint) (*models.Order, error)
	GetOrderItems(orderID uint) ([]models.OrderItem, error)
	ListOrders(opts repository.OrderListOptions) ([]models.Order, int64, error)
	UpdateStatus(id uint, status string) (*models.Order, error)
	DeleteOrder(id uint) error
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	catalogRepo   repository.CatalogRepository
	cache         *redis.Client
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	catalogRepo repository.CatalogRepository,
	cache *redis.Client,
) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		catalogRepo:   catalogRepo,
		cache:         cache,
	}
}

func (s *orderService) CreateOrder(input OrderInput) (*models.Order, error) {
	order := &models.Order{
		Status:       string(models.OrderReceived),
		DateReceived: input.DateReceived,
	}
	if order.DateReceived.IsZero() {
		order.DateReceived = time.Now()
	}

	items, err := s.applyInput(order, input)
	if err != nil {
		return nil, err
	}

	orderNumber, err := s.orderRepo.NextOrderNumber()
	if err != nil {
		return nil, err
	}
	order.OrderNumber = orderNumber

	if err := s.orderRepo.CreateWithItems(order, items); err != nil {
		return nil, err
	}
	s.invalidateDashboard()
	return order, nil
}

func (s *orderService) UpdateOrder(id uint, input OrderInput) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	// The edit form resubmits the whole pricing snapshot but never touches
	// identity, status or intake date.
	items, err := s.applyInput(order, input)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateWithItems(order, items); err != nil {
		return nil, err
	}
	s.invalidateDashboard()
	return order, nil
}

// applyInput validates the snapshot, prices it, and writes the result onto
// the order. Returns the replacement line item set (empty for kg pricing).
// Nothing is persisted here; a validation failure leaves no partial state.
func (s *orderService) applyInput(order *models.Order, input OrderInput) ([]models.OrderItem, error) {
	if err := validate.Struct(input); err != nil {
		return nil, validationError("%v", err)
	}
	if input.DueDate.IsZero() {
		return nil, validationError("due date is required")
	}

	discountType := input.DiscountType
	if discountType == "" {
		discountType = string(models.DiscountPercentage)
	}
	discount := input.Discount
	if discountType == string(models.DiscountPercentage) && discount > 100 {
		discount = 100
	}

	var (
		subtotal float64
		items    []models.OrderItem
	)

	switch input.PricingType {
	case string(models.PricingPerItem):
		// Zero- and negative-quantity entries are dropped, never persisted
		selections := input.Items.Compact()
		for _, selection := range selections {
			if selection.Price < 0 {
				return nil, validationError("item price cannot be negative")
			}
		}
		if len(selections) == 0 {
			return nil, validationError("at least one item is required for per-item pricing")
		}
		subtotal = selections.Subtotal()
		items = selections.LineItems()
		order.Items = selections.Summary()
		order.ItemsDetail = nil
		order.ServiceTypeID = nil
		order.PricePerKg = 0
		order.TotalWeight = 0

	case string(models.PricingPerKg):
		if input.ServiceTypeID == nil {
			return nil, validationError("service type is required for per-kg pricing")
		}
		if input.TotalWeight <= 0 {
			return nil, validationError("total weight must be greater than zero")
		}
		serviceType, err := s.catalogRepo.GetServiceTypeByID(*input.ServiceTypeID)
		if err != nil {
			return nil, err
		}
		subtotal = KgSubtotal(input.TotalWeight, serviceType.PricePerKg)
		order.Items = fmt.Sprintf("Weight-based service: %gkg", input.TotalWeight)
		order.ItemsDetail = input.Items.Descriptors()
		order.ServiceTypeID = input.ServiceTypeID
		order.PricePerKg = serviceType.PricePerKg
		order.TotalWeight = input.TotalWeight
	}

	amount := ApplyDiscount(subtotal, discount, discountType)
	if input.OverrideAmount != nil {
		amount = *input.OverrideAmount
		order.AmountOverride = true
	} else {
		order.AmountOverride = false
	}
	if amount <= 0 {
		return nil, validationError("amount must be greater than zero")
	}

	order.CustomerID = input.CustomerID
	order.CustomerName = input.CustomerName
	order.CustomerPhone = input.CustomerPhone
	order.PricingType = input.PricingType
	order.Subtotal = subtotal
	order.Discount = discount
	order.DiscountType = discountType
	order.Amount = amount
	order.DueDate = input.DueDate
	order.Priority = input.Priority
	if order.Priority == "" {
		order.Priority = string(models.PriorityNormal)
	}

	return items, nil
}

func (s *orderService) GetOrder(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetOrderItems(orderID uint) ([]models.OrderItem, error) {
	return s.orderItemRepo.GetByOrderID(orderID)
}

func (s *orderService) ListOrders(opts repository.OrderListOptions) ([]models.Order, int64, error) {
	return s.orderRepo.List(opts)
}

// UpdateStatus applies a status change. Any status may follow any other;
// only the completed stamp is coupled to the transition.
func (s *orderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, validationError("unknown status %q", status)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if status == string(models.OrderCompleted) {
		now := time.Now()
		order.CompletedDate = &now
	} else {
		order.CompletedDate = nil
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	s.invalidateDashboard()
	return order, nil
}

func (s *orderService) DeleteOrder(id uint) error {
	if err := s.orderRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateDashboard()
	return nil
}

func (s *orderService) invalidateDashboard() {
	if s.cache != nil {
		s.cache.InvalidateDashboard()
	}
}
