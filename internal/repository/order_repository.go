package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/models"

	"gorm.io/gorm"
)

// OrderListOptions narrows and pages an order listing. Zero values mean
// "no filter"; a zero PageSize disables pagination.
type OrderListOptions struct {
	Page          int
	PageSize      int
	Search        string // matched against customer name and order number
	Status        string
	PaymentStatus string // "paid" or "pending"
}

type OrderRepository interface {
	CreateWithItems(order *models.Order, items []models.OrderItem) error
	UpdateWithItems(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByOrderNumber(orderNumber string) (*models.Order, error)
	List(opts OrderListOptions) ([]models.Order, int64, error)
	Update(order *models.Order) error
	Delete(id uint) error
	NextOrderNumber() (string, error)
	CountByStatus() (map[string]int64, error)
	RevenueSince(since time.Time) (float64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithItems persists the order and its line items in one transaction
// so a failed line insert never leaves a bare order behind.
func (r *orderRepository) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return insertOrderItems(tx, order.ID, items)
	})
}

// UpdateWithItems saves the order and replaces its line item set wholesale
// inside one transaction. Every line is reinserted with payment pending;
// editing items intentionally resets payment flags.
func (r *orderRepository) UpdateWithItems(order *models.Order, items []models.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(order).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return insertOrderItems(tx, order.ID, items)
	})
}

func insertOrderItems(tx *gorm.DB, orderID uint, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ID = 0
		items[i].OrderID = orderID
	}
	return tx.Create(&items).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("order_number = ?", orderNumber).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(opts OrderListOptions) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})

	if opts.Search != "" {
		pattern := "%" + strings.ToLower(opts.Search) + "%"
		query = query.Where("LOWER(customer_name) LIKE ? OR LOWER(order_number) LIKE ?", pattern, pattern)
	}
	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}

	// An order has pending payments iff at least one of its lines does.
	// Kg-priced orders have no lines, so they always classify as paid.
	pendingIDs := r.db.Model(&models.OrderItem{}).
		Select("order_id").
		Where("payment_pending = ?", true)
	switch opts.PaymentStatus {
	case "pending":
		query = query.Where("id IN (?)", pendingIDs)
	case "paid":
		query = query.Where("id NOT IN (?)", pendingIDs)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if opts.PageSize > 0 {
		page := opts.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * opts.PageSize).Limit(opts.PageSize)
	}

	var orders []models.Order
	err := query.Order("created_at DESC").Find(&orders).Error
	return orders, total, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

// Delete removes the order and all of its line items. The line items go
// first so a mid-transaction failure cannot orphan them.
func (r *orderRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}

// NextOrderNumber returns the next human-facing sequential number, e.g.
// "ORD-000042". Soft-deleted orders still count so numbers are never reused.
func (r *orderRepository) NextOrderNumber() (string, error) {
	var count int64
	if err := r.db.Unscoped().Model(&models.Order{}).Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%06d", count+1), nil
}

func (r *orderRepository) CountByStatus() (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}

func (r *orderRepository) RevenueSince(since time.Time) (float64, error) {
	var revenue *float64
	err := r.db.Model(&models.Order{}).
		Select("SUM(amount)").
		Where("date_received >= ?", since).
		Scan(&revenue).Error
	if err != nil {
		return 0, err
	}
	if revenue == nil {
		return 0, nil
	}
	return *revenue, nil
}
