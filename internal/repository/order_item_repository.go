package repository

import (
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	GetByID(id uint) (*models.OrderItem, error)
	GetByOrderID(orderID uint) ([]models.OrderItem, error)
	SetPaymentPending(id uint, pending bool) error
	SetAllPaymentPending(orderID uint, pending bool) error
	PendingTotals() (int64, float64, error)
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) GetByID(id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepository) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Order("created_at ASC, id ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SetPaymentPending writes the flag unconditionally, so repeating the same
// toggle is harmless.
func (r *orderItemRepository) SetPaymentPending(id uint, pending bool) error {
	result := r.db.Model(&models.OrderItem{}).Where("id = ?", id).Update("payment_pending", pending)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetAllPaymentPending flips every line of the order in a single statement,
// so a bulk toggle can never be applied partially.
func (r *orderItemRepository) SetAllPaymentPending(orderID uint, pending bool) error {
	return r.db.Model(&models.OrderItem{}).
		Where("order_id = ?", orderID).
		Update("payment_pending", pending).Error
}

// PendingTotals returns the count and summed value of all unpaid lines
// across live orders.
func (r *orderItemRepository) PendingTotals() (int64, float64, error) {
	var count int64
	err := r.db.Model(&models.OrderItem{}).
		Where("payment_pending = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, 0, err
	}

	var amount *float64
	err = r.db.Model(&models.OrderItem{}).
		Select("SUM(total_price)").
		Where("payment_pending = ?", true).
		Scan(&amount).Error
	if err != nil {
		return 0, 0, err
	}
	if amount == nil {
		return count, 0, nil
	}
	return count, *amount, nil
}
