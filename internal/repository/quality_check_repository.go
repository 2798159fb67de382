package repository

import (
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/models"

	"gorm.io/gorm"
)

type QualityCheckRepository interface {
	Create(check *models.QualityCheck) error
	GetAll() ([]models.QualityCheck, error)
	GetByOrderID(orderID uint) ([]models.QualityCheck, error)
}

type qualityCheckRepository struct {
	db *gorm.DB
}

func NewQualityCheckRepository(db *gorm.DB) QualityCheckRepository {
	return &qualityCheckRepository{db: db}
}

func (r *qualityCheckRepository) Create(check *models.QualityCheck) error {
	return r.db.Create(check).Error
}

func (r *qualityCheckRepository) GetAll() ([]models.QualityCheck, error) {
	var checks []models.QualityCheck
	err := r.db.Order("created_at DESC").Find(&checks).Error
	return checks, err
}

func (r *qualityCheckRepository) GetByOrderID(orderID uint) ([]models.QualityCheck, error) {
	var checks []models.QualityCheck
	err := r.db.Where("order_id = ?", orderID).Order("created_at DESC").Find(&checks).Error
	return checks, err
}
