package repository

import (
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/models"

	"gorm.io/gorm"
)

// CatalogRepository serves the two pricing catalogs: laundry items for
// per-item orders and service types for per-kg orders.
type CatalogRepository interface {
	GetActiveItems() ([]models.LaundryItem, error)
	GetItemByID(id uint) (*models.LaundryItem, error)
	CreateItem(item *models.LaundryItem) error
	UpdateItem(item *models.LaundryItem) error

	GetActiveServiceTypes() ([]models.ServiceType, error)
	GetServiceTypeByID(id uint) (*models.ServiceType, error)
	CreateServiceType(serviceType *models.ServiceType) error
	UpdateServiceType(serviceType *models.ServiceType) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetActiveItems() ([]models.LaundryItem, error) {
	var items []models.LaundryItem
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *catalogRepository) GetItemByID(id uint) (*models.LaundryItem, error) {
	var item models.LaundryItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) CreateItem(item *models.LaundryItem) error {
	return r.db.Create(item).Error
}

func (r *catalogRepository) UpdateItem(item *models.LaundryItem) error {
	return r.db.Save(item).Error
}

func (r *catalogRepository) GetActiveServiceTypes() ([]models.ServiceType, error) {
	var serviceTypes []models.ServiceType
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&serviceTypes).Error
	return serviceTypes, err
}

func (r *catalogRepository) GetServiceTypeByID(id uint) (*models.ServiceType, error) {
	var serviceType models.ServiceType
	err := r.db.First(&serviceType, id).Error
	if err != nil {
		return nil, err
	}
	return &serviceType, nil
}

func (r *catalogRepository) CreateServiceType(serviceType *models.ServiceType) error {
	return r.db.Create(serviceType).Error
}

func (r *catalogRepository) UpdateServiceType(serviceType *models.ServiceType) error {
	return r.db.Save(serviceType).Error
}
