package services

import (
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/models"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/repository"
)

// CatalogService maintains the pricing catalogs. Only active entries are
// offered for new orders; deactivation hides an entry without disturbing the
// price snapshots already copied onto existing orders.
type CatalogService interface {
	GetActiveItems() ([]models.LaundryItem, error)
	CreateItem(name string, pricePerItem float64) (*models.LaundryItem, error)
	UpdateItem(id uint, name string, pricePerItem float64) (*models.LaundryItem, error)
	DeactivateItem(id uint) error

	GetActiveServiceTypes() ([]models.ServiceType, error)
	CreateServiceType(name, description string, pricePerKg float64) (*models.ServiceType, error)
	UpdateServiceType(id uint, name, description string, pricePerKg float64) (*models.ServiceType, error)
	DeactivateServiceType(id uint) error
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) GetActiveItems() ([]models.LaundryItem, error) {
	return s.catalogRepo.GetActiveItems()
}

func (s *catalogService) CreateItem(name string, pricePerItem float64) (*models.LaundryItem, error) {
	if name == "" {
		return nil, validationError("item name is required")
	}
	if pricePerItem < 0 {
		return nil, validationError("price per item cannot be negative")
	}
	item := &models.LaundryItem{Name: name, PricePerItem: pricePerItem, IsActive: true}
	if err := s.catalogRepo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *catalogService) UpdateItem(id uint, name string, pricePerItem float64) (*models.LaundryItem, error) {
	item, err := s.catalogRepo.GetItemByID(id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		item.Name = name
	}
	if pricePerItem >= 0 {
		item.PricePerItem = pricePerItem
	}
	if err := s.catalogRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *catalogService) DeactivateItem(id uint) error {
	item, err := s.catalogRepo.GetItemByID(id)
	if err != nil {
		return err
	}
	item.IsActive = false
	return s.catalogRepo.UpdateItem(item)
}

func (s *catalogService) GetActiveServiceTypes() ([]models.ServiceType, error) {
	return s.catalogRepo.GetActiveServiceTypes()
}

func (s *catalogService) CreateServiceType(name, description string, pricePerKg float64) (*models.ServiceType, error) {
	if name == "" {
		return nil, validationError("service type name is required")
	}
	if pricePerKg <= 0 {
		return nil, validationError("price per kg must be greater than zero")
	}
	serviceType := &models.ServiceType{
		Name:        name,
		Description: description,
		PricePerKg:  pricePerKg,
		IsActive:    true,
	}
	if err := s.catalogRepo.CreateServiceType(serviceType); err != nil {
		return nil, err
	}
	return serviceType, nil
}

func (s *catalogService) UpdateServiceType(id uint, name, description string, pricePerKg float64) (*models.ServiceType, error) {
	serviceType, err := s.catalogRepo.GetServiceTypeByID(id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		serviceType.Name = name
	}
	if description != "" {
		serviceType.Description = description
	}
	if pricePerKg > 0 {
		serviceType.PricePerKg = pricePerKg
	}
	if err := s.catalogRepo.UpdateServiceType(serviceType); err != nil {
		return nil, err
	}
	return serviceType, nil
}

func (s *catalogService) DeactivateServiceType(id uint) error {
	serviceType, err := s.catalogRepo.GetServiceTypeByID(id)
	if err != nil {
		return err
	}
	serviceType.IsActive = false
	return s.catalogRepo.UpdateServiceType(serviceType)
}
