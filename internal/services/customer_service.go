package services

import (
	"strings"

	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/models"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/repository"
)

type CustomerService interface {
	CreateCustomer(name, phone string) (*models.Customer, error)
	FindCustomers(query string) ([]models.Customer, error)
	GetAllCustomers() ([]models.Customer, error)
	GetCustomerByID(id uint) (*models.Customer, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

// CreateCustomer registers a walk-in customer from the order form. Email is
// mandatory on the record, so a placeholder is derived from the name until a
// real address is captured.
func (s *customerService) CreateCustomer(name, phone string) (*models.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationError("customer name is required")
	}

	customer := &models.Customer{
		Name:        name,
		Phone:       phone,
		Email:       placeholderEmail(name),
		LoyaltyTier: string(models.TierBronze),
		Status:      "active",
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func placeholderEmail(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "") + "@temp.com"
}

func (s *customerService) FindCustomers(query string) ([]models.Customer, error) {
	if strings.TrimSpace(query) == "" {
		return s.customerRepo.GetAll()
	}
	return s.customerRepo.Find(query)
}

func (s *customerService) GetAllCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

func (s *customerService) GetCustomerByID(id uint) (*models.Customer, error) {
	return s.customerRepo.GetByID(id)
}
