package services

import (
	"time"

	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/models"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/repository"
)

type QualityCheckInput struct {
	OrderID   *uint
	CheckType string `validate:"required,oneof=pre-wash post-wash pre-dry post-dry final"`
	Status    string `validate:"omitempty,oneof=pending passed failed review"`
	Score     int    `validate:"gte=0,lte=100"`
	Issues    []string
	Notes     string
	Inspector string
}

type QualityService interface {
	RecordCheck(input QualityCheckInput) (*models.QualityCheck, error)
	ListChecks() ([]models.QualityCheck, error)
	GetChecksForOrder(orderID uint) ([]models.QualityCheck, error)
}

type qualityService struct {
	qualityRepo repository.QualityCheckRepository
	orderRepo   repository.OrderRepository
}

func NewQualityService(qualityRepo repository.QualityCheckRepository, orderRepo repository.OrderRepository) QualityService {
	return &qualityService{qualityRepo: qualityRepo, orderRepo: orderRepo}
}

// RecordCheck files an inspection result. When the check is tied to an
// order, the order number and customer name are snapshotted onto the record
// and the order's quality score is refreshed to the latest result.
func (s *qualityService) RecordCheck(input QualityCheckInput) (*models.QualityCheck, error) {
	if err := validate.Struct(input); err != nil {
		return nil, validationError("%v", err)
	}

	check := &models.QualityCheck{
		OrderID:   input.OrderID,
		CheckType: input.CheckType,
		Status:    input.Status,
		Score:     input.Score,
		Issues:    input.Issues,
		Notes:     input.Notes,
		Inspector: input.Inspector,
	}
	if check.Status == "" {
		check.Status = string(models.CheckPending)
	}
	now := time.Now()
	check.CheckedAt = &now

	var order *models.Order
	if input.OrderID != nil {
		var err error
		order, err = s.orderRepo.GetByID(*input.OrderID)
		if err != nil {
			return nil, err
		}
		check.OrderNumber = order.OrderNumber
		check.CustomerName = order.CustomerName
	}

	if err := s.qualityRepo.Create(check); err != nil {
		return nil, err
	}

	if order != nil {
		order.QualityScore = input.Score
		if err := s.orderRepo.Update(order); err != nil {
			return nil, err
		}
	}
	return check, nil
}

func (s *qualityService) ListChecks() ([]models.QualityCheck, error) {
	return s.qualityRepo.GetAll()
}

func (s *qualityService) GetChecksForOrder(orderID uint) ([]models.QualityCheck, error) {
	return s.qualityRepo.GetByOrderID(orderID)
}
