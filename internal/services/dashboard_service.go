package services

import (
	"time"

	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/redis"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/repository"
)

type DashboardStats struct {
	OrdersByStatus    map[string]int64 `json:"orders_by_status"`
	RevenueToday      float64          `json:"revenue_today"`
	PendingPaymentSum float64          `json:"pending_payment_sum"`
	PendingItemCount  int64            `json:"pending_item_count"`
	GeneratedAt       time.Time        `json:"generated_at"`
}

type DashboardService interface {
	GetStats() (*DashboardStats, error)
}

type dashboardService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	cache         *redis.Client
	cacheTTL      time.Duration
}

func NewDashboardService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
) DashboardService {
	return &dashboardService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		cache:         cache,
		cacheTTL:      cacheTTL,
	}
}

// GetStats serves the dashboard headline numbers, from cache when a fresh
// copy exists. Stale reads are acceptable here; order mutations invalidate
// the cache.
func (s *dashboardService) GetStats() (*DashboardStats, error) {
	if s.cache != nil {
		var cached DashboardStats
		if err := s.cache.GetDashboardStats(&cached); err == nil {
			return &cached, nil
		}
	}

	counts, err := s.orderRepo.CountByStatus()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	revenue, err := s.orderRepo.RevenueSince(midnight)
	if err != nil {
		return nil, err
	}

	pendingCount, pendingSum, err := s.orderItemRepo.PendingTotals()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		OrdersByStatus:    counts,
		RevenueToday:      revenue,
		PendingPaymentSum: pendingSum,
		PendingItemCount:  pendingCount,
		GeneratedAt:       time.Now(),
	}

	if s.cache != nil {
		s.cache.SetDashboardStats(stats, s.cacheTTL)
	}
	return stats, nil
}
