package services

import (
	"testing"
	"time"

	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/models"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDashboardService(env *testEnv) DashboardService {
	return NewDashboardService(
		repository.NewOrderRepository(env.db),
		repository.NewOrderItemRepository(env.db),
		nil,
		time.Minute,
	)
}

func TestDashboardStats(t *testing.T) {
	env := setupTestEnv(t)
	svc := setupDashboardService(env)

	order, err := env.orderService.CreateOrder(itemOrderInput())
	require.NoError(t, err)

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.OrdersByStatus[string(models.OrderReceived)])
	assert.Equal(t, order.Amount, stats.RevenueToday)
	assert.Equal(t, int64(2), stats.PendingItemCount)
	assert.Equal(t, order.Subtotal, stats.PendingPaymentSum)
}

func TestDashboardRevenueExcludesYesterday(t *testing.T) {
	env := setupTestEnv(t)
	svc := setupDashboardService(env)

	today, err := env.orderService.CreateOrder(itemOrderInput())
	require.NoError(t, err)

	// Received just before local midnight: yesterday's revenue, regardless
	// of how the server's zone relates to UTC
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := models.Order{
		OrderNumber:  "ORD-009999",
		CustomerName: "Anita Desai",
		Status:       string(models.OrderCompleted),
		PricingType:  string(models.PricingPerItem),
		Subtotal:     75,
		Amount:       75,
		DateReceived: midnight.Add(-30 * time.Minute),
		DueDate:      now.Add(24 * time.Hour),
	}
	require.NoError(t, env.db.Create(&yesterday).Error)

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, today.Amount, stats.RevenueToday)
}
