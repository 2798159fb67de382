package services

import (
	"testing"

	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeItems(t *testing.T) {
	items := []models.OrderItem{
		{TotalPrice: 60, PaymentPending: true},
		{TotalPrice: 50, PaymentPending: false},
		{TotalPrice: 40, PaymentPending: true},
	}

	summary := SummarizeItems(items)
	assert.Equal(t, 3, summary.TotalCount)
	assert.Equal(t, 1, summary.PaidCount)
	assert.Equal(t, 50.0, summary.PaidAmount)
	assert.True(t, summary.HasPendingPayments)
}

func TestSummarizeItemsEmpty(t *testing.T) {
	summary := SummarizeItems(nil)
	assert.Equal(t, 0, summary.TotalCount)
	assert.False(t, summary.HasPendingPayments)
}

func TestSummarizeItemsAllPaid(t *testing.T) {
	items := []models.OrderItem{
		{TotalPrice: 60, PaymentPending: false},
		{TotalPrice: 50, PaymentPending: false},
	}

	summary := SummarizeItems(items)
	assert.False(t, summary.HasPendingPayments)
	assert.Equal(t, 2, summary.PaidCount)
	assert.Equal(t, 110.0, summary.PaidAmount)
}

func TestGetSummaryForItemOrder(t *testing.T) {
	env := setupTestEnv(t)

	order, err := env.orderService.CreateOrder(itemOrderInput())
	require.NoError(t, err)

	summary, err := env.paymentService.GetSummary(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalCount)
	assert.Equal(t, 0, summary.PaidCount)
	assert.True(t, summary.HasPendingPayments)
}

func TestGetSummaryForKgOrder(t *testing.T) {
	env := setupTestEnv(t)

	order, err := env.orderService.CreateOrder(env.kgOrderInput())
	require.NoError(t, err)

	// Kg orders settle at the order level and never report pending payments
	summary, err := env.paymentService.GetSummary(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalCount)
	assert.False(t, summary.HasPendingPayments)
}

func TestSetItemPaymentIdempotent(t *testing.T) {
	env := setupTestEnv(t)

	order, err := env.orderService.CreateOrder(itemOrderInput())
	require.NoError(t, err)
	items, err := env.orderService.GetOrderItems(order.ID)
	require.NoError(t, err)

	require.NoError(t, env.paymentService.SetItemPayment(items[0].ID, false))
	require.NoError(t, env.paymentService.SetItemPayment(items[0].ID, false))

	summary, err := env.paymentService.GetSummary(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.PaidCount)
	assert.Equal(t, items[0].TotalPrice, summary.PaidAmount)
	assert.True(t, summary.HasPendingPayments)
}

func TestMarkAllPaidAndPending(t *testing.T) {
	env := setupTestEnv(t)

	order, err := env.orderService.CreateOrder(itemOrderInput())
	require.NoError(t, err)

	require.NoError(t, env.paymentService.MarkAllPaid(order.ID))
	summary, err := env.paymentService.GetSummary(order.ID)
	require.NoError(t, err)
	assert.Equal(t, summary.TotalCount, summary.PaidCount)
	assert.False(t, summary.HasPendingPayments)

	require.NoError(t, env.paymentService.MarkAllPending(order.ID))
	summary, err = env.paymentService.GetSummary(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.PaidCount)
	assert.True(t, summary.HasPendingPayments)
}

func TestSetItemPaymentUnknownItem(t *testing.T) {
	env := setupTestEnv(t)
	err := env.paymentService.SetItemPayment(9999, false)
	assert.Error(t, err)
}
