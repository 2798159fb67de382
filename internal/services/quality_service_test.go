package services

import (
	"testing"

	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/models"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCheckSnapshotsOrder(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewQualityService(
		repository.NewQualityCheckRepository(env.db),
		repository.NewOrderRepository(env.db),
	)

	order, err := env.orderService.CreateOrder(itemOrderInput())
	require.NoError(t, err)

	check, err := svc.RecordCheck(QualityCheckInput{
		OrderID:   &order.ID,
		CheckType: string(models.CheckFinal),
		Status:    string(models.CheckPassed),
		Score:     92,
		Inspector: "Meera",
	})
	require.NoError(t, err)

	assert.Equal(t, order.OrderNumber, check.OrderNumber)
	assert.Equal(t, order.CustomerName, check.CustomerName)
	require.NotNil(t, check.CheckedAt)

	// The latest score lands on the order itself
	reloaded, err := env.orderService.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 92, reloaded.QualityScore)
}

func TestRecordCheckValidation(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewQualityService(
		repository.NewQualityCheckRepository(env.db),
		repository.NewOrderRepository(env.db),
	)

	_, err := svc.RecordCheck(QualityCheckInput{CheckType: "spin-cycle"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.RecordCheck(QualityCheckInput{CheckType: string(models.CheckFinal), Score: 150})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecordCheckWithoutOrder(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewQualityService(
		repository.NewQualityCheckRepository(env.db),
		repository.NewOrderRepository(env.db),
	)

	check, err := svc.RecordCheck(QualityCheckInput{
		CheckType: string(models.CheckPreWash),
		Score:     70,
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.CheckPending), check.Status)
	assert.Empty(t, check.OrderNumber)

	checks, err := svc.ListChecks()
	require.NoError(t, err)
	assert.Len(t, checks, 1)
}
