package services

import (
	"testing"
	"time"

	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/database"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/models"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db             *gorm.DB
	orderService   OrderService
	paymentService PaymentService
	serviceType    models.ServiceType
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	serviceType := models.ServiceType{Name: "Wash & Fold", PricePerKg: 40, IsActive: true}
	require.NoError(t, db.Create(&serviceType).Error)

	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	return &testEnv{
		db:             db,
		orderService:   NewOrderService(orderRepo, orderItemRepo, catalogRepo, nil),
		paymentService: NewPaymentService(orderRepo, orderItemRepo, nil),
		serviceType:    serviceType,
	}
}

func itemOrderInput() OrderInput {
	return OrderInput{
		CustomerName: "Ravi Kumar",
		DueDate:      time.Now().Add(48 * time.Hour),
		PricingType:  string(models.PricingPerItem),
		Items: ItemMap{
			1: {Name: "Shirt", Quantity: 3, Price: 20},
			2: {Name: "Pants", Quantity: 2, Price: 50},
		},
	}
}

func (e *testEnv) kgOrderInput() OrderInput {
	return OrderInput{
		CustomerName:  "Ravi Kumar",
		DueDate:       time.Now().Add(48 * time.Hour),
		PricingType:   string(models.PricingPerKg),
		ServiceTypeID: &e.serviceType.ID,
		TotalWeight:   5,
		Items: ItemMap{
			1: {Name: "Mixed clothes", Notes: "no fabric softener"},
		},
	}
}

func TestCreateItemOrder(t *testing.T) {
	env := setupTestEnv(t)

	input := itemOrderInput()
	input.Discount = 10
	input.DiscountType = string(models.DiscountPercentage)

	order, err := env.orderService.CreateOrder(input)
	require.NoError(t, err)

	assert.Equal(t, "ORD-000001", order.OrderNumber)
	assert.Equal(t, string(models.OrderReceived), order.Status)
	assert.Equal(t, string(models.PriorityNormal), order.Priority)
	assert.Equal(t, 160.0, order.Subtotal)
	assert.Equal(t, 144.0, order.Amount)
	assert.False(t, order.AmountOverride)
	assert.Equal(t, "Pants (2), Shirt (3)", order.Items)
	assert.Empty(t, order.ItemsDetail)

	items, err := env.orderService.GetOrderItems(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.True(t, item.PaymentPending)
		assert.Equal(t, float64(item.Quantity)*item.PricePerItem, item.TotalPrice)
	}
}

func TestCreateKgOrder(t *testing.T) {
	env := setupTestEnv(t)

	order, err := env.orderService.CreateOrder(env.kgOrderInput())
	require.NoError(t, err)

	assert.Equal(t, 200.0, order.Subtotal)
	assert.Equal(t, 200.0, order.Amount)
	assert.Equal(t, 40.0, order.PricePerKg)
	assert.Equal(t, "Weight-based service: 5kg", order.Items)
	require.Len(t, order.ItemsDetail, 1)
	assert.Equal(t, "Mixed clothes", order.ItemsDetail[0].Name)

	// Kg orders never decompose into line items
	items, err := env.orderService.GetOrderItems(order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestKgPriceSnapshotSurvivesCatalogEdit(t *testing.T) {
	env := setupTestEnv(t)

	order, err := env.orderService.CreateOrder(env.kgOrderInput())
	require.NoError(t, err)

	env.serviceType.PricePerKg = 99
	require.NoError(t, env.db.Save(&env.serviceType).Error)

	reloaded, err := env.orderService.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 40.0, reloaded.PricePerKg)
	assert.Equal(t, 200.0, reloaded.Amount)
}

func TestCreateOrderValidation(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		name   string
		mutate func(*OrderInput)
	}{
		{"missing customer name", func(in *OrderInput) { in.CustomerName = "" }},
		{"missing due date", func(in *OrderInput) { in.DueDate = time.Time{} }},
		{"empty item map", func(in *OrderInput) { in.Items = ItemMap{} }},
		{"unknown pricing type", func(in *OrderInput) { in.PricingType = "litre" }},
		{"negative item price", func(in *OrderInput) {
			in.Items = ItemMap{1: {Name: "Shirt", Quantity: 2, Price: -5}}
		}},
		{"no item with a positive quantity", func(in *OrderInput) {
			in.Items = ItemMap{
				1: {Name: "Shirt", Quantity: 0, Price: 20},
				2: {Name: "Pants", Quantity: -1, Price: 50},
			}
		}},
		{"fixed discount swallows amount", func(in *OrderInput) {
			in.Discount = 200
			in.DiscountType = string(models.DiscountFixed)
		}},
		{"override amount of zero", func(in *OrderInput) {
			zero := 0.0
			in.OverrideAmount = &zero
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := itemOrderInput()
			tt.mutate(&input)

			_, err := env.orderService.CreateOrder(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	t.Run("kg order without service type", func(t *testing.T) {
		input := env.kgOrderInput()
		input.ServiceTypeID = nil
		_, err := env.orderService.CreateOrder(input)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("kg order without weight", func(t *testing.T) {
		input := env.kgOrderInput()
		input.TotalWeight = 0
		_, err := env.orderService.CreateOrder(input)
		assert.ErrorIs(t, err, ErrValidation)
	})

	// No partial state may survive a failed create
	var orderCount, itemCount int64
	env.db.Model(&models.Order{}).Count(&orderCount)
	env.db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestCreateOrderDropsNonPositiveQuantityItems(t *testing.T) {
	env := setupTestEnv(t)

	input := itemOrderInput()
	input.Items = ItemMap{
		1: {Name: "Shirt", Quantity: 3, Price: 20},
		2: {Name: "Pants", Quantity: 0, Price: 50},
		3: {Name: "Towel", Quantity: -2, Price: 10},
	}

	order, err := env.orderService.CreateOrder(input)
	require.NoError(t, err)
	assert.Equal(t, 60.0, order.Subtotal)
	assert.Equal(t, 60.0, order.Amount)
	assert.Equal(t, "Shirt (3)", order.Items)

	items, err := env.orderService.GetOrderItems(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Shirt", items[0].ItemName)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 60.0, items[0].TotalPrice)

	// The same rule holds on edit
	input.Items = ItemMap{
		1: {Name: "Shirt", Quantity: 1, Price: 20},
		2: {Name: "Pants", Quantity: -1, Price: 50},
	}
	updated, err := env.orderService.UpdateOrder(order.ID, input)
	require.NoError(t, err)
	assert.Equal(t, 20.0, updated.Amount)

	items, err = env.orderService.GetOrderItems(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Shirt", items[0].ItemName)
}

func TestUpdateOrderReplacesLineItems(t *testing.T) {
	env := setupTestEnv(t)

	input := OrderInput{
		CustomerName: "Ravi Kumar",
		DueDate:      time.Now().Add(48 * time.Hour),
		PricingType:  string(models.PricingPerItem),
		Items:        ItemMap{1: {Name: "Shirt", Quantity: 2, Price: 20}},
	}
	order, err := env.orderService.CreateOrder(input)
	require.NoError(t, err)

	items, err := env.orderService.GetOrderItems(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Settle the shirt line, then edit the order's items
	require.NoError(t, env.paymentService.SetItemPayment(items[0].ID, false))

	input.Items = ItemMap{
		1: {Name: "Shirt", Quantity: 2, Price: 20},
		2: {Name: "Pants", Quantity: 1, Price: 50},
	}
	_, err = env.orderService.UpdateOrder(order.ID, input)
	require.NoError(t, err)

	items, err = env.orderService.GetOrderItems(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Replace-all resets every payment flag, including the shirt that was
	// already paid
	for _, item := range items {
		assert.True(t, item.PaymentPending)
	}
}

func TestUpdateOrderSwitchToKgDropsLineItems(t *testing.T) {
	env := setupTestEnv(t)

	order, err := env.orderService.CreateOrder(itemOrderInput())
	require.NoError(t, err)

	updated, err := env.orderService.UpdateOrder(order.ID, env.kgOrderInput())
	require.NoError(t, err)
	assert.Equal(t, string(models.PricingPerKg), updated.PricingType)

	items, err := env.orderService.GetOrderItems(order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAmountOverride(t *testing.T) {
	env := setupTestEnv(t)

	override := 500.0
	input := itemOrderInput()
	input.OverrideAmount = &override

	order, err := env.orderService.CreateOrder(input)
	require.NoError(t, err)
	assert.Equal(t, 500.0, order.Amount)
	assert.True(t, order.AmountOverride)
	assert.Equal(t, 160.0, order.Subtotal)
}

func TestUpdateStatusCompletedDate(t *testing.T) {
	env := setupTestEnv(t)

	order, err := env.orderService.CreateOrder(itemOrderInput())
	require.NoError(t, err)
	assert.Nil(t, order.CompletedDate)

	order, err = env.orderService.UpdateStatus(order.ID, string(models.OrderCompleted))
	require.NoError(t, err)
	require.NotNil(t, order.CompletedDate)

	// Any revert clears the stamp again
	order, err = env.orderService.UpdateStatus(order.ID, string(models.OrderProcessing))
	require.NoError(t, err)
	assert.Nil(t, order.CompletedDate)

	_, err = env.orderService.UpdateStatus(order.ID, "shipped")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOrderNumberSequence(t *testing.T) {
	env := setupTestEnv(t)

	first, err := env.orderService.CreateOrder(itemOrderInput())
	require.NoError(t, err)
	second, err := env.orderService.CreateOrder(itemOrderInput())
	require.NoError(t, err)

	assert.Equal(t, "ORD-000001", first.OrderNumber)
	assert.Equal(t, "ORD-000002", second.OrderNumber)

	// Deleting never frees a number for reuse
	require.NoError(t, env.orderService.DeleteOrder(second.ID))
	third, err := env.orderService.CreateOrder(itemOrderInput())
	require.NoError(t, err)
	assert.Equal(t, "ORD-000003", third.OrderNumber)
}

func TestDeleteOrderCascadesLineItems(t *testing.T) {
	env := setupTestEnv(t)

	order, err := env.orderService.CreateOrder(itemOrderInput())
	require.NoError(t, err)

	require.NoError(t, env.orderService.DeleteOrder(order.ID))

	_, err = env.orderService.GetOrder(order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	items, err := env.orderService.GetOrderItems(order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPercentageDiscountClamped(t *testing.T) {
	env := setupTestEnv(t)

	input := itemOrderInput()
	input.Discount = 150
	input.DiscountType = string(models.DiscountPercentage)

	// Clamped to 100%, which zeroes the amount and fails the creation guard
	_, err := env.orderService.CreateOrder(input)
	assert.ErrorIs(t, err, ErrValidation)
}
