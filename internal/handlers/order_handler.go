package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/repository"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderHandler struct {
	orderService   services.OrderService
	paymentService services.PaymentService
}

func NewOrderHandler(orderService services.OrderService, paymentService services.PaymentService) *OrderHandler {
	return &OrderHandler{orderService: orderService, paymentService: paymentService}
}

// OrderRequest is the wire form of an order snapshot, shared by create and
// update since both submit the full edited state.
type OrderRequest struct {
	CustomerID     *uint                           `json:"customer_id"`
	CustomerName   string                          `json:"customer_name"`
	CustomerPhone  string                          `json:"customer_phone"`
	Priority       string                          `json:"priority"`
	DueDate        string                          `json:"due_date"`
	DateReceived   string                          `json:"date_received"`
	PricingType    string                          `json:"pricing_type"`
	Items          map[uint]services.ItemSelection `json:"items"`
	ServiceTypeID  *uint                           `json:"service_type_id"`
	TotalWeight    float64                         `json:"total_weight"`
	Discount       float64                         `json:"discount"`
	DiscountType   string                          `json:"discount_type"`
	OverrideAmount *float64                        `json:"override_amount"`
}

func (r OrderRequest) toInput() (services.OrderInput, error) {
	dueDate, err := parseDate(r.DueDate)
	if err != nil {
		return services.OrderInput{}, err
	}
	var dateReceived time.Time
	if r.DateReceived != "" {
		dateReceived, err = parseDate(r.DateReceived)
		if err != nil {
			return services.OrderInput{}, err
		}
	}
	return services.OrderInput{
		CustomerID:     r.CustomerID,
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		Priority:       r.Priority,
		DueDate:        dueDate,
		DateReceived:   dateReceived,
		PricingType:    r.PricingType,
		Items:          services.ItemMap(r.Items),
		ServiceTypeID:  r.ServiceTypeID,
		TotalWeight:    r.TotalWeight,
		Discount:       r.Discount,
		DiscountType:   r.DiscountType,
		OverrideAmount: r.OverrideAmount,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	opts := repository.OrderListOptions{
		Page:          page,
		PageSize:      pageSize,
		Search:        c.Query("search"),
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
	}

	orders, total, err := h.orderService.ListOrders(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":    orders,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	order, err := h.orderService.CreateOrder(input)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	items, err := h.orderService.GetOrderItems(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":           order,
		"items":           items,
		"payment_summary": services.SummarizeItems(items),
	})
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	order, err := h.orderService.UpdateOrder(id, input)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.UpdateStatus(id, req.Status)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(id); err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *OrderHandler) GetPayments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	summary, err := h.paymentService.GetSummary(id)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	items, err := h.orderService.GetOrderItems(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"items":   items,
	})
}

func (h *OrderHandler) UpdateItemPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		PaymentPending *bool `json:"payment_pending" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.paymentService.SetItemPayment(id, *req.PaymentPending); err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *OrderHandler) MarkAllPaid(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.paymentService.MarkAllPaid(id); err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *OrderHandler) MarkAllPending(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.paymentService.MarkAllPending(id); err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
