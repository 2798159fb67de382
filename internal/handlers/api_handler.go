package handlers

import (
	"net/http"

	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/services"

	"github.com/gin-gonic/gin"
)

// APIHandler serves the supporting surfaces around the order workflow:
// customers, pricing catalogs, quality checks and dashboard stats.
type APIHandler struct {
	customerService  services.CustomerService
	catalogService   services.CatalogService
	qualityService   services.QualityService
	dashboardService services.DashboardService
}

func NewAPIHandler(
	customerService services.CustomerService,
	catalogService services.CatalogService,
	qualityService services.QualityService,
	dashboardService services.DashboardService,
) *APIHandler {
	return &APIHandler{
		customerService:  customerService,
		catalogService:   catalogService,
		qualityService:   qualityService,
		dashboardService: dashboardService,
	}
}

// Customer endpoints

func (h *APIHandler) FindCustomers(c *gin.Context) {
	customers, err := h.customerService.FindCustomers(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (h *APIHandler) CreateCustomer(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	customer, err := h.customerService.CreateCustomer(req.Name, req.Phone)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// Catalog endpoints

func (h *APIHandler) GetActiveItems(c *gin.Context) {
	items, err := h.catalogService.GetActiveItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load catalog items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *APIHandler) CreateItem(c *gin.Context) {
	var req struct {
		Name         string  `json:"name" binding:"required"`
		PricePerItem float64 `json:"price_per_item"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.catalogService.CreateItem(req.Name, req.PricePerItem)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *APIHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Name         string  `json:"name"`
		PricePerItem float64 `json:"price_per_item"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.catalogService.UpdateItem(id, req.Name, req.PricePerItem)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *APIHandler) DeactivateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeactivateItem(id); err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}

func (h *APIHandler) GetActiveServiceTypes(c *gin.Context) {
	serviceTypes, err := h.catalogService.GetActiveServiceTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load service types"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service_types": serviceTypes})
}

func (h *APIHandler) CreateServiceType(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		PricePerKg  float64 `json:"price_per_kg" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	serviceType, err := h.catalogService.CreateServiceType(req.Name, req.Description, req.PricePerKg)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serviceType)
}

func (h *APIHandler) UpdateServiceType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		PricePerKg  float64 `json:"price_per_kg"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	serviceType, err := h.catalogService.UpdateServiceType(id, req.Name, req.Description, req.PricePerKg)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, serviceType)
}

func (h *APIHandler) DeactivateServiceType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeactivateServiceType(id); err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}

// Quality check endpoints

func (h *APIHandler) ListQualityChecks(c *gin.Context) {
	checks, err := h.qualityService.ListChecks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load quality checks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quality_checks": checks})
}

func (h *APIHandler) CreateQualityCheck(c *gin.Context) {
	var req struct {
		OrderID   *uint    `json:"order_id"`
		CheckType string   `json:"check_type" binding:"required"`
		Status    string   `json:"status"`
		Score     int      `json:"score"`
		Issues    []string `json:"issues"`
		Notes     string   `json:"notes"`
		Inspector string   `json:"inspector"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	check, err := h.qualityService.RecordCheck(services.QualityCheckInput{
		OrderID:   req.OrderID,
		CheckType: req.CheckType,
		Status:    req.Status,
		Score:     req.Score,
		Issues:    req.Issues,
		Notes:     req.Notes,
		Inspector: req.Inspector,
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, check)
}

// Dashboard endpoints

func (h *APIHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
