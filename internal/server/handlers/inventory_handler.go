package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HIBA-BEG/Warehouse-Management/internal/catalog"
	"github.com/HIBA-BEG/Warehouse-Management/internal/domain/models"
	"github.com/HIBA-BEG/Warehouse-Management/internal/service/reporting"
	"github.com/HIBA-BEG/Warehouse-Management/internal/session"
	"github.com/HIBA-BEG/Warehouse-Management/pkg/clients/warehouse"
)

// InventoryHandler adapts the API client, the catalog views and the
// session store to HTTP. It owns no state of its own; every request
// works on a fresh fetch.
type InventoryHandler struct {
	client    warehouse.Client
	sessions  session.Store
	reporting *reporting.Service
	logger    *zap.Logger
}

// NewInventoryHandler constructs the HTTP handler adapter.
func NewInventoryHandler(client warehouse.Client, sessions session.Store, reportingSvc *reporting.Service, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{
		client:    client,
		sessions:  sessions,
		reporting: reportingSvc,
		logger:    logger,
	}
}

// productView decorates a product with its derived stock status for
// list responses.
type productView struct {
	models.Product
	Status catalog.StockStatus `json:"status"`
}

// Login authenticates the submitted secret key and binds the session.
func (h *InventoryHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result := h.client.Authenticate(c.Request.Context(), req.SecretKey)
	if !result.Success {
		if result.Error != "" {
			c.JSON(http.StatusBadGateway, gin.H{"error": result.Error})
			return
		}
		// Unknown key is a normal outcome, not a backend failure.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid secret key"})
		return
	}

	if err := h.sessions.Save(c.Request.Context(), *result.Warehouseman); err != nil {
		h.logger.Error("failed to save session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to save session"})
		return
	}

	h.logger.Info("warehouseman logged in",
		zap.Int64("id", result.Warehouseman.ID),
		zap.String("city", result.Warehouseman.City))
	c.JSON(http.StatusOK, result)
}

// Logout tears the session down.
func (h *InventoryHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Request.Context()); err != nil {
		h.logger.Error("failed to clear session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to clear session"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListProducts fetches the catalog and applies the requested filter and
// sort before responding. Supported query params: q, sort, order.
func (h *InventoryHandler) ListProducts(c *gin.Context) {
	result := h.client.ListProducts(c.Request.Context())
	if !result.Success {
		c.JSON(http.StatusBadGateway, gin.H{"error": result.Error})
		return
	}

	products := catalog.FilterByName(result.Products, c.Query("q"))
	products = catalog.SortProducts(products,
		catalog.SortKey(c.DefaultQuery("sort", string(catalog.SortDefault))),
		catalog.SortOrder(c.DefaultQuery("order", string(catalog.OrderAsc))))

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, productView{Product: p, Status: catalog.ProductStatus(p)})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "products": views})
}

// FindBarcode resolves a scanned barcode to a product, or to an
// explicit null when nothing matches.
func (h *InventoryHandler) FindBarcode(c *gin.Context) {
	result := h.client.FindByBarcode(c.Request.Context(), c.Param("code"))
	if !result.Success {
		c.JSON(http.StatusBadGateway, gin.H{"error": result.Error})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateProduct builds a draft from the request body, stamps it with
// the logged-in actor and submits it.
func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	actor, ok := h.requireSession(c)
	if !ok {
		return
	}

	var req models.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft := warehouse.ProductDraft{
		Name:     req.Name,
		Type:     req.Type,
		Barcode:  req.Barcode,
		Price:    req.Price,
		Supplier: req.Supplier,
		Image:    req.Image,
		Stocks:   req.Stocks,
		EditedBy: []models.EditRecord{{
			WarehousemanID: actor.ID,
			At:             time.Now().UTC().Format(time.RFC3339),
		}},
	}

	if err := draft.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.client.CreateProduct(c.Request.Context(), draft)
	if !result.Success {
		c.JSON(http.StatusBadGateway, gin.H{"error": result.Error})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UpdateStock sets one stock entry to an absolute quantity.
func (h *InventoryHandler) UpdateStock(c *gin.Context) {
	if _, ok := h.requireSession(c); !ok {
		return
	}

	productID, stockID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	var req models.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result := h.client.UpdateStockQuantity(c.Request.Context(), productID, stockID, req.Quantity)
	if !result.Success {
		if result.Error == warehouse.MsgNegativeQuantity {
			c.JSON(http.StatusBadRequest, gin.H{"error": result.Error})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": result.Error})
		return
	}

	c.JSON(http.StatusOK, result)
}

// AddStock creates a new stock location on a product.
func (h *InventoryHandler) AddStock(c *gin.Context) {
	if _, ok := h.requireSession(c); !ok {
		return
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req models.AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result := h.client.AddStockLocation(c.Request.Context(), productID, req.Quantity)
	if !result.Success {
		if result.Error == warehouse.MsgNegativeQuantity {
			c.JSON(http.StatusBadRequest, gin.H{"error": result.Error})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": result.Error})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// DeleteStock removes a stock location from a product.
func (h *InventoryHandler) DeleteStock(c *gin.Context) {
	if _, ok := h.requireSession(c); !ok {
		return
	}

	productID, stockID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	result := h.client.DeleteStockLocation(c.Request.Context(), productID, stockID)
	if !result.Success {
		c.JSON(http.StatusBadGateway, gin.H{"error": result.Error})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetStatistics recomputes fleet statistics from a fresh fetch.
func (h *InventoryHandler) GetStatistics(c *gin.Context) {
	result := h.client.ComputeStatistics(c.Request.Context())
	if !result.Success {
		c.JSON(http.StatusBadGateway, gin.H{"error": result.Error})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportReport pushes the product report to the configured spreadsheet.
func (h *InventoryHandler) ExportReport(c *gin.Context) {
	if _, ok := h.requireSession(c); !ok {
		return
	}

	exported, err := h.reporting.ExportProductReport(c.Request.Context())
	if err != nil {
		if errors.Is(err, reporting.ErrExportNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to export product report", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to export report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "exported": exported})
}

func (h *InventoryHandler) requireSession(c *gin.Context) (*models.Warehouseman, bool) {
	actor, err := h.sessions.Get(c.Request.Context())
	if errors.Is(err, session.ErrNoSession) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return nil, false
	}
	if err != nil {
		h.logger.Error("failed to load session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load session"})
		return nil, false
	}
	return actor, true
}

func (h *InventoryHandler) pathIDs(c *gin.Context) (productID, stockID int64, ok bool) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return 0, 0, false
	}
	stockID, err = strconv.ParseInt(c.Param("stockId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stock id"})
		return 0, 0, false
	}
	return productID, stockID, true
}
