// Package warehouse talks to the remote inventory backend. Every
// operation performs one HTTP exchange (two, for the stock update) and
// collapses all outcomes into a normalized result value: callers never
// receive a Go error, only a Success flag plus either a payload or a
// human-readable error string they can show as-is.
package warehouse

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/HIBA-BEG/Warehouse-Management/internal/catalog"
	"github.com/HIBA-BEG/Warehouse-Management/internal/config"
	"github.com/HIBA-BEG/Warehouse-Management/internal/domain/models"
)

// Operation-specific messages surfaced on transport or parse failures.
const (
	MsgLoginFailed       = "Unable to login. Please try again later."
	MsgFetchProducts     = "Unable to fetch products."
	MsgAddProduct        = "Unable to add product."
	MsgUpdateStock       = "Unable to update product stock."
	MsgAddStock          = "Unable to add product stock."
	MsgDeleteStock       = "Unable to delete product stock."
	MsgCheckBarcode      = "Unable to check barcode."
	MsgFetchStatistics   = "Unable to fetch statistics."
	MsgNegativeQuantity  = "Quantity cannot be negative."
	MsgUpdateStockFailed = "Failed to update stock"
	MsgAddStockFailed    = "Failed to add stock"
	MsgDeleteStockFailed = "Failed to delete stock"
)

// Client exposes the inventory backend operations used by the application.
type Client interface {
	Authenticate(ctx context.Context, secretKey string) LoginResult
	ListProducts(ctx context.Context) ProductsResult
	CreateProduct(ctx context.Context, draft ProductDraft) ProductResult
	UpdateStockQuantity(ctx context.Context, productID, stockID int64, newQuantity int) ProductResult
	AddStockLocation(ctx context.Context, productID int64, quantity int) StockResult
	DeleteStockLocation(ctx context.Context, productID, stockID int64) DeleteResult
	FindByBarcode(ctx context.Context, barcode string) BarcodeResult
	ComputeStatistics(ctx context.Context) StatisticsResult
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewClient builds an inventory API client using the provided configuration values.
func NewClient(cfg config.BackendConfig, logger *zap.Logger) *APIClient {
	if logger == nil {
		logger = zap.NewNop()
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	return &APIClient{
		httpClient: restyClient,
		logger:     logger,
	}
}

// backendError is the JSON error body some backend write endpoints return.
type backendError struct {
	Error string `json:"error"`
}

// LoginResult reports the outcome of Authenticate. A missing match is a
// failure with an empty Error string; transport failures carry a message.
type LoginResult struct {
	Success      bool                 `json:"success"`
	Warehouseman *models.Warehouseman `json:"warehouseman,omitempty"`
	Error        string               `json:"error,omitempty"`
}

// ProductsResult carries the full product collection in backend order.
type ProductsResult struct {
	Success  bool             `json:"success"`
	Products []models.Product `json:"products,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// ProductResult carries a single product payload.
type ProductResult struct {
	Success bool            `json:"success"`
	Product *models.Product `json:"product,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// BarcodeResult distinguishes "no match" (Success true, nil Product)
// from a failed lookup.
type BarcodeResult struct {
	Success bool            `json:"success"`
	Product *models.Product `json:"product"`
	Error   string          `json:"error,omitempty"`
}

// StockResult carries a created stock entry.
type StockResult struct {
	Success bool          `json:"success"`
	Stock   *models.Stock `json:"stock,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// DeleteResult is a bare success marker.
type DeleteResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// StatisticsResult carries the aggregated statistics.
type StatisticsResult struct {
	Success    bool               `json:"success"`
	Statistics *models.Statistics `json:"statistics,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// ProductDraft is a product submitted for creation, before the backend
// assigns its id.
type ProductDraft struct {
	Name     string              `json:"name"`
	Type     string              `json:"type"`
	Barcode  string              `json:"barcode"`
	Price    float64             `json:"price"`
	Supplier string              `json:"supplier"`
	Image    string              `json:"image"`
	Stocks   []models.Stock      `json:"stocks"`
	EditedBy []models.EditRecord `json:"editedBy"`
}

// Validate enforces the draft constraints before any network call.
func (d ProductDraft) Validate() error {
	switch {
	case d.Name == "":
		return fmt.Errorf("product name is required")
	case d.Barcode == "":
		return fmt.Errorf("product barcode is required")
	case d.Price < 0:
		return fmt.Errorf("product price must not be negative")
	case len(d.Stocks) == 0:
		return fmt.Errorf("product needs at least one stock entry")
	case len(d.EditedBy) == 0:
		return fmt.Errorf("product needs an edit record")
	}

	for _, e := range d.EditedBy {
		if e.WarehousemanID == 0 || e.At == "" {
			return fmt.Errorf("edit record needs an actor and a timestamp")
		}
	}

	for _, s := range d.Stocks {
		if s.Quantity < 0 {
			return fmt.Errorf("stock quantity must not be negative")
		}
	}

	return nil
}

// Authenticate fetches the warehouseman collection and scans it for the
// given secret key. An unknown key is a plain failure with no error
// string, which is how callers tell "wrong key" apart from "backend down".
func (c *APIClient) Authenticate(ctx context.Context, secretKey string) LoginResult {
	var warehousemans []models.Warehouseman

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&warehousemans).
		Get("/warehousemans")
	if err != nil || resp.IsError() {
		c.logWarn("fetch warehousemans", resp, err)
		return LoginResult{Success: false, Error: MsgLoginFailed}
	}

	if secretKey != "" {
		for i := range warehousemans {
			if warehousemans[i].SecretKey == secretKey {
				return LoginResult{Success: true, Warehouseman: &warehousemans[i]}
			}
		}
	}

	return LoginResult{Success: false}
}

// ListProducts fetches the full product collection in backend order.
func (c *APIClient) ListProducts(ctx context.Context) ProductsResult {
	var products []models.Product

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&products).
		Get("/products")
	if err != nil || resp.IsError() {
		c.logWarn("fetch products", resp, err)
		return ProductsResult{Success: false, Error: MsgFetchProducts}
	}

	return ProductsResult{Success: true, Products: products}
}

// CreateProduct validates the draft locally, then POSTs it.
func (c *APIClient) CreateProduct(ctx context.Context, draft ProductDraft) ProductResult {
	if err := draft.Validate(); err != nil {
		return ProductResult{Success: false, Error: err.Error()}
	}

	created := new(models.Product)
	apiErr := new(backendError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(draft).
		SetResult(created).
		SetError(apiErr).
		Post("/products")
	if err != nil {
		c.logWarn("add product", resp, err)
		return ProductResult{Success: false, Error: MsgAddProduct}
	}
	if resp.IsError() {
		return ProductResult{Success: false, Error: backendMessage(apiErr, MsgAddProduct)}
	}

	return ProductResult{Success: true, Product: created}
}

// UpdateStockQuantity sets one stock entry of a product to an absolute
// quantity via read-modify-write: fetch the product, swap the matching
// entry's quantity, PUT the whole record back. The two calls are
// strictly sequential, and there is no conditional write on the backend
// side, so two concurrent writers on the same product can lose one
// writer's change.
func (c *APIClient) UpdateStockQuantity(ctx context.Context, productID, stockID int64, newQuantity int) ProductResult {
	if newQuantity < 0 {
		return ProductResult{Success: false, Error: MsgNegativeQuantity}
	}

	current := new(models.Product)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(current).
		Get(fmt.Sprintf("/products/%d", productID))
	if err != nil || resp.IsError() {
		c.logWarn("fetch product for stock update", resp, err)
		return ProductResult{Success: false, Error: MsgUpdateStock}
	}

	stocks := make([]models.Stock, len(current.Stocks))
	copy(stocks, current.Stocks)
	for i := range stocks {
		if stocks[i].ID == stockID {
			stocks[i].Quantity = newQuantity
		}
	}
	current.Stocks = stocks

	updated := new(models.Product)
	apiErr := new(backendError)

	putResp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(current).
		SetResult(updated).
		SetError(apiErr).
		Put(fmt.Sprintf("/products/%d", productID))
	if err != nil {
		c.logWarn("replace product", putResp, err)
		return ProductResult{Success: false, Error: MsgUpdateStock}
	}
	if putResp.IsError() {
		message := backendMessage(apiErr, "")
		if message == "" {
			message = putResp.Status()
		}
		if message == "" {
			message = MsgUpdateStockFailed
		}
		return ProductResult{Success: false, Error: message}
	}

	return ProductResult{Success: true, Product: updated}
}

// AddStockLocation creates a new stock entry on a product.
func (c *APIClient) AddStockLocation(ctx context.Context, productID int64, quantity int) StockResult {
	if quantity < 0 {
		return StockResult{Success: false, Error: MsgNegativeQuantity}
	}

	created := new(models.Stock)
	apiErr := new(backendError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]int{"quantity": quantity}).
		SetResult(created).
		SetError(apiErr).
		Post(fmt.Sprintf("/products/%d/stocks", productID))
	if err != nil {
		c.logWarn("add stock", resp, err)
		return StockResult{Success: false, Error: MsgAddStock}
	}
	if resp.IsError() {
		return StockResult{Success: false, Error: backendMessage(apiErr, MsgAddStockFailed)}
	}

	return StockResult{Success: true, Stock: created}
}

// DeleteStockLocation removes a stock entry from a product.
func (c *APIClient) DeleteStockLocation(ctx context.Context, productID, stockID int64) DeleteResult {
	apiErr := new(backendError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetError(apiErr).
		Delete(fmt.Sprintf("/products/%d/stocks/%d", productID, stockID))
	if err != nil {
		c.logWarn("delete stock", resp, err)
		return DeleteResult{Success: false, Error: MsgDeleteStock}
	}
	if resp.IsError() {
		return DeleteResult{Success: false, Error: backendMessage(apiErr, MsgDeleteStockFailed)}
	}

	return DeleteResult{Success: true}
}

// FindByBarcode looks a barcode up through the backend's query filter.
// An empty match set is a success with a nil product.
func (c *APIClient) FindByBarcode(ctx context.Context, barcode string) BarcodeResult {
	var products []models.Product

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("barcode", barcode).
		SetResult(&products).
		Get("/products")
	if err != nil || resp.IsError() {
		c.logWarn("check barcode", resp, err)
		return BarcodeResult{Success: false, Error: MsgCheckBarcode}
	}

	if len(products) > 0 {
		return BarcodeResult{Success: true, Product: &products[0]}
	}
	return BarcodeResult{Success: true, Product: nil}
}

// ComputeStatistics fetches the full product set and aggregates it.
func (c *APIClient) ComputeStatistics(ctx context.Context) StatisticsResult {
	var products []models.Product

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&products).
		Get("/products")
	if err != nil || resp.IsError() {
		c.logWarn("fetch products for statistics", resp, err)
		return StatisticsResult{Success: false, Error: MsgFetchStatistics}
	}

	stats := catalog.ComputeStatistics(products)
	return StatisticsResult{Success: true, Statistics: &stats}
}

func (c *APIClient) logWarn(op string, resp *resty.Response, err error) {
	fields := []zap.Field{zap.String("op", op)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if resp != nil && resp.RawResponse != nil {
		fields = append(fields, zap.Int("status", resp.StatusCode()))
	}
	c.logger.Warn("backend call failed", fields...)
}

func backendMessage(apiErr *backendError, fallback string) string {
	if apiErr != nil && apiErr.Error != "" {
		return apiErr.Error
	}
	return fallback
}
