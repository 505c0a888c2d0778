package models

// LoginRequest carries the shared secret submitted at login.
type LoginRequest struct {
	SecretKey string `json:"secretKey" binding:"required"`
}

// AddProductRequest is the facade payload for creating a product. The
// actor and edit timestamp are filled in from the active session, not
// trusted from the request body.
type AddProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Type     string  `json:"type"`
	Barcode  string  `json:"barcode" binding:"required"`
	Price    float64 `json:"price"`
	Supplier string  `json:"supplier"`
	Image    string  `json:"image"`
	Stocks   []Stock `json:"stocks" binding:"required"`
}

// UpdateStockRequest sets a stock entry to an absolute quantity.
type UpdateStockRequest struct {
	Quantity int `json:"quantity"`
}

// AddStockRequest creates a new stock location on a product.
type AddStockRequest struct {
	Quantity int `json:"quantity"`
}
