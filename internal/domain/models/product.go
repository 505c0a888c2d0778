package models

// Localisation pins a stock location to a city, optionally with coordinates.
type Localisation struct {
	City      string   `json:"city"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Stock is a quantity of one product held at a named warehouse location.
// IDs are assigned by the backend and immutable once set.
type Stock struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Quantity     int          `json:"quantity"`
	Localisation Localisation `json:"localisation"`
}

// EditRecord is an append-only log entry noting who touched a product and when.
type EditRecord struct {
	WarehousemanID int64  `json:"warehousemanId"`
	At             string `json:"at"`
}

// Product mirrors the backend's product document. Stocks belong
// exclusively to their product; the sequences keep backend order.
type Product struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Type     string       `json:"type"`
	Barcode  string       `json:"barcode"`
	Price    float64      `json:"price"`
	Supplier string       `json:"supplier"`
	Image    string       `json:"image"`
	Stocks   []Stock      `json:"stocks"`
	EditedBy []EditRecord `json:"editedBy"`
}

// TotalQuantity sums the product's stock quantities across all locations.
func (p Product) TotalQuantity() int {
	total := 0
	for _, s := range p.Stocks {
		total += s.Quantity
	}
	return total
}
