// Package catalog holds the pure view transformations applied to a
// fetched product collection: name filtering, stable sorting, stock
// status classification and fleet-wide statistics. Nothing here
// performs I/O; callers pass in whatever snapshot they last fetched.
package catalog

import (
	"sort"
	"strings"

	"github.com/HIBA-BEG/Warehouse-Management/internal/domain/models"
)

// LowStockThreshold is the quantity under which a product (or a single
// stock entry) is flagged as running low.
const LowStockThreshold = 10

// SortKey selects the product attribute used for ordering.
type SortKey string

const (
	SortDefault SortKey = "default"
	SortName    SortKey = "name"
	SortPrice   SortKey = "price"
	SortStock   SortKey = "stock"
)

// SortOrder toggles direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// StockStatus is the three-valued classification shown on product lists.
type StockStatus string

const (
	StatusOutOfStock StockStatus = "out-of-stock"
	StatusLowStock   StockStatus = "low-stock"
	StatusInStock    StockStatus = "in-stock"
)

// FilterByName keeps products whose name contains the query,
// case-insensitively. An empty query returns the input unchanged.
func FilterByName(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}

	needle := strings.ToLower(query)
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SortProducts returns a new slice ordered by the given key and
// direction. Equal keys keep their relative input order, and
// SortDefault preserves fetch order entirely.
func SortProducts(products []models.Product, key SortKey, order SortOrder) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	if key == SortDefault || key == "" {
		return sorted
	}

	less := func(a, b models.Product) bool {
		switch key {
		case SortName:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortPrice:
			return a.Price < b.Price
		case SortStock:
			return a.TotalQuantity() < b.TotalQuantity()
		default:
			return false
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == OrderDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

// ProductStatus classifies a product from its full stock sequence: no
// entries, or nothing left across them, means out of stock; a total
// below the threshold means low; anything else is in stock.
func ProductStatus(p models.Product) StockStatus {
	total := p.TotalQuantity()
	switch {
	case len(p.Stocks) == 0 || total == 0:
		return StatusOutOfStock
	case total < LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// EntryStatus applies the same thresholds to one stock entry in
// isolation, as detail views do.
func EntryStatus(quantity int) StockStatus {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity < LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// ComputeStatistics aggregates the whole product set. The average price
// is weighted by stock (total value over total stock) and reported as
// zero when no stock exists anywhere, so callers never see a non-finite
// number.
func ComputeStatistics(products []models.Product) models.Statistics {
	stats := models.Statistics{TotalProducts: len(products)}

	for _, p := range products {
		qty := p.TotalQuantity()
		stats.TotalStock += qty
		stats.TotalValue += p.Price * float64(qty)
	}

	if stats.TotalStock > 0 {
		stats.AveragePrice = stats.TotalValue / float64(stats.TotalStock)
	}

	return stats
}
