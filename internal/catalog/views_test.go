package catalog_test

import (
	"testing"

	"github.com/HIBA-BEG/Warehouse-Management/internal/catalog"
	"github.com/HIBA-BEG/Warehouse-Management/internal/domain/models"
)

func fixture() []models.Product {
	return []models.Product{
		{ID: 1, Name: "TOSHIBA TV", Price: 300, Stocks: []models.Stock{{ID: 1, Quantity: 12}}},
		{ID: 2, Name: "Aïn Saiss", Price: 5, Stocks: []models.Stock{{ID: 2, Quantity: 4}, {ID: 3, Quantity: 2}}},
		{ID: 3, Name: "Clavier Logitech", Price: 40, Stocks: nil},
		{ID: 4, Name: "Souris Logitech", Price: 40, Stocks: []models.Stock{{ID: 4, Quantity: 30}}},
	}
}

func ids(products []models.Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterByName(t *testing.T) {
	products := fixture()

	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{"empty query returns input unchanged", "", []int64{1, 2, 3, 4}},
		{"case-insensitive substring", "logitech", []int64{3, 4}},
		{"mixed case query", "ToShIbA", []int64{1}},
		{"no match", "imprimante", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(catalog.FilterByName(products, tt.query))
			if !equalIDs(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSortProducts(t *testing.T) {
	products := fixture()

	tests := []struct {
		name  string
		key   catalog.SortKey
		order catalog.SortOrder
		want  []int64
	}{
		{"default preserves fetch order", catalog.SortDefault, catalog.OrderAsc, []int64{1, 2, 3, 4}},
		{"name ascending is case-insensitive", catalog.SortName, catalog.OrderAsc, []int64{2, 3, 4, 1}},
		{"name descending", catalog.SortName, catalog.OrderDesc, []int64{1, 4, 3, 2}},
		{"price ascending keeps equal prices in input order", catalog.SortPrice, catalog.OrderAsc, []int64{2, 3, 4, 1}},
		{"price descending keeps equal prices in input order", catalog.SortPrice, catalog.OrderDesc, []int64{1, 3, 4, 2}},
		{"aggregate stock ascending", catalog.SortStock, catalog.OrderAsc, []int64{3, 2, 1, 4}},
		{"aggregate stock descending", catalog.SortStock, catalog.OrderDesc, []int64{4, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(catalog.SortProducts(products, tt.key, tt.order))
			if !equalIDs(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	t.Run("input slice is left untouched", func(t *testing.T) {
		before := ids(products)
		_ = catalog.SortProducts(products, catalog.SortName, catalog.OrderDesc)
		if !equalIDs(ids(products), before) {
			t.Error("sorting must not reorder the caller's slice")
		}
	})
}

func TestProductStatus(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
		want    catalog.StockStatus
	}{
		{
			"no stock entries",
			models.Product{Stocks: nil},
			catalog.StatusOutOfStock,
		},
		{
			"entries summing to zero",
			models.Product{Stocks: []models.Stock{{Quantity: 0}, {Quantity: 0}}},
			catalog.StatusOutOfStock,
		},
		{
			"total below threshold",
			models.Product{Stocks: []models.Stock{{Quantity: 4}, {Quantity: 5}}},
			catalog.StatusLowStock,
		},
		{
			"total at threshold",
			models.Product{Stocks: []models.Stock{{Quantity: 10}}},
			catalog.StatusInStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := catalog.ProductStatus(tt.product); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEntryStatus(t *testing.T) {
	tests := []struct {
		quantity int
		want     catalog.StockStatus
	}{
		{0, catalog.StatusOutOfStock},
		{1, catalog.StatusLowStock},
		{9, catalog.StatusLowStock},
		{10, catalog.StatusInStock},
		{250, catalog.StatusInStock},
	}

	for _, tt := range tests {
		if got := catalog.EntryStatus(tt.quantity); got != tt.want {
			t.Errorf("quantity %d: expected %q, got %q", tt.quantity, tt.want, got)
		}
	}
}

func TestComputeStatistics(t *testing.T) {
	t.Run("sums stock and weights the average by quantity", func(t *testing.T) {
		products := []models.Product{
			{Price: 10, Stocks: []models.Stock{{Quantity: 5}, {Quantity: 5}}},
			{Price: 20, Stocks: []models.Stock{{Quantity: 10}}},
		}

		got := catalog.ComputeStatistics(products)
		want := models.Statistics{TotalProducts: 2, TotalStock: 20, TotalValue: 300, AveragePrice: 15}
		if got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		got := catalog.ComputeStatistics(nil)
		if got != (models.Statistics{}) {
			t.Errorf("expected zero statistics, got %+v", got)
		}
	})

	t.Run("no stock anywhere reports a zero average instead of dividing by zero", func(t *testing.T) {
		products := []models.Product{
			{Price: 10},
			{Price: 99, Stocks: []models.Stock{{Quantity: 0}}},
		}

		got := catalog.ComputeStatistics(products)
		if got.TotalProducts != 2 || got.TotalStock != 0 {
			t.Fatalf("unexpected totals: %+v", got)
		}
		if got.AveragePrice != 0 {
			t.Errorf("expected average price 0, got %v", got.AveragePrice)
		}
	})
}
