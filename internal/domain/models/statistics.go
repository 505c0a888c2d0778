package models

import "time"

// Statistics aggregates the full product set. Always recomputed from a
// fresh fetch, never maintained incrementally, so it is exactly as
// stale as the fetch it came from.
type Statistics struct {
	TotalProducts int     `json:"totalProducts"`
	TotalStock    int     `json:"totalStock"`
	TotalValue    float64 `json:"totalValue"`
	AveragePrice  float64 `json:"averagePrice"`
}

// StatisticsSnapshot is a dated statistics record persisted by the
// snapshot scheduler.
type StatisticsSnapshot struct {
	Date          time.Time `bson:"date" json:"date"`
	TotalProducts int       `bson:"total_products" json:"total_products"`
	TotalStock    int       `bson:"total_stock" json:"total_stock"`
	TotalValue    float64   `bson:"total_value" json:"total_value"`
	AveragePrice  float64   `bson:"average_price" json:"average_price"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
