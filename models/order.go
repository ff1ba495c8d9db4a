package models

import "time"

// OrderRecord is the persisted "last order" entry. At most one record is
// live at a time; placing a new order overwrites the previous one.
type OrderRecord struct {
	ProductID   int       `json:"productId"`
	ProductName string    `json:"productName"`
	Reference   string    `json:"reference"`
	PlacedAt    time.Time `json:"timestamp"`
}
