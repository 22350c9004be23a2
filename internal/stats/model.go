// Package stats holds the dashboard statistics singleton. It is seeded once
// at startup and only ever merged in place afterwards.
package stats

// Statistics is the single headline-numbers record for the dashboard cards.
type Statistics struct {
	ID              int     `json:"id"`
	TotalOrders     int     `json:"totalOrders"`
	InventoryValue  float64 `json:"inventoryValue"`
	ActiveSuppliers int     `json:"activeSuppliers"`
	OnTimeDelivery  float64 `json:"onTimeDelivery"`
}

// UpdateStatisticsRequest is the partial schema for PUT /api/statistics.
type UpdateStatisticsRequest struct {
	TotalOrders     *int     `json:"totalOrders,omitempty" validate:"omitempty,gte=0"`
	InventoryValue  *float64 `json:"inventoryValue,omitempty" validate:"omitempty,gte=0"`
	ActiveSuppliers *int     `json:"activeSuppliers,omitempty" validate:"omitempty,gte=0"`
	OnTimeDelivery  *float64 `json:"onTimeDelivery,omitempty" validate:"omitempty,gte=0,lte=100"`
}
