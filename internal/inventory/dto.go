package inventory

// CreateItemRequest is the full insert schema for POST /api/inventory.
type CreateItemRequest struct {
	SKU         string  `json:"sku" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required,oneof=electronics mechanical raw_materials packaging components"`
	Supplier    string  `json:"supplier" validate:"required"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
	Status      string  `json:"status" validate:"required,oneof=in_stock low_stock out_of_stock discontinued on_order"`
	LastUpdated string  `json:"lastUpdated" validate:"required,datetime=2006-01-02"`
}

// UpdateItemRequest is the partial schema for PUT /api/inventory/{id}.
type UpdateItemRequest struct {
	SKU         *string  `json:"sku,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,oneof=electronics mechanical raw_materials packaging components"`
	Supplier    *string  `json:"supplier,omitempty"`
	Quantity    *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	UnitPrice   *float64 `json:"unitPrice,omitempty" validate:"omitempty,gte=0"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=in_stock low_stock out_of_stock discontinued on_order"`
	LastUpdated *string  `json:"lastUpdated,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
