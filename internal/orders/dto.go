package orders

// CreateOrderRequest is the full insert schema for POST /api/orders.
type CreateOrderRequest struct {
	OrderID    string  `json:"orderId" validate:"required"`
	SupplierID int     `json:"supplierId" validate:"required,gt=0"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string  `json:"time" validate:"required"`
	Status     string  `json:"status" validate:"required,oneof=pending processing in_transit delivered delayed canceled"`
	Amount     float64 `json:"amount" validate:"gte=0"`
	Products   string  `json:"products" validate:"required"`
}

// UpdateOrderRequest is the partial schema for PUT /api/orders/{id}.
type UpdateOrderRequest struct {
	OrderID    *string  `json:"orderId,omitempty"`
	SupplierID *int     `json:"supplierId,omitempty" validate:"omitempty,gt=0"`
	Date       *string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time       *string  `json:"time,omitempty"`
	Status     *string  `json:"status,omitempty" validate:"omitempty,oneof=pending processing in_transit delivered delayed canceled"`
	Amount     *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Products   *string  `json:"products,omitempty"`
}
