package suppliers

// CreateSupplierRequest is the full insert schema for POST /api/suppliers.
type CreateSupplierRequest struct {
	Name              string  `json:"name" validate:"required"`
	Category          string  `json:"category" validate:"required"`
	Status            string  `json:"status" validate:"required,oneof=active inactive review suspended"`
	Location          string  `json:"location" validate:"required"`
	ContactName       string  `json:"contactName" validate:"required"`
	ContactEmail      string  `json:"contactEmail" validate:"required,email"`
	ContactPhone      string  `json:"contactPhone" validate:"required"`
	OrdersThisMonth   int     `json:"ordersThisMonth" validate:"gte=0"`
	OnTimeDelivery    float64 `json:"onTimeDelivery" validate:"gte=0,lte=100"`
	TotalSpend        float64 `json:"totalSpend" validate:"gte=0"`
	ProductCategories int     `json:"productCategories" validate:"gte=0"`
	LogoInitials      string  `json:"logoInitials" validate:"required"`
	LogoColor         string  `json:"logoColor" validate:"required"`
}

// UpdateSupplierRequest is the partial schema for PUT /api/suppliers/{id}.
// Only fields present in the payload overwrite the stored record.
type UpdateSupplierRequest struct {
	Name              *string  `json:"name,omitempty"`
	Category          *string  `json:"category,omitempty"`
	Status            *string  `json:"status,omitempty" validate:"omitempty,oneof=active inactive review suspended"`
	Location          *string  `json:"location,omitempty"`
	ContactName       *string  `json:"contactName,omitempty"`
	ContactEmail      *string  `json:"contactEmail,omitempty" validate:"omitempty,email"`
	ContactPhone      *string  `json:"contactPhone,omitempty"`
	OrdersThisMonth   *int     `json:"ordersThisMonth,omitempty" validate:"omitempty,gte=0"`
	OnTimeDelivery    *float64 `json:"onTimeDelivery,omitempty" validate:"omitempty,gte=0,lte=100"`
	TotalSpend        *float64 `json:"totalSpend,omitempty" validate:"omitempty,gte=0"`
	ProductCategories *int     `json:"productCategories,omitempty" validate:"omitempty,gte=0"`
	LogoInitials      *string  `json:"logoInitials,omitempty"`
	LogoColor         *string  `json:"logoColor,omitempty"`
}
