package suppliers

// Status enumerates the lifecycle states a supplier may carry.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusReview    Status = "review"
	StatusSuspended Status = "suspended"
)

// Supplier is a vendor record shown on the dashboard.
type Supplier struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Status            Status  `json:"status"`
	Location          string  `json:"location"`
	ContactName       string  `json:"contactName"`
	ContactEmail      string  `json:"contactEmail"`
	ContactPhone      string  `json:"contactPhone"`
	OrdersThisMonth   int     `json:"ordersThisMonth"`
	OnTimeDelivery    float64 `json:"onTimeDelivery"`
	TotalSpend        float64 `json:"totalSpend"`
	ProductCategories int     `json:"productCategories"`
	LogoInitials      string  `json:"logoInitials"`
	LogoColor         string  `json:"logoColor"`
}
