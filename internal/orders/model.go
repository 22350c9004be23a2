package orders

// Status enumerates order fulfilment states. Transitions are caller-driven;
// the server applies no state machine between them.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusInTransit  Status = "in_transit"
	StatusDelivered  Status = "delivered"
	StatusDelayed    Status = "delayed"
	StatusCanceled   Status = "canceled"
)

// Order is a purchase order placed with a supplier. SupplierID is a soft
// reference: deleting the supplier leaves the order orphaned.
type Order struct {
	ID         int     `json:"id"`
	OrderID    string  `json:"orderId"`
	SupplierID int     `json:"supplierId"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Status     Status  `json:"status"`
	Amount     float64 `json:"amount"`
	Products   string  `json:"products"`
}
