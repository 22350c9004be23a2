package inventory

// Category enumerates stock categories.
type Category string

const (
	CategoryElectronics  Category = "electronics"
	CategoryMechanical   Category = "mechanical"
	CategoryRawMaterials Category = "raw_materials"
	CategoryPackaging    Category = "packaging"
	CategoryComponents   Category = "components"
)

// Status enumerates stock availability states.
type Status string

const (
	StatusInStock      Status = "in_stock"
	StatusLowStock     Status = "low_stock"
	StatusOutOfStock   Status = "out_of_stock"
	StatusDiscontinued Status = "discontinued"
	StatusOnOrder      Status = "on_order"
)

// Item is a stocked part. Supplier is a free-text name, not a foreign key.
type Item struct {
	ID          int      `json:"id"`
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Supplier    string   `json:"supplier"`
	Quantity    int      `json:"quantity"`
	UnitPrice   float64  `json:"unitPrice"`
	Status      Status   `json:"status"`
	LastUpdated string   `json:"lastUpdated"`
}
