// Package seed loads the fixed bootstrap dataset into freshly constructed
// stores at process start: 4 suppliers, 6 orders, 8 inventory items, 5
// workflow nodes, 4 edges, the statistics record and the admin account.
package seed

import (
	"context"
	"fmt"

	"github.com/chainboard/chainboard/internal/inventory"
	"github.com/chainboard/chainboard/internal/orders"
	"github.com/chainboard/chainboard/internal/stats"
	"github.com/chainboard/chainboard/internal/suppliers"
	"github.com/chainboard/chainboard/internal/users"
	"github.com/chainboard/chainboard/internal/workflow"
)

// Stores collects every store the bootstrap dataset loads into.
type Stores struct {
	Suppliers *suppliers.Repository
	Orders    *orders.Repository
	Inventory *inventory.Repository
	Workflow  *workflow.Repository
	Stats     *stats.Repository
	Users     *users.Service
}

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

// Load populates the stores. It must run exactly once, before the HTTP
// server starts serving.
func Load(ctx context.Context, s Stores) error {
	if _, err := s.Users.Create(ctx, "admin", "password"); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	s.Stats.Init(stats.Statistics{
		TotalOrders:     3542,
		InventoryValue:  1420000,
		ActiveSuppliers: 124,
		OnTimeDelivery:  94.2,
	})

	for _, sup := range supplierSeed {
		s.Suppliers.Create(sup)
	}
	for _, o := range orderSeed {
		if _, err := s.Orders.Create(o); err != nil {
			return fmt.Errorf("seed order %s: %w", o.OrderID, err)
		}
	}
	for _, item := range inventorySeed {
		if _, err := s.Inventory.Create(item); err != nil {
			return fmt.Errorf("seed inventory %s: %w", item.SKU, err)
		}
	}
	for _, n := range nodeSeed {
		if _, err := s.Workflow.CreateNode(n); err != nil {
			return fmt.Errorf("seed node %s: %w", n.NodeID, err)
		}
	}
	for _, e := range edgeSeed {
		if _, err := s.Workflow.CreateEdge(e); err != nil {
			return fmt.Errorf("seed edge %s: %w", e.EdgeID, err)
		}
	}
	return nil
}

var supplierSeed = []suppliers.Supplier{
	{
		Name: "Acme Corp", Category: "Electronics Manufacturer", Status: suppliers.StatusActive,
		Location: "New York, USA", ContactName: "John Reynolds",
		ContactEmail: "john.reynolds@acmecorp.com", ContactPhone: "+1 (212) 555-1234",
		OrdersThisMonth: 32, OnTimeDelivery: 96.4, TotalSpend: 128450, ProductCategories: 3,
		LogoInitials: "AC", LogoColor: "blue",
	},
	{
		Name: "TechCore Inc", Category: "Component Supplier", Status: suppliers.StatusActive,
		Location: "San Francisco, USA", ContactName: "Sarah Johnson",
		ContactEmail: "sjohnson@techcore.com", ContactPhone: "+1 (415) 555-7890",
		OrdersThisMonth: 28, OnTimeDelivery: 94.2, TotalSpend: 84320, ProductCategories: 5,
		LogoInitials: "TC", LogoColor: "purple",
	},
	{
		Name: "Global Logistics", Category: "Logistics Partner", Status: suppliers.StatusReview,
		Location: "London, UK", ContactName: "David Smith",
		ContactEmail: "dsmith@globallogistics.co.uk", ContactPhone: "+44 20 7946 0958",
		OrdersThisMonth: 46, OnTimeDelivery: 88.7, TotalSpend: 156780, ProductCategories: 2,
		LogoInitials: "GL", LogoColor: "red",
	},
	{
		Name: "Stellar Systems", Category: "Hardware Manufacturer", Status: suppliers.StatusActive,
		Location: "Berlin, Germany", ContactName: "Anna Mueller",
		ContactEmail: "anna.m@stellarsystems.de", ContactPhone: "+49 30 901820",
		OrdersThisMonth: 19, OnTimeDelivery: 97.5, TotalSpend: 67480, ProductCategories: 4,
		LogoInitials: "SS", LogoColor: "green",
	},
}

var orderSeed = []orders.Order{
	{OrderID: "#ORD-7352", SupplierID: 1, Date: "2023-08-12", Time: "09:25 AM", Status: orders.StatusDelivered, Amount: 12480, Products: "Microprocessors (x200), Circuit Boards (x50)"},
	{OrderID: "#ORD-7351", SupplierID: 2, Date: "2023-08-11", Time: "14:32 PM", Status: orders.StatusInTransit, Amount: 8240.50, Products: "Memory Modules (x150), Power Supplies (x30)"},
	{OrderID: "#ORD-7350", SupplierID: 3, Date: "2023-08-10", Time: "10:15 AM", Status: orders.StatusDelayed, Amount: 15720.75, Products: "Shipping Materials (x500), Packaging (x200)"},
	{OrderID: "#ORD-7349", SupplierID: 4, Date: "2023-08-09", Time: "16:45 PM", Status: orders.StatusProcessing, Amount: 5150.25, Products: "Circuit Assemblies (x100), Connectors (x300)"},
	{OrderID: "#ORD-7345", SupplierID: 1, Date: "2023-08-05", Time: "14:10 PM", Status: orders.StatusDelivered, Amount: 18760.50, Products: "Display Panels (x100), Touch Controllers (x100)"},
	{OrderID: "#ORD-7338", SupplierID: 1, Date: "2023-07-28", Time: "11:32 AM", Status: orders.StatusDelivered, Amount: 24950.75, Products: "Memory Modules (x500), Power Units (x150)"},
}

var inventorySeed = []inventory.Item{
	{SKU: "PROC-1001", Name: "Intel i7 Processor", Category: inventory.CategoryElectronics, Supplier: "Acme Corp", Quantity: 156, UnitPrice: 350.00, Status: inventory.StatusInStock, LastUpdated: "2023-08-15"},
	{SKU: "MEM-2002", Name: "32GB RAM Module", Category: inventory.CategoryElectronics, Supplier: "TechCore Inc", Quantity: 89, UnitPrice: 175.50, Status: inventory.StatusInStock, LastUpdated: "2023-08-14"},
	{SKU: "PCB-3003", Name: "Circuit Board v2", Category: inventory.CategoryComponents, Supplier: "Acme Corp", Quantity: 432, UnitPrice: 45.20, Status: inventory.StatusInStock, LastUpdated: "2023-08-10"},
	{SKU: "CASE-4004", Name: "Aluminum Enclosure", Category: inventory.CategoryMechanical, Supplier: "Stellar Systems", Quantity: 122, UnitPrice: 28.90, Status: inventory.StatusLowStock, LastUpdated: "2023-08-12"},
	{SKU: "PWR-5005", Name: "Power Supply 650W", Category: inventory.CategoryElectronics, Supplier: "TechCore Inc", Quantity: 0, UnitPrice: 115.75, Status: inventory.StatusOutOfStock, LastUpdated: "2023-08-05"},
	{SKU: "BOX-6006", Name: "Product Packaging", Category: inventory.CategoryPackaging, Supplier: "Global Logistics", Quantity: 1250, UnitPrice: 2.35, Status: inventory.StatusInStock, LastUpdated: "2023-08-08"},
	{SKU: "FAN-7007", Name: "Cooling Fan 120mm", Category: inventory.CategoryComponents, Supplier: "Stellar Systems", Quantity: 48, UnitPrice: 18.95, Status: inventory.StatusLowStock, LastUpdated: "2023-08-11"},
	{SKU: "CABLE-8008", Name: "HDMI Cable 2m", Category: inventory.CategoryElectronics, Supplier: "TechCore Inc", Quantity: 204, UnitPrice: 12.50, Status: inventory.StatusInStock, LastUpdated: "2023-08-14"},
}

var nodeSeed = []workflow.Node{
	{NodeID: "node-1", Type: workflow.NodeWarehouse, Label: "Main Warehouse", PositionX: 100, PositionY: 100, Capacity: intp(10000), ProcessingTime: intp(2), Description: strp("Primary storage facility for raw materials and components."), IsActive: true},
	{NodeID: "node-2", Type: workflow.NodeTransport, Label: "Transport 1", PositionX: 300, PositionY: 100, ProcessingTime: intp(1), Description: strp("Shipping from warehouse to assembly plant"), IsActive: true},
	{NodeID: "node-3", Type: workflow.NodeFactory, Label: "Assembly Plant", PositionX: 500, PositionY: 100, Capacity: intp(5000), ProcessingTime: intp(3), Description: strp("Main assembly facility for electronic components"), IsActive: true},
	{NodeID: "node-4", Type: workflow.NodeTransport, Label: "Transport 2", PositionX: 500, PositionY: 250, ProcessingTime: intp(2), Description: strp("Shipping from assembly to retailers"), IsActive: true},
	{NodeID: "node-5", Type: workflow.NodeRetailer, Label: "Retailer Network", PositionX: 500, PositionY: 400, Capacity: intp(2000), ProcessingTime: intp(1), Description: strp("Network of retail distribution points"), IsActive: true},
}

var edgeSeed = []workflow.Edge{
	{EdgeID: "edge-1", Source: "node-1", Target: "node-2", Type: "standard", Label: strp("Ship Raw Materials")},
	{EdgeID: "edge-2", Source: "node-2", Target: "node-3", Type: "standard", Label: strp("Deliver to Assembly")},
	{EdgeID: "edge-3", Source: "node-3", Target: "node-4", Type: "standard", Label: strp("Ship Products")},
	{EdgeID: "edge-4", Source: "node-4", Target: "node-5", Type: "standard", Label: strp("Deliver to Retailers")},
}
