package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainboard/chainboard/internal/inventory"
	"github.com/chainboard/chainboard/internal/orders"
	"github.com/chainboard/chainboard/internal/stats"
	"github.com/chainboard/chainboard/internal/suppliers"
	"github.com/chainboard/chainboard/internal/users"
	"github.com/chainboard/chainboard/internal/workflow"
)

func TestLoadPopulatesEveryStore(t *testing.T) {
	s := Stores{
		Suppliers: suppliers.NewRepository(),
		Orders:    orders.NewRepository(),
		Inventory: inventory.NewRepository(),
		Workflow:  workflow.NewRepository(),
		Stats:     stats.NewRepository(),
		Users:     users.NewService(users.NewRepository()),
	}
	require.NoError(t, Load(context.Background(), s))

	assert.Len(t, s.Suppliers.List(), 4)
	assert.Len(t, s.Orders.List(), 6)
	assert.Len(t, s.Inventory.List(), 8)
	assert.Len(t, s.Workflow.ListNodes(), 5)
	assert.Len(t, s.Workflow.ListEdges(), 4)

	st, err := s.Stats.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, st.ID)
	assert.Equal(t, 3542, st.TotalOrders)
	assert.Equal(t, 94.2, st.OnTimeDelivery)

	_, err = s.Users.Authenticate(context.Background(), "admin", "password")
	require.NoError(t, err)

	item, err := s.Inventory.GetBySKU("PROC-1001")
	require.NoError(t, err)
	assert.Equal(t, 156, item.Quantity)
	assert.Equal(t, inventory.StatusInStock, item.Status)

	// Server-generated graph keys continue after the seeded ones.
	node, err := s.Workflow.CreateNode(workflow.Node{Type: workflow.NodeCustomer, Label: "Walk-in"})
	require.NoError(t, err)
	assert.Equal(t, "node-6", node.NodeID)
	assert.Equal(t, 6, node.ID)
}

func TestLoadAssignsSequentialIDs(t *testing.T) {
	s := Stores{
		Suppliers: suppliers.NewRepository(),
		Orders:    orders.NewRepository(),
		Inventory: inventory.NewRepository(),
		Workflow:  workflow.NewRepository(),
		Stats:     stats.NewRepository(),
		Users:     users.NewService(users.NewRepository()),
	}
	require.NoError(t, Load(context.Background(), s))

	sups := s.Suppliers.List()
	for i, sup := range sups {
		assert.Equal(t, i+1, sup.ID)
	}
	assert.Equal(t, "Acme Corp", sups[0].Name)

	got := s.Orders.ListBySupplier(1)
	require.Len(t, got, 3)
	assert.Equal(t, "#ORD-7352", got[0].OrderID)
}
