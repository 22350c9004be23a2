package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainboard/chainboard/internal/shared"
)

func sampleItem(sku string) Item {
	return Item{
		SKU: sku, Name: "Intel i7 Processor", Category: CategoryElectronics,
		Supplier: "Acme Corp", Quantity: 156, UnitPrice: 350.00,
		Status: StatusInStock, LastUpdated: "2023-08-15",
	}
}

func TestSKULookupIsExactMatch(t *testing.T) {
	repo := NewRepository()
	_, err := repo.Create(sampleItem("PROC-1001"))
	require.NoError(t, err)

	item, err := repo.GetBySKU("PROC-1001")
	require.NoError(t, err)
	assert.Equal(t, "PROC-1001", item.SKU)

	_, err = repo.GetBySKU("proc-1001")
	require.ErrorIs(t, err, shared.ErrNotFound)
	_, err = repo.GetBySKU("PROC")
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDuplicateSKURejected(t *testing.T) {
	repo := NewRepository()
	first, err := repo.Create(sampleItem("PROC-1001"))
	require.NoError(t, err)
	_, err = repo.Create(sampleItem("PROC-1001"))
	require.ErrorIs(t, err, shared.ErrConflict)

	// Deleting the holder frees the SKU, but not the integer id.
	require.True(t, repo.Delete(first.ID))
	second, err := repo.Create(sampleItem("PROC-1001"))
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestSKUChangeUpdatesIndex(t *testing.T) {
	repo := NewRepository()
	created, err := repo.Create(sampleItem("PROC-1001"))
	require.NoError(t, err)
	_, err = repo.Create(sampleItem("MEM-2002"))
	require.NoError(t, err)

	taken := "MEM-2002"
	_, err = repo.Update(created.ID, UpdateItemRequest{SKU: &taken})
	require.ErrorIs(t, err, shared.ErrConflict)

	fresh := "PROC-1002"
	updated, err := repo.Update(created.ID, UpdateItemRequest{SKU: &fresh})
	require.NoError(t, err)
	assert.Equal(t, "PROC-1002", updated.SKU)

	_, err = repo.GetBySKU("PROC-1001")
	require.ErrorIs(t, err, shared.ErrNotFound)
	got, err := repo.GetBySKU("PROC-1002")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestQuantityAndStatusMoveIndependently(t *testing.T) {
	repo := NewRepository()
	created, err := repo.Create(sampleItem("PWR-5005"))
	require.NoError(t, err)

	// Zero quantity does not imply out_of_stock; the fields are not coupled.
	qty := 0
	updated, err := repo.Update(created.ID, UpdateItemRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
	assert.Equal(t, StatusInStock, updated.Status)
}
