package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainboard/chainboard/internal/shared"
)

func TestGetBeforeInitIsNotFound(t *testing.T) {
	repo := NewRepository()
	_, err := repo.Get()
	require.ErrorIs(t, err, shared.ErrNotFound)
	_, err = repo.Update(UpdateStatisticsRequest{})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestInitPinsIDToOne(t *testing.T) {
	repo := NewRepository()
	s := repo.Init(Statistics{TotalOrders: 3542, InventoryValue: 1420000, ActiveSuppliers: 124, OnTimeDelivery: 94.2})
	assert.Equal(t, 1, s.ID)

	got, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestUpdateMergesPresentFields(t *testing.T) {
	repo := NewRepository()
	repo.Init(Statistics{TotalOrders: 3542, InventoryValue: 1420000, ActiveSuppliers: 124, OnTimeDelivery: 94.2})

	total := 3600
	got, err := repo.Update(UpdateStatisticsRequest{TotalOrders: &total})
	require.NoError(t, err)

	assert.Equal(t, 3600, got.TotalOrders)
	assert.Equal(t, 94.2, got.OnTimeDelivery)
	assert.Equal(t, 1, got.ID)
}
