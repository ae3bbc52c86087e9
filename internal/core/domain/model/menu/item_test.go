package menu_test

import (
	"testing"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create available item", func(t *testing.T) {
		id := kernel.NewUUID()

		item, err := menu.NewItem(id, "Maggi", 4000, "snacks", time.Now())

		require.NoError(t, err)
		assert.True(t, item.ID().IsEqual(id))
		assert.Equal(t, "Maggi", item.Name())
		assert.Equal(t, 4000, item.Price())
		assert.Equal(t, "snacks", item.Category())
		assert.True(t, item.Available())
		require.NoError(t, item.Validate())
	})

	t.Run("should reject missing name", func(t *testing.T) {
		_, err := menu.NewItem(kernel.NewUUID(), "", 4000, "snacks", time.Now())
		require.Error(t, err)
	})

	t.Run("should reject non-positive price", func(t *testing.T) {
		for _, price := range []int{0, -100} {
			_, err := menu.NewItem(kernel.NewUUID(), "Maggi", price, "snacks", time.Now())
			require.Error(t, err)
		}
	})

	t.Run("should reject missing category", func(t *testing.T) {
		_, err := menu.NewItem(kernel.NewUUID(), "Maggi", 4000, "", time.Now())
		require.Error(t, err)
	})
}

func TestRestoreItem(t *testing.T) {
	item, err := menu.RestoreItem(kernel.NewUUID(), "Maggi", 4000, "snacks", false, time.Now())

	require.NoError(t, err)
	assert.False(t, item.Available())
}

func TestItem_ToggleAvailability(t *testing.T) {
	item, err := menu.NewItem(kernel.NewUUID(), "Maggi", 4000, "snacks", time.Now())
	require.NoError(t, err)

	assert.False(t, item.ToggleAvailability())
	assert.False(t, item.Available())

	assert.True(t, item.ToggleAvailability())
	assert.True(t, item.Available())
}

func TestItem_Reprice(t *testing.T) {
	item, err := menu.NewItem(kernel.NewUUID(), "Maggi", 4000, "snacks", time.Now())
	require.NoError(t, err)

	require.NoError(t, item.Reprice(4500))
	assert.Equal(t, 4500, item.Price())

	require.Error(t, item.Reprice(0))
	assert.Equal(t, 4500, item.Price())
}

func TestItem_Rename(t *testing.T) {
	item, err := menu.NewItem(kernel.NewUUID(), "Maggi", 4000, "snacks", time.Now())
	require.NoError(t, err)

	require.NoError(t, item.Rename("Cheese Maggi"))
	assert.Equal(t, "Cheese Maggi", item.Name())

	require.Error(t, item.Rename(""))
	assert.Equal(t, "Cheese Maggi", item.Name())
}

func TestItem_Recategorize(t *testing.T) {
	item, err := menu.NewItem(kernel.NewUUID(), "Maggi", 4000, "snacks", time.Now())
	require.NoError(t, err)

	require.NoError(t, item.Recategorize("specials"))
	assert.Equal(t, "specials", item.Category())

	require.Error(t, item.Recategorize(""))
	assert.Equal(t, "specials", item.Category())
}

func TestItem_Validate_ZeroValue(t *testing.T) {
	var item menu.Item

	err := item.Validate()

	require.Error(t, err)
	assert.Equal(t, menu.ErrItemIsNotConstructed, err)
}
