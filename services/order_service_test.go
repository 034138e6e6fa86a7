package services

import (
	"testing"

	"maxcleaners/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPrice(t *testing.T) {
	items := []models.Item{
		{Quantity: 3, Price: 2.50},
		{Quantity: 2, Price: 4.00},
	}

	t.Run("standard order sums price times quantity", func(t *testing.T) {
		total := CalculateTotalPrice(items, models.OrderTypeStandard)
		assert.InDelta(t, 15.50, total, 1e-9)
	})

	t.Run("express order adds a dollar per unit", func(t *testing.T) {
		// 5 units across both items.
		total := CalculateTotalPrice(items, models.OrderTypeExpress)
		assert.InDelta(t, 20.50, total, 1e-9)
	})

	t.Run("no items means zero total", func(t *testing.T) {
		assert.Equal(t, 0.0, CalculateTotalPrice(nil, models.OrderTypeStandard))
		assert.Equal(t, 0.0, CalculateTotalPrice(nil, models.OrderTypeExpress))
	})

	t.Run("free items still count toward express surcharge", func(t *testing.T) {
		free := []models.Item{{Quantity: 4, Price: 0}}
		assert.Equal(t, 0.0, CalculateTotalPrice(free, models.OrderTypeStandard))
		assert.Equal(t, 4.0, CalculateTotalPrice(free, models.OrderTypeExpress))
	})
}

func TestBuildItems(t *testing.T) {
	t.Run("valid items pass through", func(t *testing.T) {
		items, err := buildItems([]models.OrderItemRequest{
			{Quantity: 1, Price: 3.50},
			{Quantity: 2, Price: 0},
		})
		assert.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		_, err := buildItems([]models.OrderItemRequest{{Quantity: 0, Price: 1}})
		assert.ErrorIs(t, err, models.ErrInvalidRequest)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := buildItems([]models.OrderItemRequest{{Quantity: 1, Price: -0.01}})
		assert.ErrorIs(t, err, models.ErrInvalidRequest)
	})
}

func TestItemsEqual(t *testing.T) {
	a := []models.Item{{Quantity: 1, Price: 2}, {Quantity: 3, Price: 4}}
	b := []models.Item{{Quantity: 1, Price: 2}, {Quantity: 3, Price: 4}}

	assert.True(t, itemsEqual(a, b))
	assert.True(t, itemsEqual(nil, nil))
	assert.False(t, itemsEqual(a, b[:1]))
	assert.False(t, itemsEqual(a, []models.Item{{Quantity: 1, Price: 2}, {Quantity: 3, Price: 5}}))
}
