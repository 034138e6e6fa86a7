package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{StatusCreated, StatusProcessing},
		{StatusProcessing, StatusReady},
		{StatusReady, StatusCompleted},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct{ from, to OrderStatus }{
		{StatusCreated, StatusReady},
		{StatusCreated, StatusCompleted},
		{StatusProcessing, StatusCreated},
		{StatusReady, StatusProcessing},
		{StatusCompleted, StatusCreated},
		{StatusCompleted, StatusProcessing},
		{StatusCreated, StatusCreated},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, StatusCreated.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, OrderStatus("Cancelled").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderTypeValid(t *testing.T) {
	assert.True(t, OrderTypeStandard.Valid())
	assert.True(t, OrderTypeExpress.Valid())
	assert.False(t, OrderType("PRIORITY").Valid())
	assert.False(t, OrderType("").Valid())
}
