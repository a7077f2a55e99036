package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pads() Part   { return Part{ID: "1", Name: "Колодки", Price: 25000} }
func filter() Part { return Part{ID: "3", Name: "Фильтр", Price: 4500} }

func TestCartAdd(t *testing.T) {
	var cart Cart

	cart.Add(pads())
	cart.Add(filter())
	cart.Add(pads()) // second add bumps the quantity

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestCartIncrementDecrement(t *testing.T) {
	var cart Cart
	cart.Add(pads())

	cart.Increment("1")
	assert.Equal(t, 2, cart.Items[0].Quantity)

	cart.Decrement("1")
	assert.Equal(t, 1, cart.Items[0].Quantity)

	// Decrement floors at 1; it never removes the line
	cart.Decrement("1")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	// Unknown ids are a no-op
	cart.Increment("999")
	cart.Decrement("999")
	assert.Len(t, cart.Items, 1)
}

func TestCartRemove(t *testing.T) {
	var cart Cart
	cart.Add(pads())
	cart.Add(filter())

	cart.Remove("1")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "3", cart.Items[0].ID)

	cart.Remove("999") // no-op
	assert.Len(t, cart.Items, 1)
}

func TestCartTotals(t *testing.T) {
	var cart Cart
	cart.Add(pads())
	cart.Add(pads())
	cart.Add(filter())

	assert.Equal(t, float64(2*25000+4500), cart.Total())
	assert.Equal(t, 3, cart.Count())
}

func TestCartJSONRoundTrip(t *testing.T) {
	var cart Cart
	cart.Add(pads())
	cart.Add(filter())
	cart.Increment("3")

	// The browser persists the cart as JSON in local storage
	data, err := json.Marshal(&cart)
	require.NoError(t, err)

	var restored Cart
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, cart.Items, restored.Items)
	assert.Equal(t, cart.Total(), restored.Total())
}
