package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddItemKeepsListingsUnique(t *testing.T) {
	c := NewCart(99)

	require.NoError(t, c.AddItem(5))
	require.NoError(t, c.AddItem(3))
	require.NoError(t, c.AddItem(5))

	assert.Equal(t, []int64{5, 3}, c.ListingIDs)
	assert.ErrorIs(t, c.AddItem(0), ErrInvalidInput)
}

func TestCart_RemoveItem(t *testing.T) {
	c := NewCart(99)
	require.NoError(t, c.AddItem(1))
	require.NoError(t, c.AddItem(2))

	require.NoError(t, c.RemoveItem(1))
	assert.Equal(t, []int64{2}, c.ListingIDs)
	assert.ErrorIs(t, c.RemoveItem(1), ErrNotFound)

	c.Clear()
	assert.Empty(t, c.ListingIDs)
	assert.False(t, c.Contains(2))
}
