package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := &cartRepository{carts: make(map[int64]cartEntry), now: func() time.Time { return now }}

	cart, err := repo.GetByUserID(ctx, 99)
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(4))
	require.NoError(t, repo.Save(ctx, cart, time.Hour))

	got, err := repo.GetByUserID(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, got.ListingIDs)

	got.ListingIDs[0] = 100
	again, _ := repo.GetByUserID(ctx, 99)
	assert.Equal(t, []int64{4}, again.ListingIDs, "callers get a copy")

	now = now.Add(2 * time.Hour)
	expired, err := repo.GetByUserID(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, expired.ListingIDs)
}

func TestCartRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository()
	cart, _ := repo.GetByUserID(ctx, 1)
	require.NoError(t, cart.AddItem(2))
	require.NoError(t, repo.Save(ctx, cart, 0))

	require.NoError(t, repo.DeleteByUserID(ctx, 1))

	got, _ := repo.GetByUserID(ctx, 1)
	assert.Empty(t, got.ListingIDs)
}
