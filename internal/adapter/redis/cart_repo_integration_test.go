//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(testClient)

	empty, err := repo.GetByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, empty.ListingIDs)
	assert.Equal(t, int64(7), empty.UserID)

	require.NoError(t, empty.AddItem(5))
	require.NoError(t, empty.AddItem(9))
	require.NoError(t, repo.Save(ctx, empty, time.Minute))

	got, err := repo.GetByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 9}, got.ListingIDs)

	ttl, err := testClient.TTL(ctx, "marketplace:cart:7").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, repo.DeleteByUserID(ctx, 7))
	got, err = repo.GetByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, got.ListingIDs)
}
