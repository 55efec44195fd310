//go:build integration

package redis

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/app/config"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClient *redis.Client

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start Redis resource: %s", err)
	}

	if err := pool.Retry(func() error {
		var errRetry error
		testClient, errRetry = NewClient(context.Background(), config.RedisConfig{Addr: resource.GetHostPort("6379/tcp")})
		return errRetry
	}); err != nil {
		log.Fatalf("Could not connect to Redis: %s", err)
	}

	code := m.Run()

	_ = testClient.Close()
	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge Redis resource: %s", err)
	}
	os.Exit(code)
}

func TestMirror_RoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMirror(testClient)

	var missing []entity.Listing
	found, err := m.Load(ctx, "db_nothing", &missing)
	require.NoError(t, err)
	assert.False(t, found)

	in := []entity.Listing{{ID: 1, Title: "Guitar", Price: "$250.00", Status: entity.ListingSold}}
	require.NoError(t, m.Save(ctx, "db_items", in))

	var out []entity.Listing
	found, err = m.Load(ctx, "db_items", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)

	raw, err := testClient.Get(ctx, "marketplace:db_items").Result()
	require.NoError(t, err)
	assert.Contains(t, raw, `"title":"Guitar"`)
}
