package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
	"github.com/redis/go-redis/v9"
)

const (
	mirrorKeyPrefix = "marketplace:"
)

// mirror stores each collection as one JSON document, the same shape the
// browser kept under its localStorage keys.
type mirror struct {
	client *redis.Client
}

func NewMirror(client *redis.Client) repository.Mirror {
	return &mirror{client: client}
}

func (m *mirror) key(name string) string {
	return mirrorKeyPrefix + name
}

func (m *mirror) Load(ctx context.Context, key string, dst interface{}) (bool, error) {
	val, err := m.client.Get(ctx, m.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s from redis: %w", key, err)
	}
	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (m *mirror) Save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := m.client.Set(ctx, m.key(key), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s to redis: %w", key, err)
	}
	return nil
}
