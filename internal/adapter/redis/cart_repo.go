package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/repository"
	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "marketplace:cart:"

type cartRepository struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) repository.CartRepository {
	return &cartRepository{client: client}
}

func cartKey(userID int64) string {
	return cartKeyPrefix + strconv.FormatInt(userID, 10)
}

func (r *cartRepository) GetByUserID(ctx context.Context, userID int64) (*entity.Cart, error) {
	val, err := r.client.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.NewCart(userID), nil
		}
		return nil, fmt.Errorf("failed to get cart for user %d from redis: %w", userID, err)
	}

	var cart entity.Cart
	if err := json.Unmarshal(val, &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart data for user %d: %w", userID, err)
	}
	return &cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *entity.Cart, ttl time.Duration) error {
	if cart == nil || cart.UserID == 0 {
		return fmt.Errorf("%w: cannot save nil cart or cart without user", entity.ErrInvalidInput)
	}
	cart.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart for user %d: %w", cart.UserID, err)
	}
	if err := r.client.Set(ctx, cartKey(cart.UserID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart for user %d to redis: %w", cart.UserID, err)
	}
	return nil
}

func (r *cartRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	if err := r.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart for user %d from redis: %w", userID, err)
	}
	return nil
}
