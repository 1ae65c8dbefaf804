package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/models"
	"storefront/utils"

	"github.com/go-redis/redis/v8"
)

// RedisCartStore implements CartStore on top of Redis. Carts are stored as
// JSON under a per-shopper key with a sliding TTL.
type RedisCartStore struct {
	Client *redis.Client
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{Client: client}
}

func cartKey(shopperID string) string {
	return utils.CartCachePrefix + shopperID
}

func (s *RedisCartStore) Get(ctx context.Context, shopperID string) (*models.Cart, error) {
	data, err := s.Client.Get(ctx, cartKey(shopperID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch cart from cache: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, fmt.Errorf("failed to parse stored cart: %w", err)
	}
	return &cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.Client.Set(ctx, cartKey(cart.ShopperID), data, utils.CartCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to store cart: %w", err)
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, shopperID string) error {
	if err := s.Client.Del(ctx, cartKey(shopperID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
