package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/models"
	"storefront/utils"

	"github.com/go-redis/redis/v8"
)

// RedisSessionStore implements SessionStore on top of Redis. Sessions are
// stored as JSON under a per-shopper key with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func sessionKey(shopperID string) string {
	return utils.SessionCachePrefix + shopperID
}

func (s *RedisSessionStore) Get(ctx context.Context, shopperID string) (*models.CheckoutSession, error) {
	data, err := s.Client.Get(ctx, sessionKey(shopperID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch checkout session: %w", err)
	}

	var sess models.CheckoutSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse checkout session: %w", err)
	}
	return &sess, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *models.CheckoutSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(sess.ShopperID), data, utils.SessionCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to store checkout session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, shopperID string) error {
	if err := s.Client.Del(ctx, sessionKey(shopperID)).Err(); err != nil {
		return fmt.Errorf("failed to delete checkout session: %w", err)
	}
	return nil
}
