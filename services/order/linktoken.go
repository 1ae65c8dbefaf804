package order

import (
	"context"
	"fmt"

	"storefront/utils"

	"github.com/go-redis/redis/v8"
)

// RedisLinkTokenStore is the durable sink for pending guest-order link
// tokens. The transport layer mirrors the token into a short-lived cookie
// so the sign-up flow can find it from a different navigation context.
type RedisLinkTokenStore struct {
	Client *redis.Client
}

func NewRedisLinkTokenStore(client *redis.Client) *RedisLinkTokenStore {
	return &RedisLinkTokenStore{Client: client}
}

func (s *RedisLinkTokenStore) Write(ctx context.Context, orderID string) error {
	key := utils.PendingLinkPrefix + orderID
	if err := s.Client.Set(ctx, key, orderID, utils.PendingLinkTTL).Err(); err != nil {
		return fmt.Errorf("failed to store pending link token: %w", err)
	}
	return nil
}
