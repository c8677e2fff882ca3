package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RoleStore is the authoritative source of user roles.
type RoleStore interface {
	GetUserRole(id int) (string, error)
}

// RoleCache fronts role lookups with a short-TTL Redis cache. The cache is
// optional: with a nil client every lookup goes straight to the store, so
// the freshness guarantee degrades only by the configured TTL and entries
// are invalidated explicitly whenever a user row is mutated.
type RoleCache struct {
	store  RoleStore
	client *redis.Client
	ttl    time.Duration
}

func NewRoleCache(store RoleStore, client *redis.Client, ttl time.Duration) *RoleCache {
	return &RoleCache{store: store, client: client, ttl: ttl}
}

func roleKey(id int) string {
	return fmt.Sprintf("rol:usuario:%d", id)
}

// GetUserRole returns the cached role when present, falling back to the
// store on a miss or on any Redis error.
func (c *RoleCache) GetUserRole(ctx context.Context, id int) (string, error) {
	if c.client != nil {
		if role, err := c.client.Get(ctx, roleKey(id)).Result(); err == nil {
			return role, nil
		}
	}

	role, err := c.store.GetUserRole(id)
	if err != nil {
		return "", err
	}

	if c.client != nil {
		// Cache write failures are tolerated; the next lookup re-reads.
		c.client.Set(ctx, roleKey(id), role, c.ttl)
	}
	return role, nil
}

// Invalidate drops the cached role after a user mutation so role changes
// take effect without waiting out the TTL.
func (c *RoleCache) Invalidate(ctx context.Context, id int) {
	if c.client == nil {
		return
	}
	c.client.Del(ctx, roleKey(id))
}
