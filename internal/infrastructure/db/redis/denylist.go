package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// minRevokeTTL keeps a just-expiring token revoked across clock skew.
const minRevokeTTL = time.Minute

// Denylist stores revoked token ids.
// Key format: revoked:<jti>
type Denylist struct {
	client *redis.Client
	now    func() time.Time
}

func NewDenylist(client *redis.Client) *Denylist {
	return &Denylist{client: client, now: time.Now}
}

// Revoke marks jti revoked until the token's own expiry.
func (d *Denylist) Revoke(ctx context.Context, jti string, until time.Time) error {
	if err := d.client.Set(ctx, d.key(jti), "1", revokeTTL(until, d.now())).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether jti has been revoked.
func (d *Denylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

func (d *Denylist) key(jti string) string {
	return "revoked:" + jti
}

func revokeTTL(until, now time.Time) time.Duration {
	ttl := until.Sub(now)
	if ttl < minRevokeTTL {
		return minRevokeTTL
	}
	return ttl
}
