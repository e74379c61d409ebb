package memory

import (
	"context"
	"sync"
	"time"
)

// Denylist holds revoked token ids in a map. Expired entries are dropped
// lazily on lookup.
type Denylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewDenylist() *Denylist {
	return &Denylist{revoked: make(map[string]time.Time), now: time.Now}
}

func (d *Denylist) Revoke(_ context.Context, jti string, until time.Time) error {
	d.mu.Lock()
	d.revoked[jti] = until
	d.mu.Unlock()
	return nil
}

func (d *Denylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	until, ok := d.revoked[jti]
	if !ok {
		return false, nil
	}
	if d.now().After(until) {
		delete(d.revoked, jti)
		return false, nil
	}
	return true, nil
}
