package memstore

import (
	"context"
	"strings"
	"sync"
	"time"

	domainauth "github.com/zivilschutz/schutzraum-api/internal/domain/auth"
	"github.com/zivilschutz/schutzraum-api/internal/ports"
)

// IdentityDirectory is the seeded in-memory user registry of the demo
// portal. Lookups optionally sleep for the configured latency to mimic a
// remote directory.
type IdentityDirectory struct {
	mu      sync.RWMutex
	byID    map[string]domainauth.Identity
	byEmail map[string]domainauth.Identity
	order   []string
	latency time.Duration
}

// NewIdentityDirectory creates a directory seeded with the given
// identities. Email matching is case-insensitive.
func NewIdentityDirectory(identities []domainauth.Identity, latency time.Duration) *IdentityDirectory {
	d := &IdentityDirectory{
		byID:    make(map[string]domainauth.Identity, len(identities)),
		byEmail: make(map[string]domainauth.Identity, len(identities)),
		latency: latency,
	}
	for _, id := range identities {
		d.byID[id.ID] = id
		d.byEmail[strings.ToLower(id.Email)] = id
		d.order = append(d.order, id.ID)
	}
	return d
}

func (d *IdentityDirectory) FindByEmail(ctx context.Context, email string) (domainauth.Identity, error) {
	if err := d.sleep(ctx); err != nil {
		return domainauth.Identity{}, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	id, ok := d.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return domainauth.Identity{}, ports.ErrIdentityNotFound
	}
	return id, nil
}

func (d *IdentityDirectory) FindByID(ctx context.Context, userID string) (domainauth.Identity, error) {
	if err := d.sleep(ctx); err != nil {
		return domainauth.Identity{}, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	id, ok := d.byID[userID]
	if !ok {
		return domainauth.Identity{}, ports.ErrIdentityNotFound
	}
	return id, nil
}

func (d *IdentityDirectory) List(ctx context.Context) ([]domainauth.Identity, error) {
	if err := d.sleep(ctx); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domainauth.Identity, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.byID[id])
	}
	return out, nil
}

// sleep waits for the configured latency, honoring context cancellation.
func (d *IdentityDirectory) sleep(ctx context.Context) error {
	if d.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(d.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
