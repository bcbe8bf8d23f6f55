package redis

// Package redis provides Redis-based adapters for the schutzraum portal.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	domainauth "github.com/zivilschutz/schutzraum-api/internal/domain/auth"
	"github.com/zivilschutz/schutzraum-api/internal/ports"
)

// SessionStore is a Redis-based session store. Sessions written here
// survive a portal restart; TTL follows the session's ExpiresAt.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
}

// NewSessionStore creates a new Redis-based session store.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "schutzraum:session:",
	}
}

// NewSessionStoreWithPrefix creates a Redis session store with a custom key prefix.
func NewSessionStoreWithPrefix(client redis.UniversalClient, prefix string) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: prefix,
	}
}

func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session is expired")
	}

	return s.client.Set(ctx, s.prefix+sess.ID, data, ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}

	data, err := s.client.Get(ctx, s.prefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Session{}, ErrNotFound
		}
		return domainauth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		// Unparseable storage means no session, not a fatal error. Drop
		// the bad record so the next read is a clean miss.
		if delErr := s.Delete(ctx, id); delErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup corrupt session: %w", delErr)
		}
		return domainauth.Session{}, ErrNotFound
	}

	// Redis TTL should have expired the key already, but re-check so a
	// clock-skewed record never authorizes anything.
	if time.Now().After(sess.ExpiresAt) {
		if delErr := s.Delete(ctx, id); delErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup expired session: %w", delErr)
		}
		return domainauth.Session{}, ErrNotFound
	}

	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil // Nothing to delete
	}
	return s.client.Del(ctx, s.prefix+id).Err()
}

// ErrNotFound is returned when a session is not found.
var ErrNotFound = ports.ErrSessionNotFound
