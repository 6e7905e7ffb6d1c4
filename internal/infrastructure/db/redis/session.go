package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/staffhub/agency-api/internal/core/domain"
)

const defaultSessionTTL = time.Hour

// SessionStore keeps server-side sessions in Redis so every instance behind a
// load balancer resolves the same cookie. Keys expire with the session TTL;
// an expired session and an unknown handle are the same thing to callers.
// Key format: sess:<uuid>
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// If ttl <= 0, defaultSessionTTL is used.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

type sessionRecord struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	UserType  string `json:"user_type"`
	CreatedAt int64  `json:"created_at"`
}

// Create mints a fresh session handle for user and stores its record with the
// configured TTL.
func (s *SessionStore) Create(ctx context.Context, user *domain.User) (*domain.Session, error) {
	now := time.Now().UTC()
	rec := sessionRecord{
		UserID:    user.ID,
		Username:  user.Username,
		UserType:  user.UserType,
		CreatedAt: now.Unix(),
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}

	id := uuid.NewString()
	if err := s.client.Set(ctx, s.key(id), payload, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return &domain.Session{
		ID:        id,
		UserID:    user.ID,
		Username:  user.Username,
		UserType:  user.UserType,
		CreatedAt: now,
	}, nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoActiveSession
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	return &domain.Session{
		ID:        id,
		UserID:    rec.UserID,
		Username:  rec.Username,
		UserType:  rec.UserType,
		CreatedAt: time.Unix(rec.CreatedAt, 0).UTC(),
	}, nil
}

// Destroy removes the session record. Deleting an already-gone session is
// not an error.
func (s *SessionStore) Destroy(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(id string) string {
	return "sess:" + id
}
