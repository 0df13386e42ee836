package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hailamir/academic-report-api/internal/models"
)

// ErrSessionNotFound signals a missing or expired intake session.
var ErrSessionNotFound = errors.New("intake session not found")

const sessionKeyPrefix = "intake:session:"

// RedisSessionStore keeps intake sessions in Redis with a sliding TTL so
// abandoned conversations expire on their own.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore constructs a Redis-backed session store.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisSessionStore{client: client, ttl: ttl}
}

// Get loads a session by its identifier.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.IntakeSession, error) {
	if s.client == nil {
		return nil, ErrSessionNotFound
	}

	raw, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("redis get session %s: %w", id, err)
	}

	var session models.IntakeSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session %s: %w", id, err)
	}
	return &session, nil
}

// Save stores the session and refreshes its expiry.
func (s *RedisSessionStore) Save(ctx context.Context, session *models.IntakeSession) error {
	if s.client == nil {
		return errors.New("session store unavailable")
	}

	session.UpdatedAt = time.Now().UTC()
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", session.ID, err)
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session %s: %w", session.ID, err)
	}
	return nil
}

// Delete removes a session; deleting an absent session is not an error.
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis delete session %s: %w", id, err)
	}
	return nil
}

// MemorySessionStore is an in-process store used when Redis is not
// configured, and in tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memorySessionEntry
}

type memorySessionEntry struct {
	session   models.IntakeSession
	expiresAt time.Time
}

// NewMemorySessionStore constructs an in-memory session store.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &MemorySessionStore{ttl: ttl, sessions: make(map[string]memorySessionEntry)}
}

// Get loads a session by its identifier.
func (s *MemorySessionStore) Get(ctx context.Context, id string) (*models.IntakeSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	session := entry.session
	session.Fields = cloneFields(entry.session.Fields)
	return &session, nil
}

// Save stores the session and refreshes its expiry.
func (s *MemorySessionStore) Save(ctx context.Context, session *models.IntakeSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.UpdatedAt = time.Now().UTC()
	copied := *session
	copied.Fields = cloneFields(session.Fields)
	s.sessions[session.ID] = memorySessionEntry{session: copied, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

// Delete removes a session; deleting an absent session is not an error.
func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func cloneFields(fields map[string]string) map[string]string {
	if fields == nil {
		return nil
	}
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
