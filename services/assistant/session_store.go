package assistant

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"commuterhub/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "assistant:sess:"

// SessionStore holds per-conversation dialog state between turns.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.SessionState, error)
	Set(ctx context.Context, sessionID string, state *models.SessionState) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps session state in Redis with a TTL, so abandoned
// conversations expire on their own.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.SessionState, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return &models.SessionState{}, nil
	}
	if err != nil {
		return nil, err
	}
	var state models.SessionState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sessionID string, state *models.SessionState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// MemorySessionStore is an in-process SessionStore for tests and single-node
// runs without Redis.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.SessionState
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.SessionState)}
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*models.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return &models.SessionState{}, nil
	}
	copied := state
	return &copied, nil
}

func (s *MemorySessionStore) Set(ctx context.Context, sessionID string, state *models.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = *state
	return nil
}

func (s *MemorySessionStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
