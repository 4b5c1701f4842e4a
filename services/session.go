package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Fecu3799/project-arq-web/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "session:"

// Session is the server-side record behind a bearer token.
type Session struct {
	Actor     models.Actor `json:"actor"`
	CreatedAt time.Time    `json:"createdAt"`
}

// SessionStore persists sessions keyed by token hash. Get returns nil with no
// error when the session is absent or expired. Implementations own their
// lifetime; nothing here is process-wide state.
type SessionStore interface {
	Save(key string, session Session) error
	Get(key string) (*Session, error)
	Delete(key string) error
}

// RedisSessionStore keeps sessions in Redis with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func (s *RedisSessionStore) Save(key string, session Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ctx := context.Background()
	if err := s.Client.Set(ctx, sessionPrefix+key, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(key string) (*Session, error) {
	ctx := context.Background()
	data, err := s.Client.Get(ctx, sessionPrefix+key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(key string) error {
	ctx := context.Background()
	return s.Client.Del(ctx, sessionPrefix+key).Err()
}

type memorySession struct {
	session   Session
	expiresAt time.Time
}

// MemorySessionStore is the in-process implementation, used in development
// and tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memorySession
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:      ttl,
		sessions: make(map[string]memorySession),
	}
}

func (s *MemorySessionStore) Save(key string, session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[key] = memorySession{
		session:   session,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemorySessionStore) Get(key string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[key]
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, key)
		return nil, nil
	}
	session := entry.session
	return &session, nil
}

func (s *MemorySessionStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
	return nil
}
