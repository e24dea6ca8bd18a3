package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"tourbook/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionStore interface {
	Get(ctx context.Context, id string) (models.Session, error)
	Save(ctx context.Context, session models.Session) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// sweepInterval bounds how often Save scans for expired sessions.
const sweepInterval = time.Minute

type MemorySessionStore struct {
	mu        sync.Mutex
	sessions  map[string]models.Session
	now       func() time.Time
	lastSweep time.Time
}

func NewMemorySessionStore(now func() time.Time) *MemorySessionStore {
	if now == nil {
		now = time.Now
	}
	return &MemorySessionStore{
		sessions: make(map[string]models.Session),
		now:      now,
	}
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	if expired(session, s.now()) {
		delete(s.sessions, id)
		return models.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// Save also evicts expired sessions, at most once per sweepInterval.
func (s *MemorySessionStore) Save(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= sweepInterval {
		s.sweep(now)
	}
	s.sessions[session.ID] = session
	return nil
}

// Len counts stored sessions, expired ones not yet swept included.
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// sweep must be called with the lock held.
func (s *MemorySessionStore) sweep(now time.Time) {
	for id, session := range s.sessions {
		if expired(session, now) {
			delete(s.sessions, id)
		}
	}
	s.lastSweep = now
}

func expired(session models.Session, now time.Time) bool {
	return !session.ExpiresAt.IsZero() && session.ExpiresAt.Before(now)
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemorySessionStore) Ping(context.Context) error {
	return nil
}

const sessionKeyPrefix = "session:"

// RedisSessionStore lets several web processes share sessions.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (models.Session, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, err
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return models.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return s.Delete(ctx, session.ID)
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.ID, payload, ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}

func (s *RedisSessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
