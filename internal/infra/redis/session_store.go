package redis

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"dino-game-service/internal/app"
)

// SessionStore is a Redis-aware implementation of app.SessionStore.
// Notes:
//   - Sessions hold live timers and subscriber channels, so the session
//     objects themselves stay in a local in-process map.
//   - Redis marks session liveness with a TTL key, which gives operators a
//     cheap view of running games and could feed cross-instance routing.
type SessionStore struct {
	client   *redis.Client
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]*app.GameSession
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:   client,
		ttl:      ttl,
		sessions: make(map[string]*app.GameSession),
	}
}

func (s *SessionStore) Put(session *app.GameSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(session.ID), "1", s.ttl).Err()
}

func (s *SessionStore) Get(id string) (*app.GameSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	_ = s.client.Del(context.Background(), s.key(id)).Err()
}

func (s *SessionStore) key(id string) string {
	return "game:session:" + id
}
