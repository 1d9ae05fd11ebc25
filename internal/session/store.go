package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/brightbeginnings/daycare-voice-service/internal/domain"
	redispkg "github.com/brightbeginnings/daycare-voice-service/pkg/redis"
)

// SessionTTL bounds how long an abandoned call session lingers.
const SessionTTL = 1 * time.Hour

// State is everything held for one live call: the current stage and the
// language detected on the most recent turn. Discarded at hangup.
type State struct {
	Stage     domain.CallStage `json:"stage"`
	Language  domain.Language  `json:"language"`
	StartedAt time.Time        `json:"startedAt"`
}

// Store persists call session state keyed by the telephony call identifier.
type Store interface {
	Get(ctx context.Context, callID string) (*State, error)
	Put(ctx context.Context, callID string, state *State) error
	Delete(ctx context.Context, callID string) error
}

// memoryStore is the in-process fallback used when Redis is not configured.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	state     State
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore() Store {
	return &memoryStore{entries: make(map[string]memoryEntry)}
}

func (s *memoryStore) Get(_ context.Context, callID string) (*State, error) {
	s.mu.RLock()
	entry, ok := s.entries[callID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, callID)
		s.mu.Unlock()
		return nil, nil
	}
	state := entry.state
	return &state, nil
}

func (s *memoryStore) Put(_ context.Context, callID string, state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[callID] = memoryEntry{state: *state, expiresAt: time.Now().Add(SessionTTL)}
	return nil
}

func (s *memoryStore) Delete(_ context.Context, callID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, callID)
	return nil
}

// redisStore keeps call sessions in Redis so restarts mid-call survive.
type redisStore struct {
	svc redispkg.RedisServiceInterface
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(svc redispkg.RedisServiceInterface) Store {
	return &redisStore{svc: svc}
}

func (s *redisStore) Get(ctx context.Context, callID string) (*State, error) {
	key := s.svc.GenerateKey(redispkg.CALL_SESSION, callID)
	raw, err := s.svc.GetValue(ctx, key)
	if err != nil {
		if err == redispkg.ErrKeyNotExist {
			return nil, nil
		}
		return nil, err
	}
	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *redisStore) Put(ctx context.Context, callID string, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	key := s.svc.GenerateKey(redispkg.CALL_SESSION, callID)
	return s.svc.SetValue(ctx, key, string(data), SessionTTL)
}

func (s *redisStore) Delete(ctx context.Context, callID string) error {
	key := s.svc.GenerateKey(redispkg.CALL_SESSION, callID)
	return s.svc.DelValue(ctx, key)
}
