// Package session keeps one dashboard per browser, in memory, until it goes idle.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"cessao-fidc/internal/dashboard"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

// DefaultIdleTimeout evicts sessions nobody touched for this long.
const DefaultIdleTimeout = 30 * time.Minute

// Session is one operator's page state.
type Session struct {
	ID        string
	Dashboard *dashboard.Dashboard
	CreatedAt time.Time

	lastActive time.Time
	mu         sync.Mutex

	// ops serializes requests that act on the dashboard.
	ops sync.Mutex
}

// Lock serializes an operation on the session's dashboard. Long-lived
// readers such as the notification stream must not hold it.
func (s *Session) Lock() { s.ops.Lock() }

// Unlock ends an operation started with Lock.
func (s *Session) Unlock() { s.ops.Unlock() }

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastActive = now
	s.mu.Unlock()
}

// LastActive returns when the session was last used.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Factory builds the dashboard for a new session.
type Factory func() *dashboard.Dashboard

// Store is the in-memory session table.
type Store struct {
	sessions map[string]*Session
	ttl      time.Duration
	factory  Factory
	now      func() time.Time
	onEvict  func(*Session)

	mu sync.RWMutex
}

// NewStore creates a store. A non-positive ttl uses DefaultIdleTimeout.
func NewStore(ttl time.Duration, factory Factory) *Store {
	if ttl <= 0 {
		ttl = DefaultIdleTimeout
	}
	if factory == nil {
		factory = func() *dashboard.Dashboard { return dashboard.New(dashboard.Options{}) }
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		factory:  factory,
		now:      time.Now,
	}
}

// OnEvict registers a hook run after a session is closed by the janitor.
func (s *Store) OnEvict(fn func(*Session)) {
	s.mu.Lock()
	s.onEvict = fn
	s.mu.Unlock()
}

// Create starts a new session.
func (s *Store) Create() *Session {
	now := s.now()
	sess := &Session{
		ID:         uuid.NewString(),
		Dashboard:  s.factory(),
		CreatedAt:  now,
		lastActive: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns a live session and marks it active.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	now := s.now()
	if now.Sub(sess.LastActive()) > s.ttl {
		return nil, ErrNotFound
	}
	sess.touch(now)
	return sess, nil
}

// GetOrCreate returns the session for id, or a fresh one if id is unknown.
func (s *Store) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if sess, err := s.Get(id); err == nil {
			return sess, false
		}
	}
	return s.Create(), true
}

// Len returns the number of tracked sessions, expired ones included until swept.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep evicts idle sessions and closes their dashboards.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if now.Sub(sess.LastActive()) > s.ttl {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	onEvict := s.onEvict
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Dashboard.Close()
		if onEvict != nil {
			onEvict(sess)
		}
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done, then closes every session.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.CloseAll()
			return nil
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// CloseAll closes and forgets every session.
func (s *Store) CloseAll() {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, sess := range all {
		sess.Dashboard.Close()
	}
}
