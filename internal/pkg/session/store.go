package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/booking"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/metrics"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/profile"
)

var ErrSessionNotFound = exception.New(http.StatusNotFound, "session not found")

// Session is one client's navigation state: the active tab plus the
// booking and profile flows behind it.
type Session struct {
	ID        string
	Screen    dto.Screen
	Booking   booking.State
	Profile   profile.State
	CreatedAt time.Time
	UpdatedAt time.Time
}

type entry struct {
	mu      sync.Mutex
	session Session
	removed bool
}

// Store keeps sessions in memory. A session not updated for ttl is expired.
// Updates to one session are serialized.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
	now     func() time.Time
}

// NewStore creates a store; a nil now uses time.Now.
func NewStore(ttl time.Duration, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}

	return &Store{
		entries: make(map[string]*entry),
		ttl:     ttl,
		now:     now,
	}
}

// Create stores initial under a new id and returns it.
func (s *Store) Create(ctx context.Context, initial Session) Session {
	now := s.now()

	initial.ID = uuid.NewString()
	initial.CreatedAt = now
	initial.UpdatedAt = now

	s.mu.Lock()
	s.entries[initial.ID] = &entry{session: initial}
	size := len(s.entries)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(size))
	slog.DebugContext(ctx, "session created", slog.String("session_id", initial.ID))

	return initial
}

func (s *Store) Get(ctx context.Context, id string) (Session, error) {
	e, err := s.lookup(id)
	if err != nil {
		return Session{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.removed || s.expired(e.session) {
		return Session{}, ErrSessionNotFound.WithCause(fmt.Errorf("session %s expired", id))
	}

	return e.session, nil
}

// Update runs fn on the session while holding its lock and stores the result.
// When fn fails the session is left as it was.
func (s *Store) Update(ctx context.Context, id string, fn func(Session) (Session, error)) (Session, error) {
	e, err := s.lookup(id)
	if err != nil {
		return Session{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.removed || s.expired(e.session) {
		return Session{}, ErrSessionNotFound.WithCause(fmt.Errorf("session %s expired", id))
	}

	next, err := fn(e.session)
	if err != nil {
		return e.session, err
	}

	next.ID = e.session.ID
	next.CreatedAt = e.session.CreatedAt
	next.UpdatedAt = s.now()
	e.session = next

	return next, nil
}

// DeleteExpired drops every expired session and returns how many were dropped.
func (s *Store) DeleteExpired(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for id, e := range s.entries {
		e.mu.Lock()
		if s.expired(e.session) {
			e.removed = true
			delete(s.entries, id)
			deleted++
		}
		e.mu.Unlock()
	}

	metrics.ActiveSessions.Set(float64(len(s.entries)))

	return deleted
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// RunJanitor evicts expired sessions every interval until ctx is done.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "session janitor started", slog.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "session janitor stopped")
			return nil
		case <-ticker.C:
			if n := s.DeleteExpired(ctx); n > 0 {
				slog.InfoContext(ctx, "expired sessions evicted", slog.Int("count", n))
			}
		}
	}
}

func (s *Store) lookup(id string) (*entry, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound.WithCause(fmt.Errorf("session %s", id))
	}

	return e, nil
}

func (s *Store) expired(session Session) bool {
	return s.now().Sub(session.UpdatedAt) > s.ttl
}
