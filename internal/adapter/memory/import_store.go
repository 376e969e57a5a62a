package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

// ImportStore keeps pending uploads in process memory. A background loop
// drops expired sessions every sweep interval until Close is called.
type ImportStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.ImportSession
	now      func() time.Time

	stop      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

var _ port.ImportStore = (*ImportStore)(nil)

// NewImportStore starts the sweep loop. A non-positive sweep disables it.
func NewImportStore(sweep time.Duration) *ImportStore {
	s := &ImportStore{
		sessions: make(map[uuid.UUID]*domain.ImportSession),
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	if sweep > 0 {
		s.wg.Add(1)
		go s.sweepLoop(sweep)
	}
	return s
}

// Save stores a copy of session so later changes by the caller are not
// visible until saved again.
func (s *ImportStore) Save(_ context.Context, session *domain.ImportSession) error {
	cp := *session
	s.mu.Lock()
	s.sessions[session.Token] = &cp
	s.mu.Unlock()
	return nil
}

func (s *ImportStore) Get(_ context.Context, token uuid.UUID) (*domain.ImportSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok || session.Expired(s.now()) {
		return nil, nil
	}
	cp := *session
	return &cp, nil
}

func (s *ImportStore) Take(_ context.Context, token uuid.UUID) (*domain.ImportSession, error) {
	s.mu.Lock()
	session, ok := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()
	if !ok || session.Expired(s.now()) {
		return nil, nil
	}
	return session, nil
}

func (s *ImportStore) Delete(_ context.Context, token uuid.UUID) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// Len counts stored sessions, expired ones included until swept.
func (s *ImportStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the sweep loop. It is safe to call more than once.
func (s *ImportStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.wg.Wait()
	})
	return nil
}

func (s *ImportStore) sweepLoop(every time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *ImportStore) sweep() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, token)
		}
	}
}
