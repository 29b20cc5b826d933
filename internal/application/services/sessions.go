package services

import (
	"sync"
	"time"

	"github.com/DanielPopoola/cardform/internal/application"
	"github.com/google/uuid"
)

// Session is one page session and the form it owns.
type Session struct {
	ID         string
	Controller *FormController
	lastSeen   time.Time
}

// SessionStore keeps page sessions in memory only.
type SessionStore struct {
	newController func() *FormController
	clock         func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore(newController func() *FormController, clock func() time.Time) *SessionStore {
	if clock == nil {
		clock = time.Now
	}
	return &SessionStore{
		newController: newController,
		clock:         clock,
		sessions:      make(map[string]*Session),
	}
}

func (s *SessionStore) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:         uuid.NewString(),
		Controller: s.newController(),
		lastSeen:   s.clock(),
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session and marks it as seen.
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, application.NewSessionNotFoundError(id)
	}
	sess.lastSeen = s.clock()
	return sess, nil
}

// Sweep drops sessions not seen for longer than idleTTL and returns how many
// were removed. Sessions with a submission in flight are kept.
func (s *SessionStore) Sweep(idleTTL time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.clock().Add(-idleTTL)
	removed := 0
	for id, sess := range s.sessions {
		if !sess.lastSeen.Before(cutoff) {
			continue
		}
		if sess.Controller.State() == StateSubmitting {
			continue
		}
		delete(s.sessions, id)
		removed++
	}
	return removed
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
