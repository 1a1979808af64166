package view

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lysyi3m/market-intel/app/market"
)

// Store keeps the live dashboard sessions.
type Store struct {
	source      Source
	filterer    *market.Filterer
	user        User
	searchDelay time.Duration
	now         func() time.Time

	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewStore(source Source, filterer *market.Filterer, user User, searchDelay time.Duration) *Store {
	return &Store{
		source:      source,
		filterer:    filterer,
		user:        user,
		searchDelay: searchDelay,
		now:         time.Now,
		sessions:    make(map[string]*Session),
	}
}

func (st *Store) Now() time.Time {
	return st.now()
}

func (st *Store) Create() *Session {
	session := newSession(uuid.NewString(), st.source, st.filterer, st.user, st.searchDelay, st.now())

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[session.ID] = session

	slog.Debug("Session created", "session", session.ID)
	return session
}

// Get returns a session and marks it active.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	session, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}

	session.touch(st.now())
	return session, nil
}

func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	session, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if ok {
		session.Close()
		slog.Debug("Session closed", "session", id)
	}
	return ok
}

// ExpireIdle closes and removes sessions inactive for longer than ttl.
func (st *Store) ExpireIdle(ttl time.Duration) int {
	cutoff := st.now().Add(-ttl)

	st.mu.Lock()
	var expired []*Session
	for id, session := range st.sessions {
		if session.idleSince().Before(cutoff) {
			expired = append(expired, session)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, session := range expired {
		session.Close()
	}
	return len(expired)
}

func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
