package game

import (
	"errors"
	"sync"
	"time"

	"hangman/metrics"
	"hangman/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrSessionNotFound is returned when a game ID does not map to a live session
var ErrSessionNotFound = errors.New("game session not found")

// Store holds every live game session, keyed by game ID. It is the only
// shared mutable state of the engine: the map is guarded by an RWMutex and
// session IDs are random UUIDs regenerated on collision, so two concurrent
// starts can never receive the same ID. Sessions live in memory only and are
// lost on restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*liveSession

	reaperOnce sync.Once
	stop       chan struct{}
}

type liveSession struct {
	session    *Session
	lastAccess time.Time
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*liveSession),
		stop:     make(chan struct{}),
	}
}

// Create registers a new session for the given word and returns its ID.
// An ID already mapping to a live session is never reused or overwritten.
func (st *Store) Create(word models.Word) (string, *Session) {
	session := NewSession(word)

	st.mu.Lock()
	defer st.mu.Unlock()
	id := uuid.NewString()
	for _, taken := st.sessions[id]; taken; _, taken = st.sessions[id] {
		id = uuid.NewString()
	}
	st.sessions[id] = &liveSession{session: session, lastAccess: time.Now()}
	metrics.ActiveSessions.Set(float64(len(st.sessions)))
	return id, session
}

// Get returns the live session for the given ID and marks it as recently
// used, or ErrSessionNotFound
func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	live, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	live.lastAccess = time.Now()
	return live.session, nil
}

// Remove evicts a session. Called once its history record has been written,
// or by the idle reaper.
func (st *Store) Remove(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
	metrics.ActiveSessions.Set(float64(len(st.sessions)))
}

// Len returns the number of live sessions
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// StartReaper launches a background sweep that evicts sessions idle for
// longer than idleTimeout. Abandoned games would otherwise accumulate
// forever, since nothing in the request protocol ends them.
func (st *Store) StartReaper(idleTimeout, sweepInterval time.Duration) {
	st.reaperOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(sweepInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					if n := st.reap(idleTimeout); n > 0 {
						logrus.WithField("sessions", n).Info("Reaped idle game sessions")
					}
				case <-st.stop:
					return
				}
			}
		}()
	})
}

// StopReaper terminates the background sweep
func (st *Store) StopReaper() {
	close(st.stop)
}

func (st *Store) reap(idleTimeout time.Duration) int {
	cutoff := time.Now().Add(-idleTimeout)

	st.mu.Lock()
	defer st.mu.Unlock()
	reaped := 0
	for id, live := range st.sessions {
		if live.lastAccess.Before(cutoff) {
			delete(st.sessions, id)
			reaped++
		}
	}
	if reaped > 0 {
		metrics.SessionsReaped.Add(float64(reaped))
		metrics.ActiveSessions.Set(float64(len(st.sessions)))
	}
	return reaped
}
