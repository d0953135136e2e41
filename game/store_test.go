package game

import (
	"sync"
	"testing"
	"time"

	"hangman/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateGetRemove(t *testing.T) {
	t.Parallel()

	st := NewStore()
	word := models.Word{ID: "w1", Word: "CAT"}

	id, session := st.Create(word)
	require.NotEmpty(t, id)
	require.NotNil(t, session)
	assert.Equal(t, 1, st.Len())

	got, err := st.Get(id)
	require.NoError(t, err)
	assert.Same(t, session, got)

	st.Remove(id)
	assert.Equal(t, 0, st.Len())

	_, err = st.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_GetUnknownID(t *testing.T) {
	t.Parallel()

	st := NewStore()
	_, err := st.Get("does-not-exist")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	t.Parallel()

	st := NewStore()
	word := models.Word{ID: "w1", Word: "CAT"}

	const n = 100
	ids := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, _ := st.Create(word)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate session ID %s", id)
		seen[id] = true
	}
	assert.Equal(t, n, st.Len())
}

func TestStore_ReapEvictsOnlyIdleSessions(t *testing.T) {
	t.Parallel()

	st := NewStore()
	word := models.Word{ID: "w1", Word: "CAT"}

	idleID, _ := st.Create(word)
	activeID, _ := st.Create(word)

	// Backdate the idle session past the cutoff
	st.mu.Lock()
	st.sessions[idleID].lastAccess = time.Now().Add(-time.Hour)
	st.mu.Unlock()

	reaped := st.reap(30 * time.Minute)
	assert.Equal(t, 1, reaped)
	assert.Equal(t, 1, st.Len())

	_, err := st.Get(idleID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = st.Get(activeID)
	assert.NoError(t, err)
}

func TestStore_GetRefreshesLastAccess(t *testing.T) {
	t.Parallel()

	st := NewStore()
	id, _ := st.Create(models.Word{ID: "w1", Word: "CAT"})

	st.mu.Lock()
	st.sessions[id].lastAccess = time.Now().Add(-time.Hour)
	st.mu.Unlock()

	// Touching the session keeps it alive through the next sweep
	_, err := st.Get(id)
	require.NoError(t, err)

	reaped := st.reap(30 * time.Minute)
	assert.Equal(t, 0, reaped)
	assert.Equal(t, 1, st.Len())
}
