package game

import (
	"testing"

	"hangman/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(text string) *Session {
	return NewSession(models.Word{ID: "w1", Word: text, Category: "Test", Difficulty: 1})
}

func TestSession_WinByGuessingAllLetters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		word    string
		guesses []string
	}{
		{
			name:    "letters in word order",
			word:    "CAT",
			guesses: []string{"C", "A", "T"},
		},
		{
			name:    "letters in reverse order",
			word:    "CAT",
			guesses: []string{"T", "A", "C"},
		},
		{
			name:    "lowercase guesses are normalized",
			word:    "CAT",
			guesses: []string{"c", "a", "t"},
		},
		{
			name:    "repeated letters need one guess",
			word:    "LLAMA",
			guesses: []string{"L", "A", "M"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestSession(tt.word)
			for i, letter := range tt.guesses {
				applied, err := s.Guess(letter)
				require.NoError(t, err)
				assert.True(t, applied, "guess %d (%s) should apply", i, letter)
			}

			assert.True(t, s.Complete())
			assert.True(t, s.Success())
			assert.Equal(t, MaxAttempts, s.RemainingAttempts())
		})
	}
}

func TestSession_LossAfterMaxWrongGuesses(t *testing.T) {
	t.Parallel()

	s := newTestSession("DOG")

	wrong := []string{"A", "B", "C", "E", "F", "H", "I", "J", "K", "L"}
	require.Len(t, wrong, MaxAttempts)

	for i, letter := range wrong {
		applied, err := s.Guess(letter)
		require.NoError(t, err)
		assert.True(t, applied)
		if i < len(wrong)-1 {
			assert.False(t, s.Complete(), "session should still be live after %d wrong guesses", i+1)
		}
	}

	assert.True(t, s.Complete())
	assert.False(t, s.Success())
	assert.Equal(t, 0, s.RemainingAttempts())

	// Terminal sessions reject further guesses
	_, err := s.Guess("D")
	assert.ErrorIs(t, err, ErrGameComplete)
}

func TestSession_LossTakesPriorityOverWin(t *testing.T) {
	t.Parallel()

	// Nine wrong guesses leave one attempt. Solving the word from there is
	// still a win.
	s := newTestSession("DOG")
	for _, letter := range []string{"A", "B", "C", "E", "F", "H", "I", "J", "K"} {
		_, err := s.Guess(letter)
		require.NoError(t, err)
	}
	for _, letter := range []string{"D", "O", "G"} {
		_, err := s.Guess(letter)
		require.NoError(t, err)
	}
	require.True(t, s.Complete())
	assert.True(t, s.Success())

	// Same setup, but the tenth wrong guess lands before the word is done
	s2 := newTestSession("DOG")
	for _, letter := range []string{"A", "B", "C", "E", "F", "H", "I", "J", "K"} {
		_, err := s2.Guess(letter)
		require.NoError(t, err)
	}
	_, err := s2.Guess("D")
	require.NoError(t, err)
	_, err = s2.Guess("L") // tenth wrong letter
	require.NoError(t, err)

	assert.True(t, s2.Complete())
	assert.False(t, s2.Success())
	assert.Equal(t, 0, s2.RemainingAttempts())
}

func TestSession_DuplicateGuessIsNoOp(t *testing.T) {
	t.Parallel()

	s := newTestSession("CAT")

	applied, err := s.Guess("Z")
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, MaxAttempts-1, s.RemainingAttempts())

	// Same wrong letter again, in both cases
	applied, err = s.Guess("Z")
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, MaxAttempts-1, s.RemainingAttempts())

	applied, err = s.Guess("z")
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, MaxAttempts-1, s.RemainingAttempts())

	assert.Equal(t, []string{"Z"}, s.GuessedLetters())
	assert.Equal(t, []string{"Z"}, s.WrongLetters())
}

func TestSession_MaskedWord(t *testing.T) {
	t.Parallel()

	s := newTestSession("HELLO")
	assert.Equal(t, "_ _ _ _ _", s.MaskedWord())

	_, err := s.Guess("L")
	require.NoError(t, err)
	assert.Equal(t, "_ _ L L _", s.MaskedWord())

	_, err = s.Guess("H")
	require.NoError(t, err)
	assert.Equal(t, "H _ L L _", s.MaskedWord())
}

func TestSession_ForfeitPreservesLetters(t *testing.T) {
	t.Parallel()

	s := newTestSession("CAT")
	_, err := s.Guess("C")
	require.NoError(t, err)
	_, err = s.Guess("X")
	require.NoError(t, err)

	assert.True(t, s.Forfeit())

	state := s.Snapshot()
	assert.True(t, state.Complete)
	assert.False(t, state.Success)
	assert.Equal(t, []string{"C", "X"}, state.GuessedLetters)
	assert.Equal(t, []string{"X"}, state.WrongLetters)
	assert.Equal(t, MaxAttempts-1, state.RemainingAttempts)
}

func TestSession_ForfeitOnTerminalSessionIsNoOp(t *testing.T) {
	t.Parallel()

	// Forfeiting a won session must not flip its outcome
	s := newTestSession("CAT")
	for _, letter := range []string{"C", "A", "T"} {
		_, err := s.Guess(letter)
		require.NoError(t, err)
	}
	require.True(t, s.Complete())

	assert.False(t, s.Forfeit())
	assert.True(t, s.Success())

	// Only the first of two forfeits transitions the session
	s2 := newTestSession("CAT")
	assert.True(t, s2.Forfeit())
	assert.False(t, s2.Forfeit())
	assert.True(t, s2.Complete())
	assert.False(t, s2.Success())
}

func TestSession_SnapshotReturnsCopies(t *testing.T) {
	t.Parallel()

	s := newTestSession("CAT")
	_, err := s.Guess("X")
	require.NoError(t, err)

	state := s.Snapshot()
	state.GuessedLetters[0] = "MUTATED"
	state.WrongLetters[0] = "MUTATED"

	assert.Equal(t, []string{"X"}, s.GuessedLetters())
	assert.Equal(t, []string{"X"}, s.WrongLetters())
}
