package game

import (
	"errors"
	"strings"
	"sync"

	"hangman/models"
)

// MaxAttempts is the wrong-letter budget of every session. It matches the
// number of strokes in the hangman drawing.
const MaxAttempts = 10

// ErrGameComplete is returned when a guess is applied to a terminal session
var ErrGameComplete = errors.New("game is already complete")

// Session tracks one play-through of a single word by one student. The word
// never changes for the lifetime of the session; all mutations go through
// Guess and Forfeit, which serialize on the session mutex so that two
// concurrent guesses can never interleave.
type Session struct {
	mu       sync.Mutex
	word     models.Word
	guessed  []string // distinct uppercase letters, in guess order
	wrong    []string // guessed letters absent from the word, in guess order
	complete bool
	success  bool
}

// State is a point-in-time copy of a session, safe to hand to callers
type State struct {
	MaskedWord        string
	RemainingAttempts int
	GuessedLetters    []string
	WrongLetters      []string
	Complete          bool
	Success           bool
}

// NewSession starts a fresh session for the given word
func NewSession(word models.Word) *Session {
	return &Session{word: word}
}

// Word returns the word being played
func (s *Session) Word() models.Word {
	return s.word
}

// Guess applies a single letter to the session. The letter is normalized to
// uppercase; guessing a letter twice is a no-op and reports applied=false.
// The loss check runs before the win check: a guess that exhausts the
// wrong-letter budget loses even if it would also have completed the word.
func (s *Session) Guess(letter string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.complete {
		return false, ErrGameComplete
	}

	letter = strings.ToUpper(letter)
	if contains(s.guessed, letter) {
		return false, nil
	}

	s.guessed = append(s.guessed, letter)
	if !strings.Contains(strings.ToUpper(s.word.Word), letter) {
		s.wrong = append(s.wrong, letter)
	}

	if len(s.wrong) >= MaxAttempts {
		s.complete = true
		s.success = false
		return true, nil
	}
	if s.allGuessedLocked() {
		s.complete = true
		s.success = true
	}
	return true, nil
}

// Forfeit ends a live session as a loss. It reports whether this call made
// the transition: a session that already reached a terminal state is left
// untouched and reports false, so a forfeit racing a completing guess can
// never produce a second outcome. Letters already guessed are preserved for
// the history record.
func (s *Session) Forfeit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.complete {
		return false
	}
	s.complete = true
	s.success = false
	return true
}

// Snapshot returns a consistent copy of the whole session state
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		MaskedWord:        s.maskedLocked(),
		RemainingAttempts: MaxAttempts - len(s.wrong),
		GuessedLetters:    append([]string(nil), s.guessed...),
		WrongLetters:      append([]string(nil), s.wrong...),
		Complete:          s.complete,
		Success:           s.success,
	}
}

// MaskedWord renders the word with every unguessed letter replaced by an
// underscore, letters separated by single spaces: "H _ L L _"
func (s *Session) MaskedWord() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maskedLocked()
}

// Complete reports whether the session reached a terminal state
func (s *Session) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.complete
}

// Success reports whether the session ended with the word fully guessed
func (s *Session) Success() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.success
}

// RemainingAttempts is always derived from the wrong-letter count
func (s *Session) RemainingAttempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MaxAttempts - len(s.wrong)
}

// GuessedLetters returns a copy of the guessed letters in guess order
func (s *Session) GuessedLetters() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.guessed...)
}

// WrongLetters returns a copy of the wrong letters in guess order
func (s *Session) WrongLetters() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.wrong...)
}

func (s *Session) maskedLocked() string {
	var masked strings.Builder
	for _, c := range s.word.Word {
		if contains(s.guessed, strings.ToUpper(string(c))) {
			masked.WriteRune(c)
		} else {
			masked.WriteString("_")
		}
		masked.WriteString(" ")
	}
	return strings.TrimSpace(masked.String())
}

func (s *Session) allGuessedLocked() bool {
	for _, c := range strings.ToUpper(s.word.Word) {
		if !contains(s.guessed, string(c)) {
			return false
		}
	}
	return true
}

func contains(letters []string, letter string) bool {
	for _, l := range letters {
		if l == letter {
			return true
		}
	}
	return false
}
