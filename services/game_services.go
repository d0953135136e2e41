package services

import (
	"time"

	"hangman/game"
	"hangman/metrics"
	"hangman/models"
	"hangman/realtime"

	"github.com/sirupsen/logrus"
)

var sessionStore *game.Store

// InitSessionStore creates the process-wide session store and launches its
// idle reaper. Must be called once at startup before any game route is hit.
func InitSessionStore(idleTimeout, sweepInterval time.Duration) {
	sessionStore = game.NewStore()
	sessionStore.StartReaper(idleTimeout, sweepInterval)
}

// StartedGame describes a freshly created session
type StartedGame struct {
	GameID     string
	WordLength int
	State      game.State
}

// StartGame picks an eligible word for the user, creates a session and
// returns its initial state
func StartGame(user *models.User, courseID, teacherID string) (StartedGame, error) {
	word, err := SelectRandomWord(user, courseID, teacherID)
	if err != nil {
		return StartedGame{}, err
	}

	gameID, session := sessionStore.Create(word)
	metrics.GamesStarted.WithLabelValues(string(user.Role)).Inc()
	logrus.WithFields(logrus.Fields{
		"game_id": gameID,
		"user":    user.Username,
		"word_id": word.ID,
	}).Info("Game started")

	return StartedGame{
		GameID:     gameID,
		WordLength: len(word.Word),
		State:      session.Snapshot(),
	}, nil
}

// GuessLetter applies one letter to the session after checking access.
// Guessing an already-tried letter leaves the session untouched and simply
// returns the current state. When the guess ends the game, the history
// record is written before the state is returned.
func GuessLetter(user *models.User, gameID, letter string) (game.State, error) {
	session, err := sessionStore.Get(gameID)
	if err != nil {
		return game.State{}, err
	}
	if err := ValidateGameAccess(user, session); err != nil {
		return game.State{}, err
	}

	if _, err := session.Guess(letter); err != nil {
		return game.State{}, err
	}

	state := session.Snapshot()
	if state.Complete {
		outcome := "lost"
		if state.Success {
			outcome = "won"
		}
		if err := recordCompletion(user, session, state, gameID, outcome); err != nil {
			return game.State{}, err
		}
	}
	return state, nil
}

// ForfeitGame ends the session as a loss. The session itself decides under
// its own lock whether the forfeit transitioned it, so a forfeit racing a
// completing guess writes exactly one history record between them.
func ForfeitGame(user *models.User, gameID string) (game.State, error) {
	session, err := sessionStore.Get(gameID)
	if err != nil {
		return game.State{}, err
	}
	if err := ValidateGameAccess(user, session); err != nil {
		return game.State{}, err
	}

	if session.Forfeit() {
		state := session.Snapshot()
		if err := recordCompletion(user, session, state, gameID, "forfeited"); err != nil {
			return game.State{}, err
		}
	}
	return session.Snapshot(), nil
}

// CurrentGameStatus returns the state of a live session without mutating it
func CurrentGameStatus(user *models.User, gameID string) (game.State, error) {
	session, err := sessionStore.Get(gameID)
	if err != nil {
		return game.State{}, err
	}
	if err := ValidateGameAccess(user, session); err != nil {
		return game.State{}, err
	}
	return session.Snapshot(), nil
}

// GameStatisticsForUser builds the statistics snapshot over the records the
// user may see. Teachers additionally trigger the class-average lookup that
// feeds their won/lost counts.
func GameStatisticsForUser(user *models.User) (GameStatistics, error) {
	histories, err := HistoriesForUser(user)
	if err != nil {
		return GameStatistics{}, err
	}
	return buildStatisticsForRole(histories, user)
}

// ClassStatistics builds the snapshot over one course's records, for
// teachers of record and admins
func ClassStatistics(actor *models.User, courseID string) (GameStatistics, error) {
	if err := ValidateCourseAccess(actor, courseID); err != nil {
		return GameStatistics{}, err
	}
	histories, err := FindByCourse(courseID)
	if err != nil {
		return GameStatistics{}, err
	}
	// Class statistics always read straight from the course's records,
	// regardless of who asks.
	return BuildGameStatistics(histories, models.RoleAdmin, nil), nil
}

// CategoryStatistics filters the user's visible records down to one word
// category before aggregating
func CategoryStatistics(user *models.User, category string) (GameStatistics, error) {
	histories, err := HistoriesForUser(user)
	if err != nil {
		return GameStatistics{}, err
	}

	filtered := histories[:0:0]
	for _, h := range histories {
		if h.Word != nil && h.Word.Category == category {
			filtered = append(filtered, h)
		}
	}
	return buildStatisticsForRole(filtered, user)
}

func buildStatisticsForRole(histories []models.GameHistory, user *models.User) (GameStatistics, error) {
	var teacherAvg *float64
	if user.Role == models.RoleTeacher {
		avg, err := ClassAverageForTeacher(user.ID)
		if err != nil {
			return GameStatistics{}, err
		}
		teacherAvg = avg
	}
	return BuildGameStatistics(histories, user.Role, teacherAvg), nil
}

// recordCompletion persists the history record for a terminal session and
// publishes the result to course watchers. The session itself stays in the
// store so its final state remains queryable; the idle reaper evicts it.
func recordCompletion(user *models.User, session *game.Session, state game.State, gameID, outcome string) error {
	word := session.Word()
	if err := SaveGameHistory(user, word, state); err != nil {
		logrus.WithError(err).WithField("game_id", gameID).Error("Failed to save game history")
		return err
	}

	metrics.GamesCompleted.WithLabelValues(outcome).Inc()
	logrus.WithFields(logrus.Fields{
		"game_id": gameID,
		"user":    user.Username,
		"outcome": outcome,
	}).Info("Game completed")

	realtime.BroadcastGameUpdate(realtime.GameUpdate{
		CourseID:      word.CourseID,
		Username:      user.Username,
		Word:          word.Word,
		Success:       state.Success,
		WrongAttempts: len(state.WrongLetters),
	})
	return nil
}
