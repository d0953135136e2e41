package games

import (
	"errors"
	"net/http"
	"time"

	"hangman/game"
	"hangman/models"
	"hangman/services"
	"hangman/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrGameNotFound       = "Game session not found"
	ErrNotAuthorized      = "Not authorized to access this game"
	ErrAlreadyComplete    = "Game is already complete"
	ErrNoWords            = "No words available"
	ErrInvalidLetter      = "Letter must be a single character A-Z"
	ErrInvalidDate        = "Invalid date, expected YYYY-MM-DD"
	ErrFailedToGetHistory = "Failed to get game history"
	ErrFailedToGetStats   = "Failed to get game statistics"
)

// StartRequest carries the optional scoping of a new game: admins pass a
// teacher ID, teachers a course ID, students neither
type StartRequest struct {
	CourseID  string `json:"course_id"`
	TeacherID string `json:"teacher_id"`
}

// GuessRequest is a single letter guess against a session
type GuessRequest struct {
	GameID string `json:"game_id" binding:"required"`
	Letter string `json:"letter" binding:"required"`
}

// StartResponse describes a freshly started game
type StartResponse struct {
	GameID            string `json:"game_id"`
	WordLength        int    `json:"word_length"`
	MaskedWord        string `json:"masked_word"`
	MaxAttempts       int    `json:"max_attempts"`
	RemainingAttempts int    `json:"remaining_attempts"`
}

// StateResponse is the game state shape shared by guess, forfeit and
// current-status endpoints
type StateResponse struct {
	MaskedWord        string   `json:"masked_word"`
	RemainingAttempts int      `json:"remaining_attempts"`
	GuessedLetters    []string `json:"guessed_letters"`
	WrongLetters      []string `json:"wrong_letters"`
	IsComplete        bool     `json:"is_complete"`
	IsSuccess         bool     `json:"is_success"`
}

// HistoryResponse is one entry of a play history listing
type HistoryResponse struct {
	ID           string    `json:"id"`
	Word         string    `json:"word"`
	Success      bool      `json:"success"`
	Attempts     int       `json:"attempts"`
	WrongLetters string    `json:"wrong_letters"`
	PlayedAt     time.Time `json:"played_at"`
}

func buildStateResponse(state game.State) StateResponse {
	return StateResponse{
		MaskedWord:        state.MaskedWord,
		RemainingAttempts: state.RemainingAttempts,
		GuessedLetters:    state.GuessedLetters,
		WrongLetters:      state.WrongLetters,
		IsComplete:        state.Complete,
		IsSuccess:         state.Success,
	}
}

func buildHistoryResponses(histories []models.GameHistory) []HistoryResponse {
	responses := make([]HistoryResponse, 0, len(histories))
	for _, h := range histories {
		entry := HistoryResponse{
			ID:           h.ID,
			Success:      h.IsSuccess,
			Attempts:     h.Attempts,
			WrongLetters: h.WrongLetters,
			PlayedAt:     h.PlayedAt,
		}
		if h.Word != nil {
			entry.Word = h.Word.Word
		}
		responses = append(responses, entry)
	}
	return responses
}

// handleServiceError maps business-rule failures onto HTTP statuses
func handleServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, game.ErrSessionNotFound):
		response.Error(c, http.StatusNotFound, ErrGameNotFound)
	case errors.Is(err, services.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, services.ErrAccessDenied):
		response.Error(c, http.StatusForbidden, ErrNotAuthorized)
	case errors.Is(err, game.ErrGameComplete):
		response.Error(c, http.StatusConflict, ErrAlreadyComplete)
	case errors.Is(err, services.ErrNoWordsAvailable):
		response.Error(c, http.StatusNotFound, ErrNoWords)
	case errors.Is(err, services.ErrInvalidRequest):
		response.Error(c, http.StatusBadRequest, "Invalid request for this role")
	default:
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}
