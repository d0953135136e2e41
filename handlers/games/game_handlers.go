package games

import (
	"net/http"

	"hangman/game"
	"hangman/middleware"
	"hangman/services"
	"hangman/utils/response"

	"github.com/gin-gonic/gin"
)

// StartGame starts a new game for the authenticated user
// @Summary Start a new game
// @Description Picks a random eligible word for the caller's role and creates a session
// @Tags Game
// @Accept json
// @Produce json
// @Param request body StartRequest false "Optional course/teacher scoping"
// @Success 200 {object} StartResponse
// @Failure 400,401,404 {object} map[string]string
// @Router /game/start [post]
// @Security Bearer
func StartGame(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req StartRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	started, err := services.StartGame(user, req.CourseID, req.TeacherID)
	if err != nil {
		handleServiceError(c, err, "Failed to start game")
		return
	}

	c.JSON(http.StatusOK, StartResponse{
		GameID:            started.GameID,
		WordLength:        started.WordLength,
		MaskedWord:        started.State.MaskedWord,
		MaxAttempts:       game.MaxAttempts,
		RemainingAttempts: started.State.RemainingAttempts,
	})
}

// GuessLetter applies a letter guess to a session
// @Summary Guess a letter
// @Description Applies a single letter to the session; repeating a letter is a no-op
// @Tags Game
// @Accept json
// @Produce json
// @Param request body GuessRequest true "Game ID and letter"
// @Success 200 {object} StateResponse
// @Failure 400,401,403,404,409 {object} map[string]string
// @Router /game/guess [post]
// @Security Bearer
func GuessLetter(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if !isValidLetter(req.Letter) {
		response.Error(c, http.StatusBadRequest, ErrInvalidLetter)
		return
	}

	state, err := services.GuessLetter(user, req.GameID, req.Letter)
	if err != nil {
		handleServiceError(c, err, "Failed to apply guess")
		return
	}
	c.JSON(http.StatusOK, buildStateResponse(state))
}

// ForfeitGame gives up an in-progress game
// @Summary Forfeit a game
// @Description Ends the session as a loss; already-finished sessions are left untouched
// @Tags Game
// @Produce json
// @Param gameId path string true "Game ID"
// @Success 200 {object} StateResponse
// @Failure 401,403,404 {object} map[string]string
// @Router /game/forfeit/{gameId} [post]
// @Security Bearer
func ForfeitGame(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	state, err := services.ForfeitGame(user, c.Param("gameId"))
	if err != nil {
		handleServiceError(c, err, "Failed to forfeit game")
		return
	}
	c.JSON(http.StatusOK, buildStateResponse(state))
}

// GetCurrentGameStatus returns the state of a live session
// @Summary Current game status
// @Description Returns the state of a session without mutating it
// @Tags Game
// @Produce json
// @Param gameId path string true "Game ID"
// @Success 200 {object} StateResponse
// @Failure 401,403,404 {object} map[string]string
// @Router /game/current/{gameId} [get]
// @Security Bearer
func GetCurrentGameStatus(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	state, err := services.CurrentGameStatus(user, c.Param("gameId"))
	if err != nil {
		handleServiceError(c, err, "Failed to get game status")
		return
	}
	c.JSON(http.StatusOK, buildStateResponse(state))
}

// isValidLetter accepts exactly one ASCII letter
func isValidLetter(letter string) bool {
	if len(letter) != 1 {
		return false
	}
	c := letter[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
