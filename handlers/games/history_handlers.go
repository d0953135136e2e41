package games

import (
	"net/http"
	"time"

	"hangman/middleware"
	"hangman/services"
	"hangman/utils/response"

	"github.com/gin-gonic/gin"
)

// GetGameHistory lists the play history visible to the caller
// @Summary Own game history
// @Description Admins see everything, teachers their students' games, students their own
// @Tags Game
// @Produce json
// @Success 200 {array} HistoryResponse
// @Failure 401,500 {object} map[string]string
// @Router /game/history [get]
// @Security Bearer
func GetGameHistory(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	histories, err := services.HistoriesForUser(user)
	if err != nil {
		handleServiceError(c, err, ErrFailedToGetHistory)
		return
	}
	c.JSON(http.StatusOK, buildHistoryResponses(histories))
}

// GetStudentGameHistory lists one student's history for teachers and admins
// @Summary Student game history
// @Description Teachers may only view students assigned to them
// @Tags Game
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {array} HistoryResponse
// @Failure 401,403,404 {object} map[string]string
// @Router /game/history/{studentId} [get]
// @Security Bearer
func GetStudentGameHistory(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	student, err := services.ValidateStudentAccess(user, c.Param("studentId"))
	if err != nil {
		handleServiceError(c, err, ErrFailedToGetHistory)
		return
	}

	histories, err := services.FindByStudent(student.ID)
	if err != nil {
		handleServiceError(c, err, ErrFailedToGetHistory)
		return
	}
	c.JSON(http.StatusOK, buildHistoryResponses(histories))
}

// GetStudentGameHistoryByPeriod lists one student's history inside a date range
// @Summary Student game history for a period
// @Description Date range is inclusive on both ends, dates formatted YYYY-MM-DD
// @Tags Game
// @Produce json
// @Param studentId path string true "Student ID"
// @Param startDate query string true "Start date"
// @Param endDate query string true "End date"
// @Success 200 {array} HistoryResponse
// @Failure 400,401,403,404 {object} map[string]string
// @Router /game/history/{studentId}/period [get]
// @Security Bearer
func GetStudentGameHistoryByPeriod(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	start, errStart := time.Parse("2006-01-02", c.Query("startDate"))
	end, errEnd := time.Parse("2006-01-02", c.Query("endDate"))
	if errStart != nil || errEnd != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidDate)
		return
	}

	student, err := services.ValidateStudentAccess(user, c.Param("studentId"))
	if err != nil {
		handleServiceError(c, err, ErrFailedToGetHistory)
		return
	}

	histories, err := services.FindByStudentAndDateRange(student.ID, start, end)
	if err != nil {
		handleServiceError(c, err, ErrFailedToGetHistory)
		return
	}
	c.JSON(http.StatusOK, buildHistoryResponses(histories))
}
