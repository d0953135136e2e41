package games

import (
	"fmt"
	"net/http"

	"hangman/middleware"
	"hangman/services"

	"github.com/gin-gonic/gin"
)

// GetGameStatistics returns the statistics snapshot for the caller
// @Summary Own game statistics
// @Description Aggregates the records the caller may see into summary metrics
// @Tags Game
// @Produce json
// @Success 200 {object} services.GameStatistics
// @Failure 401,500 {object} map[string]string
// @Router /game/statistics [get]
// @Security Bearer
func GetGameStatistics(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	stats, err := services.GameStatisticsForUser(user)
	if err != nil {
		handleServiceError(c, err, ErrFailedToGetStats)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetClassStatistics returns one course's statistics snapshot
// @Summary Class statistics
// @Description Teachers must be a teacher of record for the course
// @Tags Game
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} services.GameStatistics
// @Failure 401,403 {object} map[string]string
// @Router /game/statistics/class/{courseId} [get]
// @Security Bearer
func GetClassStatistics(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	stats, err := services.ClassStatistics(user, c.Param("courseId"))
	if err != nil {
		handleServiceError(c, err, ErrFailedToGetStats)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetCategoryStatistics returns statistics over a single word category
// @Summary Category statistics
// @Description Same scoping as own statistics, filtered by word category
// @Tags Game
// @Produce json
// @Param category path string true "Word category"
// @Success 200 {object} services.GameStatistics
// @Failure 401,500 {object} map[string]string
// @Router /game/statistics/category/{category} [get]
// @Security Bearer
func GetCategoryStatistics(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	stats, err := services.CategoryStatistics(user, c.Param("category"))
	if err != nil {
		handleServiceError(c, err, ErrFailedToGetStats)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ExportClassStatistics downloads one course's report as an xlsx workbook
// @Summary Export class report
// @Description Streams an xlsx with the course's games and a summary sheet
// @Tags Game
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param courseId path string true "Course ID"
// @Success 200 {file} binary
// @Failure 401,403,500 {object} map[string]string
// @Router /game/statistics/class/{courseId}/export [get]
// @Security Bearer
func ExportClassStatistics(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	courseID := c.Param("courseId")
	report, err := services.BuildClassReport(user, courseID)
	if err != nil {
		handleServiceError(c, err, "Failed to build class report")
		return
	}
	defer report.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=class-report-%s.xlsx", courseID))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := report.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
