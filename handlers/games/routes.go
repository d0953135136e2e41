package games

import (
	"hangman/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to playing and reviewing games
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	game := r.Group("/game")
	game.Use(middleware.AuthMiddleware())
	{
		game.POST("/start", StartGame)
		game.POST("/guess", GuessLetter)
		game.POST("/forfeit/:gameId", ForfeitGame)
		game.GET("/current/:gameId", GetCurrentGameStatus)

		game.GET("/history", GetGameHistory)
		game.GET("/history/:studentId", GetStudentGameHistory)
		game.GET("/history/:studentId/period", GetStudentGameHistoryByPeriod)

		game.GET("/statistics", GetGameStatistics)
		game.GET("/statistics/class/:courseId", GetClassStatistics)
		game.GET("/statistics/class/:courseId/export", ExportClassStatistics)
		game.GET("/statistics/category/:category", GetCategoryStatistics)

		game.GET("/ws/:courseId", CourseWebSocket)
	}
}
