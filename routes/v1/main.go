package v1

import (
	"time"

	"hangman/handlers/assignments"
	"hangman/handlers/auth"
	"hangman/handlers/courses"
	"hangman/handlers/games"
	"hangman/handlers/users"
	"hangman/handlers/words"
	"hangman/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(100, 150) // 100 requests per second, 150 burst
	rateLimiter.StartCleanup(10*time.Minute, time.Hour)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	games.RegisterRoutes(v1)
	words.RegisterRoutes(v1)
	courses.RegisterRoutes(v1)
	users.RegisterRoutes(v1)
	assignments.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
