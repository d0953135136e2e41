package main

import (
	"hangman/config"
	"hangman/database"
	_ "hangman/docs"
	"hangman/middleware"
	v1 "hangman/routes/v1"
	"hangman/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Hangman API
// @version 1.0
// @description REST API for the hangman learning platform: game sessions, word catalogs, courses and statistics for students, teachers and admins.

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

// @BasePath /api/v1
func main() {
	config.LoadConfig()

	database.InitDB()
	database.InitRedis()

	services.InitSessionStore(config.SessionIdleTimeout, config.SessionSweepInterval)

	// Feed the runtime gauges exposed on /metrics
	middleware.UpdateSystemMetrics()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1.Register(r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Infof("Starting server on port %s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
