package users

import (
	"hangman/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to user management
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/", GetUsers)
		users.GET("/:user_id", GetUser)
		users.POST("/", CreateUser)
		users.PUT("/:user_id", UpdateUser)
		users.DELETE("/:user_id", DeleteUser)
	}
}
