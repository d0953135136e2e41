package words

import (
	"hangman/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the word catalog
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	words := r.Group("/words")
	words.Use(middleware.AuthMiddleware())
	{
		words.GET("/", GetWords)
		words.GET("/categories", GetWordCategories)
		words.GET("/teacher/categories", GetTeacherCategories)
		words.GET("/category/:category", GetWordsByCategory)
		words.GET("/search", SearchWords)
		words.POST("/", CreateWord)
		words.PUT("/:word_id", UpdateWord)
		words.DELETE("/:word_id", DeleteWord)
	}
}
