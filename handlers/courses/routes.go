package courses

import (
	"hangman/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to courses
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	courses := r.Group("/courses")
	courses.Use(middleware.AuthMiddleware())
	{
		courses.GET("/", GetCourses)
		courses.GET("/:course_id", GetCourse)
		courses.POST("/", CreateCourse)
		courses.PUT("/:course_id", UpdateCourse)
		courses.DELETE("/:course_id", DeleteCourse)
	}
}
