package assignments

import (
	"hangman/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to teacher-course assignments
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	assignments := r.Group("/assignments")
	assignments.Use(middleware.AuthMiddleware())
	{
		assignments.GET("/", GetAssignments)
		assignments.GET("/teacher/:teacher_id", GetTeacherAssignments)
		assignments.GET("/course/:course_id", GetCourseAssignments)
		assignments.POST("/", AssignTeacher)
		assignments.DELETE("/:assignment_id", UnassignTeacher)
	}
}
