package assignments

import (
	"net/http"

	"hangman/database"
	"hangman/middleware"
	"hangman/models"
	"hangman/utils/response"

	"github.com/gin-gonic/gin"
)

// GetAssignments retrieves all teacher-course assignments
// @Summary Get all assignments
// @Description Get all teacher-course assignments, only accessible to admins
// @Tags Assignments
// @Accept json
// @Produce json
// @Success 200 {array} models.TeacherCourseAssignment
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /assignments [get]
// @Security Bearer
func GetAssignments(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	if user.Role != models.RoleAdmin {
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var assignments []models.TeacherCourseAssignment
	if err := database.DB.Preload("Teacher").Preload("Course").Find(&assignments).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingAssignments)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// GetTeacherAssignments retrieves the courses a teacher is assigned to
// @Summary Get a teacher's assignments
// @Description Get the courses a teacher is assigned to; teachers may only view their own
// @Tags Assignments
// @Accept json
// @Produce json
// @Param teacher_id path string true "Teacher ID"
// @Success 200 {array} models.TeacherCourseAssignment
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /assignments/teacher/{teacher_id} [get]
// @Security Bearer
func GetTeacherAssignments(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	teacherID := c.Param("teacher_id")
	if user.Role != models.RoleAdmin && user.ID != teacherID {
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var assignments []models.TeacherCourseAssignment
	if err := database.DB.Where("teacher_id = ?", teacherID).Preload("Course").Find(&assignments).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingAssignments)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// GetCourseAssignments retrieves the teachers assigned to a course
// @Summary Get a course's assignments
// @Description Get the teachers assigned to a course, only accessible to admins
// @Tags Assignments
// @Accept json
// @Produce json
// @Param course_id path string true "Course ID"
// @Success 200 {array} models.TeacherCourseAssignment
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /assignments/course/{course_id} [get]
// @Security Bearer
func GetCourseAssignments(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	if user.Role != models.RoleAdmin {
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var assignments []models.TeacherCourseAssignment
	if err := database.DB.Where("course_id = ?", c.Param("course_id")).Preload("Teacher").Find(&assignments).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingAssignments)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// AssignTeacher assigns a teacher to a course
// @Summary Assign a teacher to a course
// @Description Create a teacher-course assignment, only accessible to admins
// @Tags Assignments
// @Accept json
// @Produce json
// @Param assignment body AssignRequest true "Assignment to create"
// @Success 201 {object} models.TeacherCourseAssignment
// @Failure 400 {object} response.ErrorResponse "Invalid request payload"
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 409 {object} response.ErrorResponse "Teacher already assigned"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /assignments [post]
// @Security Bearer
func AssignTeacher(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	if user.Role != models.RoleAdmin {
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var teacher models.User
	if err := database.DB.Where("id = ? AND role = ?", req.TeacherID, models.RoleTeacher).First(&teacher).Error; err != nil {
		response.Error(c, http.StatusBadRequest, ErrTeacherNotFound)
		return
	}

	var course models.Course
	if err := database.DB.Where("id = ?", req.CourseID).First(&course).Error; err != nil {
		response.Error(c, http.StatusBadRequest, ErrCourseNotFound)
		return
	}

	var count int64
	database.DB.Model(&models.TeacherCourseAssignment{}).
		Where("teacher_id = ? AND course_id = ?", req.TeacherID, req.CourseID).
		Count(&count)
	if count > 0 {
		response.Error(c, http.StatusConflict, ErrAlreadyAssigned)
		return
	}

	assignment := models.TeacherCourseAssignment{
		TeacherID: req.TeacherID,
		CourseID:  req.CourseID,
	}

	if err := database.DB.Create(&assignment).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCreatingAssignment)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// UnassignTeacher removes a teacher-course assignment
// @Summary Unassign a teacher from a course
// @Description Delete a teacher-course assignment, only accessible to admins
// @Tags Assignments
// @Accept json
// @Produce json
// @Param assignment_id path string true "Assignment ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.ErrorResponse "Assignment not found"
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /assignments/{assignment_id} [delete]
// @Security Bearer
func UnassignTeacher(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	if user.Role != models.RoleAdmin {
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var assignment models.TeacherCourseAssignment
	if err := database.DB.Where("id = ?", c.Param("assignment_id")).First(&assignment).Error; err != nil {
		response.Error(c, http.StatusBadRequest, ErrAssignmentNotFound)
		return
	}

	if err := database.DB.Delete(&assignment).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDeletingAssignment)
		return
	}

	response.Message(c, http.StatusOK, "Assignment deleted successfully")
}
