package courses

import (
	"net/http"

	"hangman/database"
	"hangman/middleware"
	"hangman/models"
	"hangman/utils/response"

	"github.com/gin-gonic/gin"
)

// GetCourses retrieves all courses
// @Summary Get all courses
// @Description Get all courses with their students
// @Tags Courses
// @Accept json
// @Produce json
// @Success 200 {array} models.Course
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /courses [get]
// @Security Bearer
func GetCourses(c *gin.Context) {
	if _, err := middleware.GetUserFromRequest(c); err != nil {
		return
	}

	var courses []models.Course
	if err := database.DB.Preload("Students").Find(&courses).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingCourses)
		return
	}

	c.JSON(http.StatusOK, courses)
}

// GetCourse retrieves a course by ID
// @Summary Get a course
// @Description Get a course with its students
// @Tags Courses
// @Accept json
// @Produce json
// @Param course_id path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 400 {object} response.ErrorResponse "Course not found"
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Router /courses/{course_id} [get]
// @Security Bearer
func GetCourse(c *gin.Context) {
	if _, err := middleware.GetUserFromRequest(c); err != nil {
		return
	}

	var course models.Course
	if err := database.DB.Where("id = ?", c.Param("course_id")).Preload("Students").First(&course).Error; err != nil {
		response.Error(c, http.StatusBadRequest, ErrCourseNotFound)
		return
	}

	c.JSON(http.StatusOK, course)
}

// CreateCourse creates a new course
// @Summary Create a course
// @Description Create a new course, only accessible to admins
// @Tags Courses
// @Accept json
// @Produce json
// @Param course body CreateCourseRequest true "Course to create"
// @Success 201 {object} models.Course
// @Failure 400 {object} response.ErrorResponse "Invalid request payload"
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /courses [post]
// @Security Bearer
func CreateCourse(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	if user.Role != models.RoleAdmin {
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	course := models.Course{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := database.DB.Create(&course).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCreatingCourse)
		return
	}

	c.JSON(http.StatusCreated, course)
}

// UpdateCourse updates an existing course
// @Summary Update a course
// @Description Update a course's name or description, only accessible to admins
// @Tags Courses
// @Accept json
// @Produce json
// @Param course_id path string true "Course ID"
// @Param course body UpdateCourseRequest true "Fields to update"
// @Success 200 {object} models.Course
// @Failure 400 {object} response.ErrorResponse "Course not found"
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /courses/{course_id} [put]
// @Security Bearer
func UpdateCourse(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	if user.Role != models.RoleAdmin {
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var course models.Course
	if err := database.DB.Where("id = ?", c.Param("course_id")).First(&course).Error; err != nil {
		response.Error(c, http.StatusBadRequest, ErrCourseNotFound)
		return
	}

	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.Name != "" {
		course.Name = req.Name
	}
	if req.Description != "" {
		course.Description = req.Description
	}

	if err := database.DB.Save(&course).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrUpdatingCourse)
		return
	}

	c.JSON(http.StatusOK, course)
}

// DeleteCourse removes a course
// @Summary Delete a course
// @Description Delete a course and its teacher assignments, only accessible to admins
// @Tags Courses
// @Accept json
// @Produce json
// @Param course_id path string true "Course ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.ErrorResponse "Course not found"
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /courses/{course_id} [delete]
// @Security Bearer
func DeleteCourse(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	if user.Role != models.RoleAdmin {
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var course models.Course
	if err := database.DB.Where("id = ?", c.Param("course_id")).First(&course).Error; err != nil {
		response.Error(c, http.StatusBadRequest, ErrCourseNotFound)
		return
	}

	tx := database.DB.Begin()

	if err := tx.Where("course_id = ?", course.ID).Delete(&models.TeacherCourseAssignment{}).Error; err != nil {
		tx.Rollback()
		response.Error(c, http.StatusInternalServerError, ErrDeletingCourse)
		return
	}

	if err := tx.Delete(&course).Error; err != nil {
		tx.Rollback()
		response.Error(c, http.StatusInternalServerError, ErrDeletingCourse)
		return
	}

	tx.Commit()
	response.Message(c, http.StatusOK, "Course deleted successfully")
}
