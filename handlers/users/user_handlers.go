package users

import (
	"net/http"

	"hangman/database"
	"hangman/middleware"
	"hangman/models"
	"hangman/utils"
	"hangman/utils/response"

	"github.com/gin-gonic/gin"
)

// GetUsers retrieves the users visible to the current user.
// Admins see everyone, teachers see their own students.
// @Summary Get users
// @Description Get the users visible to the current user's role
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /users [get]
// @Security Bearer
func GetUsers(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var users []models.User
	query := database.DB.Preload("Course")

	switch user.Role {
	case models.RoleAdmin:
	case models.RoleTeacher:
		query = query.Where("teacher_id = ?", user.ID)
	default:
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	if err := query.Find(&users).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingUsers)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser retrieves a user by ID
// @Summary Get a user
// @Description Get a user; teachers may only view their own students
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} response.ErrorResponse "User not found"
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Router /users/{user_id} [get]
// @Security Bearer
func GetUser(c *gin.Context) {
	actor, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var user models.User
	if err := database.DB.Where("id = ?", c.Param("user_id")).Preload("Course").First(&user).Error; err != nil {
		response.Error(c, http.StatusBadRequest, ErrUserNotFound)
		return
	}

	if !canManageUser(actor, &user) && actor.ID != user.ID {
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser creates a new user
// @Summary Create a user
// @Description Create a new user; admins may create any role, teachers may create students in their classes
// @Tags Users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User to create"
// @Success 201 {object} models.User
// @Failure 400 {object} response.ErrorResponse "Invalid request payload"
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /users [post]
// @Security Bearer
func CreateUser(c *gin.Context) {
	actor, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		response.Error(c, http.StatusBadRequest, ErrInvalidRole)
		return
	}

	switch actor.Role {
	case models.RoleAdmin:
	case models.RoleTeacher:
		if role != models.RoleStudent {
			response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
			return
		}
		// Teachers always own the students they create
		req.TeacherID = &actor.ID
	default:
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	if role == models.RoleStudent && (req.CourseID == nil || req.TeacherID == nil) {
		response.Error(c, http.StatusBadRequest, ErrStudentNeedsCourse)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrHashingPassword)
		return
	}

	user := models.User{
		Username:  req.Username,
		Password:  hashed,
		Role:      role,
		CourseID:  req.CourseID,
		TeacherID: req.TeacherID,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCreatingUser)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser updates an existing user
// @Summary Update a user
// @Description Update a user; teachers may only update their own students
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param user body UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} response.ErrorResponse "User not found"
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /users/{user_id} [put]
// @Security Bearer
func UpdateUser(c *gin.Context) {
	actor, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var user models.User
	if err := database.DB.Where("id = ?", c.Param("user_id")).First(&user).Error; err != nil {
		response.Error(c, http.StatusBadRequest, ErrUserNotFound)
		return
	}

	if !canManageUser(actor, &user) {
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, ErrHashingPassword)
			return
		}
		user.Password = hashed
	}
	if req.Role != "" && actor.Role == models.RoleAdmin {
		role := models.Role(req.Role)
		if !role.Valid() {
			response.Error(c, http.StatusBadRequest, ErrInvalidRole)
			return
		}
		user.Role = role
	}
	if req.CourseID != nil {
		user.CourseID = req.CourseID
	}
	if req.TeacherID != nil && actor.Role == models.RoleAdmin {
		user.TeacherID = req.TeacherID
	}

	if err := database.DB.Save(&user).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrUpdatingUser)
		return
	}

	// The cached copy is stale after any change
	middleware.InvalidateUserCache(c.Request.Context(), user.ID)

	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user
// @Summary Delete a user
// @Description Delete a user and their game history; teachers may only delete their own students
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.ErrorResponse "User not found"
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /users/{user_id} [delete]
// @Security Bearer
func DeleteUser(c *gin.Context) {
	actor, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var user models.User
	if err := database.DB.Where("id = ?", c.Param("user_id")).First(&user).Error; err != nil {
		response.Error(c, http.StatusBadRequest, ErrUserNotFound)
		return
	}

	if !canManageUser(actor, &user) {
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	tx := database.DB.Begin()

	if err := tx.Where("student_id = ?", user.ID).Delete(&models.GameHistory{}).Error; err != nil {
		tx.Rollback()
		response.Error(c, http.StatusInternalServerError, ErrDeletingUser)
		return
	}

	if err := tx.Delete(&user).Error; err != nil {
		tx.Rollback()
		response.Error(c, http.StatusInternalServerError, ErrDeletingUser)
		return
	}

	tx.Commit()
	middleware.InvalidateUserCache(c.Request.Context(), user.ID)

	response.Message(c, http.StatusOK, "User deleted successfully")
}

// canManageUser reports whether the actor is allowed to modify the target
func canManageUser(actor, target *models.User) bool {
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleTeacher:
		return target.Role == models.RoleStudent &&
			target.TeacherID != nil && *target.TeacherID == actor.ID
	default:
		return false
	}
}
