package auth

import (
	"net/http"
	"time"

	"hangman/database"
	"hangman/middleware"
	"hangman/models"
	"hangman/utils"
	"hangman/utils/response"

	"github.com/gin-gonic/gin"
)

// Login authenticates a user with username and password
// @Summary Login
// @Description Authenticate with username and password, returns a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400,401 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := database.DB.Preload("Course").Preload("Teacher").
		Where("username = ?", req.Username).First(&user).Error; err != nil {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	token, err := middleware.GenerateToken(user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	setCookieToken(c, token)
	c.JSON(http.StatusOK, buildAuthResponse(&user, token))
}

// CheckAuth returns the authenticated user's profile
// @Summary Check authentication
// @Description Returns the profile associated with the presented token
// @Tags Auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
// @Security Bearer
func CheckAuth(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}
	c.JSON(http.StatusOK, buildAuthResponse(user, ""))
}

// Logout clears the auth cookie and the cached user row
// @Summary Logout
// @Description Invalidate the cached session and clear the auth cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
// @Security Bearer
func Logout(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	middleware.InvalidateUserCache(c.Request.Context(), user.ID)
	c.SetCookie("auth_token", "", -1, "/", "", true, true)
	response.Message(c, http.StatusOK, ErrLogoutSuccess)
}

// setCookieToken sets the authentication token as a secure HTTP-only cookie
func setCookieToken(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",
		token,
		int(middleware.TokenTTL/time.Second),
		"/",
		"",
		true,
		true,
	)
}

func buildAuthResponse(user *models.User, token string) AuthResponse {
	resp := AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
		CourseID:  user.CourseID,
		TeacherID: user.TeacherID,
	}
	if user.Course != nil {
		resp.CourseName = user.Course.Name
	}
	if user.Teacher != nil {
		resp.TeacherName = user.Teacher.Username
	}
	return resp
}
