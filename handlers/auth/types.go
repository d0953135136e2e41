package auth

// Constants for error messages
const (
	ErrInvalidCredentials  = "Invalid credentials"
	ErrTokenGenerateFailed = "Failed to generate token"
	ErrLogoutSuccess       = "Successfully logged out"
)

// LoginRequest model for the login endpoint
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse model for authentication responses
type AuthResponse struct {
	Token       string  `json:"token"`
	UserID      string  `json:"user_id"`
	Username    string  `json:"username"`
	Role        string  `json:"role"`
	CourseID    *string `json:"course_id,omitempty"`
	CourseName  string  `json:"course_name,omitempty"`
	TeacherID   *string `json:"teacher_id,omitempty"`
	TeacherName string  `json:"teacher_name,omitempty"`
}
