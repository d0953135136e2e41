package users

// Error message constants
const (
	ErrNoPermissionManage = "You do not have permission to manage users"
	ErrUserNotFound       = "User not found"
	ErrFetchingUsers      = "Error fetching users"
	ErrCreatingUser       = "Error creating user"
	ErrUpdatingUser       = "Error updating user"
	ErrDeletingUser       = "Error deleting user"
	ErrHashingPassword    = "Error hashing password"
	ErrInvalidRequest     = "Invalid request payload"
	ErrInvalidRole        = "Invalid role"
	ErrStudentNeedsCourse = "Students must be assigned a course and a teacher"
)

// CreateUserRequest is the payload for creating a new user
type CreateUserRequest struct {
	Username  string  `json:"username" binding:"required"`
	Password  string  `json:"password" binding:"required,min=8"`
	Role      string  `json:"role" binding:"required"`
	CourseID  *string `json:"course_id"`
	TeacherID *string `json:"teacher_id"`
}

// UpdateUserRequest is the payload for updating an existing user.
// Omitted fields are left untouched.
type UpdateUserRequest struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	Role      string  `json:"role"`
	CourseID  *string `json:"course_id"`
	TeacherID *string `json:"teacher_id"`
}
