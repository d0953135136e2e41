package courses

// Error message constants
const (
	ErrNoPermissionManage = "You do not have permission to manage courses"
	ErrCourseNotFound     = "Course not found"
	ErrFetchingCourses    = "Error fetching courses"
	ErrCreatingCourse     = "Error creating course"
	ErrUpdatingCourse     = "Error updating course"
	ErrDeletingCourse     = "Error deleting course"
	ErrInvalidRequest     = "Invalid request payload"
)

// CreateCourseRequest is the payload for creating a new course
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCourseRequest is the payload for updating an existing course
type UpdateCourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
