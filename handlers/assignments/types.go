package assignments

// Error message constants
const (
	ErrNoPermissionManage  = "You do not have permission to manage assignments"
	ErrAssignmentNotFound  = "Assignment not found"
	ErrTeacherNotFound     = "Teacher not found"
	ErrCourseNotFound      = "Course not found"
	ErrFetchingAssignments = "Error fetching assignments"
	ErrCreatingAssignment  = "Error creating assignment"
	ErrDeletingAssignment  = "Error deleting assignment"
	ErrAlreadyAssigned     = "Teacher is already assigned to this course"
	ErrInvalidRequest      = "Invalid request payload"
)

// AssignRequest is the payload for assigning a teacher to a course
type AssignRequest struct {
	TeacherID string `json:"teacher_id" binding:"required"`
	CourseID  string `json:"course_id" binding:"required"`
}
