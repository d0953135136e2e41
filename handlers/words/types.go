package words

// Error message constants
const (
	ErrNoPermissionManage = "You do not have permission to manage words"
	ErrNoPermissionView   = "You do not have permission to view these words"
	ErrWordNotFound       = "Word not found"
	ErrFetchingWords      = "Error fetching words"
	ErrCreatingWord       = "Error creating word"
	ErrUpdatingWord       = "Error updating word"
	ErrDeletingWord       = "Error deleting word"
	ErrInvalidRequest     = "Invalid request payload"
)

// CreateWordRequest is the payload for creating a new word
type CreateWordRequest struct {
	Word       string `json:"word" binding:"required"`
	Category   string `json:"category" binding:"required"`
	Difficulty int    `json:"difficulty" binding:"required,min=1,max=5"`
	CourseID   string `json:"course_id" binding:"required"`
}

// UpdateWordRequest is the payload for updating an existing word.
// Zero-valued fields are left untouched.
type UpdateWordRequest struct {
	Word       string `json:"word"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
	CourseID   string `json:"course_id"`
}
