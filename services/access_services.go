package services

import (
	"errors"

	"hangman/database"
	"hangman/game"
	"hangman/models"

	"gorm.io/gorm"
)

// ValidateGameAccess checks that the user may act on the given session.
// Students may only touch sessions playing a word of their own course;
// teachers and admins are unrestricted at session level, since the
// course-scoped restriction for them applies to history and statistics
// reads instead.
func ValidateGameAccess(user *models.User, session *game.Session) error {
	if user.Role != models.RoleStudent {
		return nil
	}
	if user.CourseID == nil || session.Word().CourseID != *user.CourseID {
		return ErrAccessDenied
	}
	return nil
}

// ValidateStudentAccess checks that the actor may view the given student's
// history: admins always, teachers only for their own students.
func ValidateStudentAccess(actor *models.User, studentID string) (*models.User, error) {
	if actor.Role != models.RoleTeacher && actor.Role != models.RoleAdmin {
		return nil, ErrAccessDenied
	}

	var student models.User
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if actor.Role == models.RoleTeacher {
		if student.TeacherID == nil || *student.TeacherID != actor.ID {
			return nil, ErrAccessDenied
		}
	}
	return &student, nil
}

// ValidateCourseAccess checks that the actor may view the given course's
// statistics: admins always, teachers only when they are a teacher of
// record for that course.
func ValidateCourseAccess(actor *models.User, courseID string) error {
	if actor.Role != models.RoleTeacher && actor.Role != models.RoleAdmin {
		return ErrAccessDenied
	}

	if actor.Role == models.RoleTeacher {
		var count int64
		err := database.DB.Model(&models.TeacherCourseAssignment{}).
			Where("teacher_id = ? AND course_id = ?", actor.ID, courseID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrAccessDenied
		}
	}
	return nil
}
