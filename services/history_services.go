package services

import (
	"strings"
	"time"

	"hangman/database"
	"hangman/game"
	"hangman/models"
)

// historyScope returns the history slice one role is allowed to see: admins
// everything, teachers their students' games, students their own games.
type historyScope func(user *models.User) ([]models.GameHistory, error)

var historyScopes = map[models.Role]historyScope{
	models.RoleAdmin: func(_ *models.User) ([]models.GameHistory, error) {
		return FindAllHistories()
	},
	models.RoleTeacher: func(user *models.User) ([]models.GameHistory, error) {
		return FindByTeacherStudents(user.ID)
	},
	models.RoleStudent: func(user *models.User) ([]models.GameHistory, error) {
		return FindByStudent(user.ID)
	},
}

// HistoriesForUser returns the game records visible to the given user
func HistoriesForUser(user *models.User) ([]models.GameHistory, error) {
	scope, ok := historyScopes[user.Role]
	if !ok {
		return nil, ErrInvalidRequest
	}
	return scope(user)
}

// SaveGameHistory appends the durable record for one terminal session.
// Wrong letters are joined with commas in the order they were guessed.
func SaveGameHistory(student *models.User, word models.Word, state game.State) error {
	history := models.GameHistory{
		StudentID:    student.ID,
		WordID:       word.ID,
		IsSuccess:    state.Success,
		Attempts:     len(state.WrongLetters),
		WrongLetters: strings.Join(state.WrongLetters, ","),
	}
	return database.DB.Create(&history).Error
}

// FindAllHistories returns every game record in the store
func FindAllHistories() ([]models.GameHistory, error) {
	var histories []models.GameHistory
	err := database.DB.Preload("Word").Preload("Student").Find(&histories).Error
	return histories, err
}

// FindByStudent returns all game records of one student
func FindByStudent(studentID string) ([]models.GameHistory, error) {
	var histories []models.GameHistory
	err := database.DB.Preload("Word").Preload("Student").
		Where("student_id = ?", studentID).
		Find(&histories).Error
	return histories, err
}

// FindByTeacherStudents returns the game records of every student assigned
// to the given teacher
func FindByTeacherStudents(teacherID string) ([]models.GameHistory, error) {
	var histories []models.GameHistory
	err := database.DB.Preload("Word").Preload("Student").
		Joins("JOIN users ON users.id = game_histories.student_id").
		Where("users.teacher_id = ?", teacherID).
		Find(&histories).Error
	return histories, err
}

// FindByCourse returns the game records of every student in the given course
func FindByCourse(courseID string) ([]models.GameHistory, error) {
	var histories []models.GameHistory
	err := database.DB.Preload("Word").Preload("Student").
		Joins("JOIN users ON users.id = game_histories.student_id").
		Where("users.course_id = ?", courseID).
		Find(&histories).Error
	return histories, err
}

// FindByStudentAndDateRange returns one student's records inside [start, end].
// The end date is inclusive: records played any time that day are included.
func FindByStudentAndDateRange(studentID string, start, end time.Time) ([]models.GameHistory, error) {
	var histories []models.GameHistory
	err := database.DB.Preload("Word").Preload("Student").
		Where("student_id = ? AND played_at >= ? AND played_at < ?",
			studentID, start, end.AddDate(0, 0, 1)).
		Find(&histories).Error
	return histories, err
}

// ClassAverageForTeacher computes the average success rate across all
// students of the courses assigned to the given teacher. Returns nil when
// the teacher has no assignment rows to average over.
func ClassAverageForTeacher(teacherID string) (*float64, error) {
	var avg *float64
	err := database.DB.Model(&models.GameHistory{}).
		Select("AVG(CASE WHEN game_histories.is_success THEN 1.0 ELSE 0.0 END)").
		Joins("JOIN users ON users.id = game_histories.student_id").
		Joins("JOIN teacher_course_assignments tca ON tca.course_id = users.course_id").
		Where("tca.teacher_id = ?", teacherID).
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	return avg, nil
}
