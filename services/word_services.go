package services

import (
	"math/rand"
	"strings"

	"hangman/database"
	"hangman/models"
)

// wordSelector returns the eligible words for one role. Adding a role means
// adding an entry here rather than growing an if-chain.
type wordSelector func(user *models.User, courseID, teacherID string) ([]models.Word, error)

var wordSelectors = map[models.Role]wordSelector{
	models.RoleAdmin: func(_ *models.User, _, teacherID string) ([]models.Word, error) {
		if teacherID == "" {
			return nil, ErrInvalidRequest
		}
		return WordsForTeacher(teacherID)
	},
	models.RoleTeacher: func(_ *models.User, courseID, _ string) ([]models.Word, error) {
		if courseID == "" {
			return nil, ErrInvalidRequest
		}
		return WordsForCourse(courseID)
	},
	models.RoleStudent: func(user *models.User, _, _ string) ([]models.Word, error) {
		if user.CourseID == nil || user.TeacherID == nil {
			return nil, ErrInvalidRequest
		}
		return WordsForCourseAndTeacher(*user.CourseID, *user.TeacherID)
	},
}

// SelectRandomWord picks one word uniformly at random from the set the user
// is allowed to play: admins draw from a teacher's words, teachers from a
// course's words, students from the words of their own course and teacher.
func SelectRandomWord(user *models.User, courseID, teacherID string) (models.Word, error) {
	selector, ok := wordSelectors[user.Role]
	if !ok {
		return models.Word{}, ErrInvalidRequest
	}

	words, err := selector(user, courseID, teacherID)
	if err != nil {
		return models.Word{}, err
	}
	if len(words) == 0 {
		return models.Word{}, ErrNoWordsAvailable
	}
	return words[rand.Intn(len(words))], nil
}

// WordsForTeacher returns every word owned by the given teacher
func WordsForTeacher(teacherID string) ([]models.Word, error) {
	var words []models.Word
	err := database.DB.Preload("Course").Where("teacher_id = ?", teacherID).Find(&words).Error
	return words, err
}

// WordsForCourse returns every word attached to the given course
func WordsForCourse(courseID string) ([]models.Word, error) {
	var words []models.Word
	err := database.DB.Preload("Course").Where("course_id = ?", courseID).Find(&words).Error
	return words, err
}

// WordsForCourseAndTeacher returns the words of one course owned by one teacher
func WordsForCourseAndTeacher(courseID, teacherID string) ([]models.Word, error) {
	var words []models.Word
	err := database.DB.Preload("Course").
		Where("course_id = ? AND teacher_id = ?", courseID, teacherID).
		Find(&words).Error
	return words, err
}

// CreateWord stores a new catalog word, canonicalizing the text to uppercase
func CreateWord(text, category string, difficulty int, courseID, teacherID string) (models.Word, error) {
	word := models.Word{
		Word:       strings.ToUpper(text),
		Category:   category,
		Difficulty: difficulty,
		CourseID:   courseID,
		TeacherID:  teacherID,
	}
	if err := database.DB.Create(&word).Error; err != nil {
		return models.Word{}, err
	}
	return word, nil
}

// SearchWords filters the catalog by optional keyword, category and difficulty
func SearchWords(keyword, category string, difficulty int) ([]models.Word, error) {
	query := database.DB.Preload("Course").Preload("Teacher")
	if keyword != "" {
		query = query.Where("word LIKE ?", "%"+strings.ToUpper(keyword)+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if difficulty > 0 {
		query = query.Where("difficulty = ?", difficulty)
	}

	var words []models.Word
	err := query.Find(&words).Error
	return words, err
}

// WordCategorySummary aggregates one category of the word catalog
type WordCategorySummary struct {
	Category          string  `json:"category"`
	WordCount         int     `json:"word_count"`
	AverageDifficulty float64 `json:"average_difficulty"`
}

// CategorySummaries groups a word list by category, counting words and
// averaging difficulty per group. Categories keep first-encountered order.
func CategorySummaries(words []models.Word) []WordCategorySummary {
	var order []string
	grouped := make(map[string][]models.Word)
	for _, w := range words {
		if _, seen := grouped[w.Category]; !seen {
			order = append(order, w.Category)
		}
		grouped[w.Category] = append(grouped[w.Category], w)
	}

	summaries := make([]WordCategorySummary, 0, len(order))
	for _, category := range order {
		group := grouped[category]
		total := 0
		for _, w := range group {
			total += w.Difficulty
		}
		summaries = append(summaries, WordCategorySummary{
			Category:          category,
			WordCount:         len(group),
			AverageDifficulty: float64(total) / float64(len(group)),
		})
	}
	return summaries
}
