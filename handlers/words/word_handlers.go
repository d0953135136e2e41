package words

import (
	"net/http"
	"strconv"
	"strings"

	"hangman/database"
	"hangman/middleware"
	"hangman/models"
	"hangman/services"
	"hangman/utils/response"

	"github.com/gin-gonic/gin"
)

// GetWords retrieves the word catalog visible to the current user.
// Admins see everything, teachers see their own words and students see
// the words of their course.
// @Summary Get words
// @Description Get the word catalog scoped to the current user's role
// @Tags Words
// @Accept json
// @Produce json
// @Success 200 {array} models.Word
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /words [get]
// @Security Bearer
func GetWords(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	words, err := wordsForUser(user)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingWords)
		return
	}

	c.JSON(http.StatusOK, words)
}

// GetWordCategories retrieves the category summaries of the catalog
// visible to the current user
// @Summary Get word categories
// @Description Get per-category counts and average difficulty for the visible catalog
// @Tags Words
// @Accept json
// @Produce json
// @Success 200 {array} services.WordCategorySummary
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /words/categories [get]
// @Security Bearer
func GetWordCategories(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	words, err := wordsForUser(user)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingWords)
		return
	}

	c.JSON(http.StatusOK, services.CategorySummaries(words))
}

// GetWordsByCategory retrieves the visible words of a single category,
// optionally narrowed to one difficulty
// @Summary Get words by category
// @Description Get the visible words belonging to the given category
// @Tags Words
// @Accept json
// @Produce json
// @Param category path string true "Category name"
// @Param difficulty query int false "Exact difficulty (1-5)"
// @Success 200 {array} models.Word
// @Failure 400 {object} response.ErrorResponse "Invalid difficulty"
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /words/category/{category} [get]
// @Security Bearer
func GetWordsByCategory(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	difficulty := 0
	if raw := c.Query("difficulty"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
			return
		}
		difficulty = parsed
	}

	words, err := wordsForUser(user)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingWords)
		return
	}

	c.JSON(http.StatusOK, filterWords(words, c.Param("category"), difficulty))
}

// GetTeacherCategories retrieves the category summaries of one teacher's
// catalog: teachers their own, admins any teacher via the query parameter
// @Summary Get a teacher's word categories
// @Description Get per-category counts and average difficulty for one teacher's words
// @Tags Words
// @Accept json
// @Produce json
// @Param teacher_id query string false "Teacher ID (admins only, defaults to the caller)"
// @Success 200 {array} services.WordCategorySummary
// @Failure 400 {object} response.ErrorResponse "Missing teacher ID"
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /words/teacher/categories [get]
// @Security Bearer
func GetTeacherCategories(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	teacherID := user.ID
	switch user.Role {
	case models.RoleTeacher:
	case models.RoleAdmin:
		teacherID = c.Query("teacher_id")
		if teacherID == "" {
			response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
			return
		}
	default:
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionView)
		return
	}

	words, err := services.WordsForTeacher(teacherID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingWords)
		return
	}

	c.JSON(http.StatusOK, services.CategorySummaries(words))
}

// SearchWords searches the word catalog by keyword, category and difficulty
// @Summary Search words
// @Description Search the word catalog; only teachers and admins may search
// @Tags Words
// @Accept json
// @Produce json
// @Param keyword query string false "Substring of the word text"
// @Param category query string false "Exact category"
// @Param difficulty query int false "Exact difficulty (1-5)"
// @Success 200 {array} models.Word
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /words/search [get]
// @Security Bearer
func SearchWords(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	if user.Role == models.RoleStudent {
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionView)
		return
	}

	difficulty := 0
	if raw := c.Query("difficulty"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
			return
		}
		difficulty = parsed
	}

	words, err := services.SearchWords(c.Query("keyword"), c.Query("category"), difficulty)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingWords)
		return
	}

	c.JSON(http.StatusOK, words)
}

// validateCourseAccess is an indirection over the service check so handler
// tests can stub the database-backed lookup
var validateCourseAccess = services.ValidateCourseAccess

// CreateWord adds a new word to the catalog
// @Summary Create a word
// @Description Create a new word; teachers may only add words to courses they are a teacher of record for
// @Tags Words
// @Accept json
// @Produce json
// @Param word body CreateWordRequest true "Word to create"
// @Success 201 {object} models.Word
// @Failure 400 {object} response.ErrorResponse "Invalid request payload"
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /words [post]
// @Security Bearer
func CreateWord(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	if user.Role == models.RoleStudent {
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var req CreateWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if user.Role == models.RoleTeacher {
		if err := validateCourseAccess(user, req.CourseID); err != nil {
			response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
			return
		}
	}

	word, err := services.CreateWord(req.Word, req.Category, req.Difficulty, req.CourseID, user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCreatingWord)
		return
	}

	c.JSON(http.StatusCreated, word)
}

// UpdateWord updates an existing word of the catalog
// @Summary Update a word
// @Description Update a word; teachers may only update their own words
// @Tags Words
// @Accept json
// @Produce json
// @Param word_id path string true "Word ID"
// @Param word body UpdateWordRequest true "Fields to update"
// @Success 200 {object} models.Word
// @Failure 400 {object} response.ErrorResponse "Word not found"
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /words/{word_id} [put]
// @Security Bearer
func UpdateWord(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	word, ok := manageableWord(c, user)
	if !ok {
		return
	}

	var req UpdateWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.Word != "" {
		word.Word = strings.ToUpper(req.Word)
	}
	if req.Category != "" {
		word.Category = req.Category
	}
	if req.Difficulty != 0 {
		word.Difficulty = req.Difficulty
	}
	if req.CourseID != "" {
		word.CourseID = req.CourseID
	}

	if err := database.DB.Save(&word).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrUpdatingWord)
		return
	}

	c.JSON(http.StatusOK, word)
}

// DeleteWord removes a word from the catalog
// @Summary Delete a word
// @Description Delete a word; teachers may only delete their own words
// @Tags Words
// @Accept json
// @Produce json
// @Param word_id path string true "Word ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.ErrorResponse "Word not found"
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /words/{word_id} [delete]
// @Security Bearer
func DeleteWord(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	word, ok := manageableWord(c, user)
	if !ok {
		return
	}

	if err := database.DB.Delete(&word).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDeletingWord)
		return
	}

	response.Message(c, http.StatusOK, "Word deleted successfully")
}

// filterWords narrows a word list to one category (case-insensitive) and,
// when difficulty is positive, to that exact difficulty
func filterWords(words []models.Word, category string, difficulty int) []models.Word {
	filtered := make([]models.Word, 0, len(words))
	for _, w := range words {
		if !strings.EqualFold(w.Category, category) {
			continue
		}
		if difficulty > 0 && w.Difficulty != difficulty {
			continue
		}
		filtered = append(filtered, w)
	}
	return filtered
}

// wordsForUser scopes the catalog to what the user's role is allowed to see
func wordsForUser(user *models.User) ([]models.Word, error) {
	switch user.Role {
	case models.RoleAdmin:
		var words []models.Word
		if err := database.DB.Find(&words).Error; err != nil {
			return nil, err
		}
		return words, nil
	case models.RoleTeacher:
		return services.WordsForTeacher(user.ID)
	default:
		if user.CourseID == nil {
			return []models.Word{}, nil
		}
		return services.WordsForCourse(*user.CourseID)
	}
}

// manageableWord loads the word from the path parameter and checks that the
// user may modify it. Writes the error response itself when it returns false.
func manageableWord(c *gin.Context, user *models.User) (models.Word, bool) {
	var word models.Word

	if user.Role == models.RoleStudent {
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return word, false
	}

	if err := database.DB.Where("id = ?", c.Param("word_id")).First(&word).Error; err != nil {
		response.Error(c, http.StatusBadRequest, ErrWordNotFound)
		return word, false
	}

	if user.Role == models.RoleTeacher && word.TeacherID != user.ID {
		response.Error(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return word, false
	}

	return word, true
}
