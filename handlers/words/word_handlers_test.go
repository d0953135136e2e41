package words

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"hangman/models"
	"hangman/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, user *models.User, method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req, err := http.NewRequest(method, target, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	if user != nil {
		c.Set("currentUser", user)
	}
	return c, w
}

func TestFilterWords(t *testing.T) {
	t.Parallel()

	words := []models.Word{
		{Word: "CAT", Category: "Animals", Difficulty: 1},
		{Word: "RHINOCEROS", Category: "Animals", Difficulty: 3},
		{Word: "DOG", Category: "animals", Difficulty: 1},
		{Word: "PARLIAMENT", Category: "Politics", Difficulty: 4},
	}

	tests := []struct {
		name       string
		category   string
		difficulty int
		expected   []string
	}{
		{
			name:     "category only, case-insensitive",
			category: "Animals",
			expected: []string{"CAT", "RHINOCEROS", "DOG"},
		},
		{
			name:       "category and difficulty",
			category:   "Animals",
			difficulty: 1,
			expected:   []string{"CAT", "DOG"},
		},
		{
			name:       "difficulty with no matches",
			category:   "Animals",
			difficulty: 5,
			expected:   []string{},
		},
		{
			name:     "unknown category",
			category: "History",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			filtered := filterWords(words, tt.category, tt.difficulty)
			got := make([]string, 0, len(filtered))
			for _, w := range filtered {
				got = append(got, w.Word)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetWordsByCategory_RejectsMalformedDifficulty(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "t1", Role: models.RoleTeacher}
	c, w := testContext(t, user, http.MethodGet, "/words/category/Animals?difficulty=hard", nil)

	GetWordsByCategory(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrInvalidRequest)
}

func TestCreateWord_TeacherNeedsCourseOfRecord(t *testing.T) {
	original := validateCourseAccess
	validateCourseAccess = func(_ *models.User, _ string) error {
		return services.ErrAccessDenied
	}
	defer func() { validateCourseAccess = original }()

	user := &models.User{ID: "t1", Role: models.RoleTeacher}
	body := []byte(`{"word":"CAT","category":"Animals","difficulty":1,"course_id":"course-b"}`)
	c, w := testContext(t, user, http.MethodPost, "/words", body)

	CreateWord(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), ErrNoPermissionManage)
}

func TestGetTeacherCategories_AccessChecks(t *testing.T) {
	t.Parallel()

	t.Run("student is rejected", func(t *testing.T) {
		t.Parallel()

		courseID := "course-a"
		user := &models.User{ID: "s1", Role: models.RoleStudent, CourseID: &courseID}
		c, w := testContext(t, user, http.MethodGet, "/words/teacher/categories", nil)

		GetTeacherCategories(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("admin must name a teacher", func(t *testing.T) {
		t.Parallel()

		user := &models.User{ID: "a1", Role: models.RoleAdmin}
		c, w := testContext(t, user, http.MethodGet, "/words/teacher/categories", nil)

		GetTeacherCategories(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRegisterRoutes_CatalogEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"))

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /api/v1/words/",
		"GET /api/v1/words/categories",
		"GET /api/v1/words/teacher/categories",
		"GET /api/v1/words/category/:category",
		"GET /api/v1/words/search",
		"POST /api/v1/words/",
		"PUT /api/v1/words/:word_id",
		"DELETE /api/v1/words/:word_id",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
}
