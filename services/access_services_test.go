package services

import (
	"testing"

	"hangman/game"
	"hangman/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateGameAccess(t *testing.T) {
	t.Parallel()

	courseA := "course-a"
	courseB := "course-b"
	session := game.NewSession(models.Word{ID: "w1", Word: "CAT", CourseID: courseA})

	tests := []struct {
		name    string
		user    models.User
		wantErr error
	}{
		{
			name: "student of the word's course",
			user: models.User{ID: "s1", Role: models.RoleStudent, CourseID: &courseA},
		},
		{
			name:    "student of another course",
			user:    models.User{ID: "s2", Role: models.RoleStudent, CourseID: &courseB},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "student without a course",
			user:    models.User{ID: "s3", Role: models.RoleStudent},
			wantErr: ErrAccessDenied,
		},
		{
			name: "teacher is unrestricted at session level",
			user: models.User{ID: "t1", Role: models.RoleTeacher},
		},
		{
			name: "admin is unrestricted at session level",
			user: models.User{ID: "a1", Role: models.RoleAdmin},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateGameAccess(&tt.user, session)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
