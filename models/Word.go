package models

import "time"

// Word represents a word of the catalog that students can be asked to guess.
// The text is stored uppercase; category is a free-text tag and difficulty
// goes from 1 (easiest) to 5 (hardest).
type Word struct {
    ID         string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    Word       string    `gorm:"type:varchar(100);not null" json:"word"`
    Category   string    `gorm:"type:varchar(100)" json:"category"`
    Difficulty int       `gorm:"type:integer;not null" json:"difficulty"`
    CourseID   string    `gorm:"type:uuid;not null;column:course_id" json:"course_id"`
    Course     *Course   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
    TeacherID  string    `gorm:"type:uuid;not null;column:teacher_id" json:"teacher_id"`
    Teacher    *User     `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
    CreatedAt  time.Time `json:"created_at"`
    UpdatedAt  time.Time `json:"updated_at"`
}
