package models

import "time"

// User represents an account in the system: an admin, a teacher or a student.
// Students always carry their course and their assigned teacher; both stay
// nil for the other roles.
type User struct {
    ID        string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    Username  string    `gorm:"type:varchar(100);unique;not null" json:"username"`
    Password  string    `gorm:"type:varchar(255);not null" json:"-"`
    Role      Role      `gorm:"type:varchar(20);not null" json:"role"`
    CourseID  *string   `gorm:"type:uuid;column:course_id" json:"course_id"`
    Course    *Course   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
    TeacherID *string   `gorm:"type:uuid;column:teacher_id" json:"teacher_id"`
    Teacher   *User     `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}
