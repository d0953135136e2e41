package models

import "time"

// TeacherCourseAssignment links a teacher to a course they are responsible
// for. A teacher may be assigned to several courses and a course may have
// several teachers of record.
type TeacherCourseAssignment struct {
    ID        string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    TeacherID string    `gorm:"type:uuid;not null;column:teacher_id;uniqueIndex:idx_teacher_course" json:"teacher_id"`
    Teacher   *User     `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
    CourseID  string    `gorm:"type:uuid;not null;column:course_id;uniqueIndex:idx_teacher_course" json:"course_id"`
    Course    *Course   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
    CreatedAt time.Time `json:"created_at"`
}
