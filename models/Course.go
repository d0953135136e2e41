package models

import "time"

// Course represents a class that students belong to and words are scoped to
type Course struct {
    ID          string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    Name        string    `gorm:"type:varchar(100);unique;not null" json:"name"`
    Description string    `gorm:"type:varchar(255)" json:"description"`
    Students    []*User   `gorm:"foreignKey:CourseID" json:"students,omitempty"`
    CreatedAt   time.Time `json:"created_at"`
    UpdatedAt   time.Time `json:"updated_at"`
}
