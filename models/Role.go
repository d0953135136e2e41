package models

// Role determines what a user is allowed to do in the system
type Role string

const (
	// RoleAdmin can manage everything: users, courses, words and all histories
	RoleAdmin Role = "ADMIN"
	// RoleTeacher manages their own courses, words and students
	RoleTeacher Role = "TEACHER"
	// RoleStudent can only play games and view their own history
	RoleStudent Role = "STUDENT"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}
