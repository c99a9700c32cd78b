// user.go - Defines the User model for the database

package models // Declares the package name

// Role is the platform role a user registers with.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

type User struct { // User struct represents a user in the database
	Base
	Name      string `gorm:"not null" json:"name"`                      // First name
	Surname   string `gorm:"not null" json:"surname"`                   // Last name
	Email     string `gorm:"uniqueIndex;size:255;not null" json:"email"` // Must be unique
	Password  string `gorm:"not null" json:"-"`                         // Hashed password, never serialized
	Role      Role   `gorm:"size:16;not null;index" json:"role"`        // student or teacher
	School    string `gorm:"not null;index" json:"school"`              // Cohort part one
	Programme string `gorm:"not null;index" json:"programme"`           // Cohort part two
}

// SameCohort reports whether both users share school and programme.
func (u *User) SameCohort(other *User) bool {
	return u.School == other.School && u.Programme == other.Programme
}
