package models

import (
	"gorm.io/gorm"
)

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleTeacher UserRole = "teacher"
	UserRoleAdmin   UserRole = "admin"
)

// User represents a registered account. Teachers own classrooms and
// lectures; students are read-only consumers.
type User struct {
	gorm.Model
	FullName     string   `gorm:"not null" json:"full_name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"default:'student'" json:"role"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// IsTeacher returns true for accounts allowed to create classes
func (u *User) IsTeacher() bool {
	return u.Role == UserRoleTeacher || u.Role == UserRoleAdmin
}
