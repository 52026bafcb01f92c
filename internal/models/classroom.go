package models

import (
	"gorm.io/gorm"
)

// Classroom represents a class owned by a single teacher
type Classroom struct {
	gorm.Model
	Name        string `gorm:"not null;index" json:"name"`
	Subject     string `gorm:"not null" json:"subject"`
	Description string `json:"description"`
	TeacherID   uint   `gorm:"not null;index:idx_classrooms_teacher" json:"teacher_id"`

	Lectures []Lecture `gorm:"foreignKey:ClassroomID" json:"lectures,omitempty"`
}

// TableName specifies the table name for GORM
func (Classroom) TableName() string {
	return "classrooms"
}

// OwnedBy reports whether the given user is the classroom's teacher
func (c *Classroom) OwnedBy(userID uint) bool {
	return c.TeacherID == userID
}
