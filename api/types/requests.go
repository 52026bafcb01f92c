package types

// RegisterRequest is the payload for creating a user account
type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required" example:"Ada Lovelace"`
	Email    string `json:"email" binding:"required,email" example:"ada@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"s3cret-pass"`
	Role     string `json:"role" binding:"omitempty,oneof=student teacher" example:"teacher"`
}

// LoginRequest is the payload for authenticating
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ada@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// ClassroomRequest is the payload for creating or updating a classroom
type ClassroomRequest struct {
	Name        string `json:"name" example:"Algebra I"`
	Subject     string `json:"subject" example:"Mathematics"`
	Description string `json:"description" example:"Introductory algebra"`
}

// LectureUpdateRequest is the JSON payload for updating lecture metadata.
// Audio replacement goes through the multipart endpoint instead.
type LectureUpdateRequest struct {
	Title       *string `json:"title" example:"Linear equations"`
	Description *string `json:"description" example:"Covers chapters 3 and 4"`
	Date        *string `json:"date" example:"2026-09-01T10:00:00Z"`
}
