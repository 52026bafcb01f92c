package types

import (
	"time"

	"github.com/lectern/classroom-api/internal/models"
)

// ErrorResponse is the standard error envelope
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"The requested resource was not found"`
	Code    string `json:"code,omitempty" example:"NOT_FOUND"`
}

// AuthResponse carries a signed token and the authenticated user
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the public view of a user account
type UserResponse struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ClassroomResponse is the public view of a classroom
type ClassroomResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Subject     string    `json:"subject,omitempty"`
	Description string    `json:"description,omitempty"`
	TeacherID   uint      `json:"teacher_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// LectureResponse is the public view of a lecture
type LectureResponse struct {
	ID          uint                   `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Date        time.Time              `json:"date"`
	ClassroomID uint                   `json:"classroom_id"`
	CreatedBy   uint                   `json:"created_by"`
	Audio       *TranscriptionResponse `json:"audio,omitempty"`
}

// TranscriptionResponse is the public view of an audio asset and its
// transcription state
type TranscriptionResponse struct {
	ID              uint       `json:"id"`
	UUID            string     `json:"uuid"`
	FileName        string     `json:"file_name"`
	URL             string     `json:"url,omitempty"`
	Status          string     `json:"status"`
	Text            string     `json:"text,omitempty"`
	Language        string     `json:"language,omitempty"`
	DurationSeconds float64    `json:"duration_seconds,omitempty"`
	Error           string     `json:"error,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	FailedAt        *time.Time `json:"failed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// TranscriptionSummaryResponse is the list view, capping transcript text
type TranscriptionSummaryResponse struct {
	ID          uint       `json:"id"`
	UUID        string     `json:"uuid"`
	FileName    string     `json:"file_name"`
	Summary     string     `json:"summary"`
	Language    string     `json:"language,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ToUserResponse converts a user model to its public view
func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     string(user.Role),
	}
}

// ToClassroomResponse converts a classroom model to its public view
func ToClassroomResponse(classroom *models.Classroom) ClassroomResponse {
	return ClassroomResponse{
		ID:          classroom.ID,
		Name:        classroom.Name,
		Subject:     classroom.Subject,
		Description: classroom.Description,
		TeacherID:   classroom.TeacherID,
		CreatedAt:   classroom.CreatedAt,
	}
}

// ToLectureResponse converts a lecture model to its public view
func ToLectureResponse(lecture *models.Lecture) LectureResponse {
	resp := LectureResponse{
		ID:          lecture.ID,
		Title:       lecture.Title,
		Description: lecture.Description,
		Date:        lecture.Date,
		ClassroomID: lecture.ClassroomID,
		CreatedBy:   lecture.CreatedBy,
	}
	if lecture.AudioAsset != nil {
		audio := ToTranscriptionResponse(lecture.AudioAsset)
		resp.Audio = &audio
	}
	return resp
}

// ToTranscriptionResponse converts an audio asset to its public view.
// Deleted assets expose no transcript or storage URL.
func ToTranscriptionResponse(asset *models.AudioAsset) TranscriptionResponse {
	resp := TranscriptionResponse{
		ID:          asset.ID,
		UUID:        asset.UUID,
		FileName:    asset.FileName,
		Status:      string(asset.Status),
		Error:       asset.Error,
		StartedAt:   asset.StartedAt,
		CompletedAt: asset.CompletedAt,
		FailedAt:    asset.FailedAt,
		CreatedAt:   asset.CreatedAt,
	}
	if asset.Status != models.TranscriptionStatusDeleted {
		resp.URL = asset.StorageURL
		resp.Text = asset.Text
		resp.Language = asset.Language
		resp.DurationSeconds = asset.DurationSeconds
	}
	return resp
}

// ToTranscriptionSummaryResponse converts an audio asset to its list view
func ToTranscriptionSummaryResponse(asset *models.AudioAsset) TranscriptionSummaryResponse {
	return TranscriptionSummaryResponse{
		ID:          asset.ID,
		UUID:        asset.UUID,
		FileName:    asset.FileName,
		Summary:     asset.TranscriptSummary(),
		Language:    asset.Language,
		CompletedAt: asset.CompletedAt,
	}
}
