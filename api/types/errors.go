package types

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lectern/classroom-api/internal/services/classrooms"
	"github.com/lectern/classroom-api/internal/services/lectures"
	"github.com/lectern/classroom-api/internal/services/transcription"
	"github.com/lectern/classroom-api/internal/services/users"
	apperrors "github.com/lectern/classroom-api/pkg/errors"
)

// RespondError translates a service error into the standard error envelope
func RespondError(c *gin.Context, err error) {
	appErr := classify(err)
	c.JSON(appErr.GetHTTPCode(), ErrorResponse{
		Status:  "error",
		Message: appErr.Message,
		Code:    string(appErr.Code),
	})
}

// classify maps well-known service errors onto AppError codes. Anything
// unrecognized becomes a generic internal error so raw details never leak.
func classify(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, transcription.ErrAssetNotFound),
		errors.Is(err, classrooms.ErrClassroomNotFound),
		errors.Is(err, lectures.ErrLectureNotFound),
		errors.Is(err, users.ErrUserNotFound):
		return apperrors.New(apperrors.ErrCodeNotFound, err.Error())

	case errors.Is(err, transcription.ErrTranscriptionInFlight):
		return apperrors.New(apperrors.ErrCodeConflict, "transcription is already in progress")

	case errors.Is(err, transcription.ErrAssetDeleted):
		return apperrors.New(apperrors.ErrCodeConflict, "transcription has been deleted")

	case errors.Is(err, classrooms.ErrNotOwner),
		errors.Is(err, lectures.ErrNotAllowed):
		return apperrors.Forbidden(err.Error())

	case errors.Is(err, lectures.ErrTitleRequired),
		errors.Is(err, classrooms.ErrNameRequired):
		return apperrors.New(apperrors.ErrCodeValidation, err.Error())

	case errors.Is(err, users.ErrEmailTaken):
		return apperrors.New(apperrors.ErrCodeAlreadyExists, err.Error())

	case errors.Is(err, users.ErrInvalidCredentials):
		return apperrors.New(apperrors.ErrCodeUnauthorized, err.Error())

	default:
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "internal server error")
	}
}

// RespondValidation reports a request binding failure
func RespondValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Status:  "error",
		Message: err.Error(),
		Code:    string(apperrors.ErrCodeValidation),
	})
}
