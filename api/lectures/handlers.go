package lectures

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lectern/classroom-api/api/auth"
	"github.com/lectern/classroom-api/api/types"
	lectureService "github.com/lectern/classroom-api/internal/services/lectures"
)

// audioFormField is the multipart field carrying the lecture recording
const audioFormField = "audio"

// Create creates a lecture, optionally with an audio recording
// @Summary      Create a lecture
// @Description  Create a lecture in a classroom. Send multipart/form-data with title, description,
// @Description  date (RFC 3339) and an optional audio file. An attached recording starts in the
// @Description  pending transcription state.
// @Tags         lectures
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Classroom ID"
// @Param        title formData string true "Lecture title"
// @Param        description formData string false "Lecture description"
// @Param        date formData string false "Lecture date (RFC 3339)"
// @Param        audio formData file false "Audio recording"
// @Success      201 {object} types.LectureResponse "Lecture created"
// @Failure      400 {object} types.ErrorResponse "Missing title or invalid input"
// @Failure      403 {object} types.ErrorResponse "Not the classroom owner"
// @Failure      404 {object} types.ErrorResponse "Classroom not found"
// @Router       /api/v1/classrooms/{id}/lectures [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		classroomID, ok := parseIDParam(c, "id", "classroom")
		if !ok {
			return
		}

		input := lectureService.CreateInput{
			ClassroomID: classroomID,
			TeacherID:   auth.CurrentUserID(c),
			Title:       c.PostForm("title"),
			Description: c.PostForm("description"),
		}

		if dateStr := c.PostForm("date"); dateStr != "" {
			date, err := parseDate(dateStr)
			if err != nil {
				types.RespondValidation(c, err)
				return
			}
			input.Date = date
		} else {
			input.Date = time.Now()
		}

		upload, cleanup, err := stageAudioFile(c, deps.TempDir)
		if err != nil {
			types.RespondValidation(c, err)
			return
		}
		defer cleanup()
		input.Audio = upload

		ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
		defer cancel()

		lecture, err := deps.LectureService.Create(ctx, input)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, types.ToLectureResponse(lecture))
	}
}

// List returns the lectures of a classroom
// @Summary      List lectures
// @Tags         lectures
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Classroom ID"
// @Success      200 {array} types.LectureResponse "Lectures"
// @Failure      404 {object} types.ErrorResponse "Classroom not found"
// @Router       /api/v1/classrooms/{id}/lectures [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		classroomID, ok := parseIDParam(c, "id", "classroom")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		lectureList, err := deps.LectureService.ListByClassroom(ctx, classroomID)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		out := make([]types.LectureResponse, 0, len(lectureList))
		for _, lecture := range lectureList {
			out = append(out, types.ToLectureResponse(lecture))
		}

		c.JSON(http.StatusOK, out)
	}
}

// Get returns a single lecture with its audio state
// @Summary      Get a lecture
// @Tags         lectures
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Lecture ID"
// @Success      200 {object} types.LectureResponse "Lecture"
// @Failure      404 {object} types.ErrorResponse "Lecture not found"
// @Router       /api/v1/lectures/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		lectureID, ok := parseIDParam(c, "id", "lecture")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		lecture, err := deps.LectureService.Get(ctx, lectureID)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.ToLectureResponse(lecture))
	}
}

// Update updates lecture metadata and optionally replaces the recording
// @Summary      Update a lecture
// @Description  Update lecture fields via multipart/form-data. Attaching a new audio file retires
// @Description  the previous recording: its transcription is soft-deleted and the stored file is
// @Description  queued for removal.
// @Tags         lectures
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Lecture ID"
// @Param        title formData string false "Lecture title"
// @Param        description formData string false "Lecture description"
// @Param        date formData string false "Lecture date (RFC 3339)"
// @Param        audio formData file false "Replacement audio recording"
// @Success      200 {object} types.LectureResponse "Updated lecture"
// @Failure      403 {object} types.ErrorResponse "Not allowed to modify this lecture"
// @Failure      404 {object} types.ErrorResponse "Lecture not found"
// @Router       /api/v1/lectures/{id} [put]
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		lectureID, ok := parseIDParam(c, "id", "lecture")
		if !ok {
			return
		}

		input := lectureService.UpdateInput{
			LectureID: lectureID,
			TeacherID: auth.CurrentUserID(c),
		}

		if title, set := c.GetPostForm("title"); set {
			input.Title = &title
		}
		if description, set := c.GetPostForm("description"); set {
			input.Description = &description
		}
		if dateStr, set := c.GetPostForm("date"); set {
			date, err := parseDate(dateStr)
			if err != nil {
				types.RespondValidation(c, err)
				return
			}
			input.Date = &date
		}

		upload, cleanup, err := stageAudioFile(c, deps.TempDir)
		if err != nil {
			types.RespondValidation(c, err)
			return
		}
		defer cleanup()
		input.Audio = upload

		ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
		defer cancel()

		lecture, err := deps.LectureService.Update(ctx, input)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.ToLectureResponse(lecture))
	}
}

// Delete removes a lecture and retires its recording
// @Summary      Delete a lecture
// @Tags         lectures
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Lecture ID"
// @Success      204 "Lecture deleted"
// @Failure      403 {object} types.ErrorResponse "Not allowed to modify this lecture"
// @Failure      404 {object} types.ErrorResponse "Lecture not found"
// @Router       /api/v1/lectures/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		lectureID, ok := parseIDParam(c, "id", "lecture")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		if err := deps.LectureService.Delete(ctx, lectureID, auth.CurrentUserID(c)); err != nil {
			types.RespondError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// stageAudioFile writes an uploaded audio file to the temp directory. The
// returned cleanup is safe to call even after object storage has already
// consumed and removed the file.
func stageAudioFile(c *gin.Context, tempDir string) (*lectureService.AudioUpload, func(), error) {
	noop := func() {}

	file, err := c.FormFile(audioFormField)
	if err != nil {
		if err == multipart.ErrMessageTooLarge {
			return nil, noop, fmt.Errorf("audio file exceeds the upload limit")
		}
		// No file attached, or a non-multipart metadata-only request
		return nil, noop, nil
	}

	if tempDir == "" {
		tempDir = os.TempDir()
	}
	localPath := filepath.Join(tempDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, localPath); err != nil {
		return nil, noop, fmt.Errorf("could not store uploaded file: %w", err)
	}

	upload := &lectureService.AudioUpload{
		LocalPath:    localPath,
		OriginalName: file.Filename,
		Size:         file.Size,
	}
	cleanup := func() { _ = os.Remove(localPath) }

	return upload, cleanup, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("date must be RFC 3339 or YYYY-MM-DD")
}

func parseIDParam(c *gin.Context, param, resource string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Status:  "error",
			Message: fmt.Sprintf("invalid %s ID", resource),
			Code:    "INVALID_INPUT",
		})
		return 0, false
	}
	return uint(id), true
}
