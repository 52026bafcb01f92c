package classrooms

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lectern/classroom-api/api/auth"
	"github.com/lectern/classroom-api/api/types"
	"github.com/lectern/classroom-api/internal/models"
)

// Create creates a classroom
// @Summary      Create a classroom
// @Description  Create a classroom owned by the authenticated teacher.
// @Tags         classrooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body types.ClassroomRequest true "Classroom details"
// @Success      201 {object} types.ClassroomResponse "Classroom created"
// @Failure      400 {object} types.ErrorResponse "Invalid request payload"
// @Failure      403 {object} types.ErrorResponse "Teacher role required"
// @Router       /api/v1/classrooms [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ClassroomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			types.RespondValidation(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		classroom, err := deps.ClassroomService.Create(ctx, auth.CurrentUserID(c), req.Name, req.Subject, req.Description)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, types.ToClassroomResponse(classroom))
	}
}

// List returns the authenticated teacher's classrooms
// @Summary      List classrooms
// @Tags         classrooms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} types.ClassroomResponse "Classrooms"
// @Router       /api/v1/classrooms [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		classroomList, err := deps.ClassroomService.ListByTeacher(ctx, auth.CurrentUserID(c))
		if err != nil {
			types.RespondError(c, err)
			return
		}

		out := make([]types.ClassroomResponse, 0, len(classroomList))
		for _, classroom := range classroomList {
			out = append(out, types.ToClassroomResponse(classroom))
		}

		c.JSON(http.StatusOK, out)
	}
}

// Get returns a single classroom
// @Summary      Get a classroom
// @Tags         classrooms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Classroom ID"
// @Success      200 {object} types.ClassroomResponse "Classroom"
// @Failure      404 {object} types.ErrorResponse "Classroom not found"
// @Router       /api/v1/classrooms/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		classroom, err := deps.ClassroomService.Get(ctx, id)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.ToClassroomResponse(classroom))
	}
}

// Update updates a classroom
// @Summary      Update a classroom
// @Tags         classrooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Classroom ID"
// @Param        request body types.ClassroomRequest true "Fields to update"
// @Success      200 {object} types.ClassroomResponse "Updated classroom"
// @Failure      403 {object} types.ErrorResponse "Not the classroom owner"
// @Failure      404 {object} types.ErrorResponse "Classroom not found"
// @Router       /api/v1/classrooms/{id} [put]
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var req types.ClassroomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			types.RespondValidation(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		classroom, err := deps.ClassroomService.Update(ctx, id, auth.CurrentUserID(c), req.Name, req.Subject, req.Description)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.ToClassroomResponse(classroom))
	}
}

// Delete removes a classroom, its lectures, and retires their recordings
// @Summary      Delete a classroom
// @Tags         classrooms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Classroom ID"
// @Success      204 "Classroom deleted"
// @Failure      403 {object} types.ErrorResponse "Not the classroom owner"
// @Failure      404 {object} types.ErrorResponse "Classroom not found"
// @Router       /api/v1/classrooms/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		teacherID := auth.CurrentUserID(c)

		// Retire attached recordings before the rows disappear
		lectureList, err := deps.LectureService.ListByClassroom(ctx, id)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		if err := deps.ClassroomService.Delete(ctx, id, teacherID); err != nil {
			types.RespondError(c, err)
			return
		}

		for _, lecture := range lectureList {
			if lecture.AudioAssetID == nil {
				continue
			}
			assetID := *lecture.AudioAssetID
			if err := deps.TranscriptionService.SoftDelete(ctx, assetID); err != nil {
				continue
			}
			_, _ = deps.JobService.EnqueueUniqueJob(ctx, models.JobTypeAssetCleanup,
				models.JobPayload{"asset_id": assetID}, "asset_id")
		}

		c.Status(http.StatusNoContent)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Status:  "error",
			Message: "invalid classroom ID",
			Code:    "INVALID_INPUT",
		})
		return 0, false
	}
	return uint(id), true
}
