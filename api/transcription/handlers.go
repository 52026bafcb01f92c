package transcription

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lectern/classroom-api/api/auth"
	"github.com/lectern/classroom-api/api/types"
	"github.com/lectern/classroom-api/internal/models"
	transcriptionService "github.com/lectern/classroom-api/internal/services/transcription"
	"github.com/rs/zerolog/log"
)

// Request triggers transcription of an audio asset
// @Summary      Request transcription
// @Description  Start transcription for an audio recording. The asset moves to the processing state
// @Description  and a background job calls the transcription service. Requesting an already completed
// @Description  transcription returns the stored transcript immediately; requesting one that is in
// @Description  progress is a no-op and reports the current state. Failed transcriptions can be
// @Description  re-requested.
// @Tags         transcriptions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Audio asset ID"
// @Success      200 {object} types.TranscriptionResponse "Transcription already completed"
// @Success      202 {object} types.TranscriptionResponse "Transcription queued or in progress"
// @Failure      403 {object} types.ErrorResponse "Not the asset owner"
// @Failure      404 {object} types.ErrorResponse "Asset not found"
// @Failure      409 {object} types.ErrorResponse "Asset has been deleted"
// @Router       /api/v1/transcriptions/{id}/transcribe [post]
func Request(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		assetID, ok := parseAssetID(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		if !assertOwnership(c, ctx, deps, assetID) {
			return
		}

		asset, err := deps.TranscriptionService.Begin(ctx, assetID)
		switch {
		case err == nil:
			// Durable processing marker is set; hand off to the queue
			if _, qErr := deps.JobService.EnqueueUniqueJob(ctx, models.JobTypeTranscription,
				models.JobPayload{"asset_id": assetID}, "asset_id"); qErr != nil {
				// Roll the marker back so a retry is possible
				log.Error().Uint("asset_id", assetID).Err(qErr).Msg("Could not enqueue transcription job")
				_ = deps.TranscriptionService.Fail(ctx, assetID, "could not queue transcription")
				types.RespondError(c, qErr)
				return
			}
			c.JSON(http.StatusAccepted, types.ToTranscriptionResponse(asset))

		case errors.Is(err, transcriptionService.ErrAlreadyCompleted):
			c.JSON(http.StatusOK, types.ToTranscriptionResponse(asset))

		case errors.Is(err, transcriptionService.ErrTranscriptionInFlight):
			c.JSON(http.StatusAccepted, types.ToTranscriptionResponse(asset))

		default:
			types.RespondError(c, err)
		}
	}
}

// Get returns the transcription state of an audio asset
// @Summary      Get transcription status
// @Description  Return the current transcription state of an audio asset, including the transcript
// @Description  text once completed and the failure cause after an error.
// @Tags         transcriptions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Audio asset ID"
// @Success      200 {object} types.TranscriptionResponse "Transcription state"
// @Failure      404 {object} types.ErrorResponse "Asset not found"
// @Router       /api/v1/transcriptions/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		assetID, ok := parseAssetID(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		asset, err := deps.TranscriptionService.Get(ctx, assetID)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.ToTranscriptionResponse(asset))
	}
}

// List returns the caller's completed transcriptions
// @Summary      List completed transcriptions
// @Description  Return the authenticated user's completed transcriptions, newest first, with
// @Description  transcript text capped to a short summary.
// @Tags         transcriptions
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Page size (default 20, max 100)"
// @Param        offset query int false "Offset into the result set"
// @Success      200 {array} types.TranscriptionSummaryResponse "Completed transcriptions"
// @Router       /api/v1/transcriptions [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		assets, err := deps.TranscriptionService.ListCompletedByOwner(ctx, auth.CurrentUserID(c), limit, offset)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		out := make([]types.TranscriptionSummaryResponse, 0, len(assets))
		for _, asset := range assets {
			out = append(out, types.ToTranscriptionSummaryResponse(asset))
		}

		c.JSON(http.StatusOK, out)
	}
}

// Delete soft-deletes a transcription
// @Summary      Delete a transcription
// @Description  Mark the transcription deleted and discard its transcript text. The stored audio
// @Description  file is removed by a background cleanup job. Deleted transcriptions cannot be
// @Description  re-requested.
// @Tags         transcriptions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Audio asset ID"
// @Success      204 "Transcription deleted"
// @Failure      403 {object} types.ErrorResponse "Not the asset owner"
// @Failure      404 {object} types.ErrorResponse "Asset not found"
// @Failure      409 {object} types.ErrorResponse "Already deleted"
// @Router       /api/v1/transcriptions/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		assetID, ok := parseAssetID(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		if !assertOwnership(c, ctx, deps, assetID) {
			return
		}

		if err := deps.TranscriptionService.SoftDelete(ctx, assetID); err != nil {
			types.RespondError(c, err)
			return
		}

		if _, err := deps.JobService.EnqueueUniqueJob(ctx, models.JobTypeAssetCleanup,
			models.JobPayload{"asset_id": assetID}, "asset_id"); err != nil {
			log.Warn().Uint("asset_id", assetID).Err(err).Msg("Could not enqueue asset cleanup job")
		}

		c.Status(http.StatusNoContent)
	}
}

// assertOwnership rejects the request unless the caller owns the asset
func assertOwnership(c *gin.Context, ctx context.Context, deps *types.Dependencies, assetID uint) bool {
	asset, err := deps.TranscriptionService.Get(ctx, assetID)
	if err != nil {
		types.RespondError(c, err)
		return false
	}

	if asset.OwnerID != auth.CurrentUserID(c) {
		c.JSON(http.StatusForbidden, types.ErrorResponse{
			Status:  "error",
			Message: "you do not own this recording",
			Code:    "FORBIDDEN",
		})
		return false
	}

	return true
}

func parseAssetID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Status:  "error",
			Message: "invalid audio asset ID",
			Code:    "INVALID_INPUT",
		})
		return 0, false
	}
	return uint(id), true
}
