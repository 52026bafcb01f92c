package transcription

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	authAPI "github.com/lectern/classroom-api/api/auth"
	"github.com/lectern/classroom-api/api/types"
	"github.com/lectern/classroom-api/internal/models"
	authService "github.com/lectern/classroom-api/internal/services/auth"
	"github.com/lectern/classroom-api/internal/services/jobs"
	"github.com/lectern/classroom-api/internal/services/transcription"
	"github.com/lectern/classroom-api/internal/services/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testHarness struct {
	router         *gin.Engine
	deps           *types.Dependencies
	transcriptions transcription.Service
	jobQueue       jobs.Service
	token          string
	userID         uint
}

func setupHarness(t *testing.T) *testHarness {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.AudioAsset{}, &models.Job{}))

	transcriptionSvc := transcription.NewService(transcription.NewRepository(db))
	jobSvc := jobs.NewService(jobs.NewRepository(db))
	userSvc := users.NewService(users.NewRepository(db))
	authSvc := authService.NewService("test-secret", time.Hour)

	user, err := userSvc.Register(context.Background(), "Ada", "ada@example.com", "pass1234", models.UserRoleTeacher)
	require.NoError(t, err)
	token, err := authSvc.Generate(user)
	require.NoError(t, err)

	deps := &types.Dependencies{
		AuthService:          authSvc,
		UserService:          userSvc,
		TranscriptionService: transcriptionSvc,
		JobService:           jobSvc,
	}

	router := gin.New()
	group := router.Group("/api/v1/transcriptions")
	group.Use(authAPI.Middleware(deps))
	RegisterRoutes(group, deps)

	return &testHarness{
		router:         router,
		deps:           deps,
		transcriptions: transcriptionSvc,
		jobQueue:       jobSvc,
		token:          token,
		userID:         user.ID,
	}
}

func (h *testHarness) request(t *testing.T, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+h.token)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func (h *testHarness) createAsset(t *testing.T, ownerID uint) *models.AudioAsset {
	asset := &models.AudioAsset{
		FileName:   "lecture.mp3",
		ObjectName: "audio/lecture.mp3",
		StorageURL: "http://storage.local/audio/lecture.mp3",
		OwnerID:    ownerID,
	}
	require.NoError(t, h.transcriptions.CreateAsset(context.Background(), asset))
	return asset
}

func TestRequest_QueuesJob(t *testing.T) {
	h := setupHarness(t)
	asset := h.createAsset(t, h.userID)

	w := h.request(t, http.MethodPost, "/api/v1/transcriptions/"+strconv.Itoa(int(asset.ID))+"/transcribe")
	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp types.TranscriptionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "processing", resp.Status)

	// A transcription job is waiting in the queue
	job, err := h.jobQueue.GetJobForAsset(context.Background(), asset.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPending, job.Status)
}

func TestRequest_CompletedShortCircuits(t *testing.T) {
	h := setupHarness(t)
	asset := h.createAsset(t, h.userID)

	_, err := h.transcriptions.Begin(context.Background(), asset.ID)
	require.NoError(t, err)
	require.NoError(t, h.transcriptions.Complete(context.Background(), asset.ID, transcription.Outcome{
		Text: "cached transcript", Language: "en",
	}))

	w := h.request(t, http.MethodPost, "/api/v1/transcriptions/"+strconv.Itoa(int(asset.ID))+"/transcribe")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.TranscriptionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "cached transcript", resp.Text)

	// No new job was queued
	_, err = h.jobQueue.GetJobForAsset(context.Background(), asset.ID)
	assert.ErrorIs(t, err, jobs.ErrJobNotFound)
}

func TestRequest_InFlightIsIdempotent(t *testing.T) {
	h := setupHarness(t)
	asset := h.createAsset(t, h.userID)

	first := h.request(t, http.MethodPost, "/api/v1/transcriptions/"+strconv.Itoa(int(asset.ID))+"/transcribe")
	require.Equal(t, http.StatusAccepted, first.Code)

	second := h.request(t, http.MethodPost, "/api/v1/transcriptions/"+strconv.Itoa(int(asset.ID))+"/transcribe")
	assert.Equal(t, http.StatusAccepted, second.Code)

	var resp types.TranscriptionResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, "processing", resp.Status)
}

func TestRequest_DeletedConflicts(t *testing.T) {
	h := setupHarness(t)
	asset := h.createAsset(t, h.userID)
	require.NoError(t, h.transcriptions.SoftDelete(context.Background(), asset.ID))

	w := h.request(t, http.MethodPost, "/api/v1/transcriptions/"+strconv.Itoa(int(asset.ID))+"/transcribe")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRequest_ForbiddenForNonOwner(t *testing.T) {
	h := setupHarness(t)
	asset := h.createAsset(t, h.userID+100)

	w := h.request(t, http.MethodPost, "/api/v1/transcriptions/"+strconv.Itoa(int(asset.ID))+"/transcribe")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequest_NotFound(t *testing.T) {
	h := setupHarness(t)

	w := h.request(t, http.MethodPost, "/api/v1/transcriptions/9999/transcribe")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequest_RequiresAuth(t *testing.T) {
	h := setupHarness(t)
	asset := h.createAsset(t, h.userID)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions/"+strconv.Itoa(int(asset.ID))+"/transcribe", nil)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGet_ReportsFailureCause(t *testing.T) {
	h := setupHarness(t)
	asset := h.createAsset(t, h.userID)

	_, err := h.transcriptions.Begin(context.Background(), asset.ID)
	require.NoError(t, err)
	require.NoError(t, h.transcriptions.Fail(context.Background(), asset.ID, "transcription timed out"))

	w := h.request(t, http.MethodGet, "/api/v1/transcriptions/"+strconv.Itoa(int(asset.ID)))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.TranscriptionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp.Status)
	assert.Equal(t, "transcription timed out", resp.Error)
	assert.NotNil(t, resp.FailedAt)
}

func TestList_ReturnsOwnCompleted(t *testing.T) {
	h := setupHarness(t)

	mine := h.createAsset(t, h.userID)
	_, err := h.transcriptions.Begin(context.Background(), mine.ID)
	require.NoError(t, err)
	require.NoError(t, h.transcriptions.Complete(context.Background(), mine.ID, transcription.Outcome{Text: "mine"}))

	other := h.createAsset(t, h.userID+1)
	_, err = h.transcriptions.Begin(context.Background(), other.ID)
	require.NoError(t, err)
	require.NoError(t, h.transcriptions.Complete(context.Background(), other.ID, transcription.Outcome{Text: "other"}))

	w := h.request(t, http.MethodGet, "/api/v1/transcriptions")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []types.TranscriptionSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, mine.ID, resp[0].ID)
}

func TestDelete_SoftDeletesAndQueuesCleanup(t *testing.T) {
	h := setupHarness(t)
	asset := h.createAsset(t, h.userID)

	w := h.request(t, http.MethodDelete, "/api/v1/transcriptions/"+strconv.Itoa(int(asset.ID)))
	assert.Equal(t, http.StatusNoContent, w.Code)

	got, err := h.transcriptions.Get(context.Background(), asset.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TranscriptionStatusDeleted, got.Status)

	cleanup, err := h.jobQueue.ClaimNextJob(context.Background(), "w", []models.JobType{models.JobTypeAssetCleanup})
	require.NoError(t, err)
	gotID, ok := cleanup.GetPayloadUint("asset_id")
	require.True(t, ok)
	assert.Equal(t, asset.ID, gotID)

	// A second delete conflicts
	w = h.request(t, http.MethodDelete, "/api/v1/transcriptions/"+strconv.Itoa(int(asset.ID)))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDelete_HidesTranscriptAfterwards(t *testing.T) {
	h := setupHarness(t)
	asset := h.createAsset(t, h.userID)

	_, err := h.transcriptions.Begin(context.Background(), asset.ID)
	require.NoError(t, err)
	require.NoError(t, h.transcriptions.Complete(context.Background(), asset.ID, transcription.Outcome{Text: "secret"}))

	w := h.request(t, http.MethodDelete, "/api/v1/transcriptions/"+strconv.Itoa(int(asset.ID)))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = h.request(t, http.MethodGet, "/api/v1/transcriptions/"+strconv.Itoa(int(asset.ID)))
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.TranscriptionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "deleted", resp.Status)
	assert.Empty(t, resp.Text)
	assert.Empty(t, resp.URL)
}
