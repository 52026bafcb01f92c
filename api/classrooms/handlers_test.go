package classrooms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	authAPI "github.com/lectern/classroom-api/api/auth"
	"github.com/lectern/classroom-api/api/types"
	"github.com/lectern/classroom-api/internal/models"
	authService "github.com/lectern/classroom-api/internal/services/auth"
	"github.com/lectern/classroom-api/internal/services/classrooms"
	"github.com/lectern/classroom-api/internal/services/jobs"
	"github.com/lectern/classroom-api/internal/services/lectures"
	"github.com/lectern/classroom-api/internal/services/transcription"
	"github.com/lectern/classroom-api/internal/services/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type classroomHarness struct {
	router       *gin.Engine
	deps         *types.Dependencies
	db           *gorm.DB
	teacherToken string
	studentToken string
	teacherID    uint
}

func setupClassroomHarness(t *testing.T) *classroomHarness {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	transcriptionSvc := transcription.NewService(transcription.NewRepository(db))
	jobSvc := jobs.NewService(jobs.NewRepository(db))
	classroomSvc := classrooms.NewService(classrooms.NewRepository(db))
	lectureSvc := lectures.NewService(lectures.NewRepository(db), classroomSvc, transcriptionSvc, nil, jobSvc)
	userSvc := users.NewService(users.NewRepository(db))
	authSvc := authService.NewService("test-secret", time.Hour)

	teacher, err := userSvc.Register(context.Background(), "Teach", "teach@example.com", "password123", models.UserRoleTeacher)
	require.NoError(t, err)
	teacherToken, err := authSvc.Generate(teacher)
	require.NoError(t, err)

	student, err := userSvc.Register(context.Background(), "Stud", "stud@example.com", "password123", models.UserRoleStudent)
	require.NoError(t, err)
	studentToken, err := authSvc.Generate(student)
	require.NoError(t, err)

	deps := &types.Dependencies{
		AuthService:          authSvc,
		UserService:          userSvc,
		ClassroomService:     classroomSvc,
		LectureService:       lectureSvc,
		TranscriptionService: transcriptionSvc,
		JobService:           jobSvc,
	}

	router := gin.New()
	group := router.Group("/api/v1/classrooms")
	group.Use(authAPI.Middleware(deps))
	RegisterRoutes(group, deps)

	return &classroomHarness{
		router:       router,
		deps:         deps,
		db:           db,
		teacherToken: teacherToken,
		studentToken: studentToken,
		teacherID:    teacher.ID,
	}
}

func (h *classroomHarness) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func TestCreateClassroom(t *testing.T) {
	h := setupClassroomHarness(t)

	w := h.request(t, http.MethodPost, "/api/v1/classrooms", h.teacherToken, types.ClassroomRequest{
		Name:    "Algebra I",
		Subject: "Mathematics",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp types.ClassroomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Algebra I", resp.Name)
	assert.Equal(t, h.teacherID, resp.TeacherID)
}

func TestCreateClassroom_RequiresName(t *testing.T) {
	h := setupClassroomHarness(t)

	w := h.request(t, http.MethodPost, "/api/v1/classrooms", h.teacherToken, types.ClassroomRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateClassroom_StudentForbidden(t *testing.T) {
	h := setupClassroomHarness(t)

	w := h.request(t, http.MethodPost, "/api/v1/classrooms", h.studentToken, types.ClassroomRequest{Name: "Nope"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListClassrooms_ScopedToOwner(t *testing.T) {
	h := setupClassroomHarness(t)

	require.Equal(t, http.StatusCreated,
		h.request(t, http.MethodPost, "/api/v1/classrooms", h.teacherToken, types.ClassroomRequest{Name: "Algebra I"}).Code)
	require.Equal(t, http.StatusCreated,
		h.request(t, http.MethodPost, "/api/v1/classrooms", h.teacherToken, types.ClassroomRequest{Name: "Geometry"}).Code)

	w := h.request(t, http.MethodGet, "/api/v1/classrooms", h.teacherToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var list []types.ClassroomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	// The student owns nothing
	w = h.request(t, http.MethodGet, "/api/v1/classrooms", h.studentToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestUpdateClassroom(t *testing.T) {
	h := setupClassroomHarness(t)

	created := h.request(t, http.MethodPost, "/api/v1/classrooms", h.teacherToken, types.ClassroomRequest{Name: "Algebra I"})
	require.Equal(t, http.StatusCreated, created.Code)
	var classroom types.ClassroomResponse
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &classroom))

	w := h.request(t, http.MethodPut, fmt.Sprintf("/api/v1/classrooms/%d", classroom.ID), h.teacherToken,
		types.ClassroomRequest{Name: "Algebra II", Subject: "Mathematics"})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated types.ClassroomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Algebra II", updated.Name)
}

func TestGetClassroom_NotFound(t *testing.T) {
	h := setupClassroomHarness(t)

	w := h.request(t, http.MethodGet, "/api/v1/classrooms/999", h.teacherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteClassroom_RetiresRecordings(t *testing.T) {
	h := setupClassroomHarness(t)

	created := h.request(t, http.MethodPost, "/api/v1/classrooms", h.teacherToken, types.ClassroomRequest{Name: "Algebra I"})
	require.Equal(t, http.StatusCreated, created.Code)
	var classroom types.ClassroomResponse
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &classroom))

	// Seed a lecture with an attached recording directly
	asset := &models.AudioAsset{FileName: "rec.mp3", ObjectName: "audio/rec.mp3", OwnerID: h.teacherID}
	require.NoError(t, h.deps.TranscriptionService.CreateAsset(context.Background(), asset))
	lecture := &models.Lecture{
		Title:        "Week 1",
		Date:         time.Now(),
		ClassroomID:  classroom.ID,
		CreatedBy:    h.teacherID,
		AudioAssetID: &asset.ID,
	}
	require.NoError(t, h.db.Create(lecture).Error)

	w := h.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/classrooms/%d", classroom.ID), h.teacherToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Classroom and lecture rows are gone
	assert.Equal(t, http.StatusNotFound,
		h.request(t, http.MethodGet, fmt.Sprintf("/api/v1/classrooms/%d", classroom.ID), h.teacherToken, nil).Code)
	var lectureCount int64
	require.NoError(t, h.db.Model(&models.Lecture{}).Where("classroom_id = ?", classroom.ID).Count(&lectureCount).Error)
	assert.Zero(t, lectureCount)

	// The recording is retired and its file queued for cleanup
	got, err := h.deps.TranscriptionService.Get(context.Background(), asset.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TranscriptionStatusDeleted, got.Status)

	job, err := h.deps.JobService.ClaimNextJob(context.Background(), "w", []models.JobType{models.JobTypeAssetCleanup})
	require.NoError(t, err)
	gotID, ok := job.GetPayloadUint("asset_id")
	require.True(t, ok)
	assert.Equal(t, asset.ID, gotID)
}

func TestDeleteClassroom_NotOwnerForbidden(t *testing.T) {
	h := setupClassroomHarness(t)

	created := h.request(t, http.MethodPost, "/api/v1/classrooms", h.teacherToken, types.ClassroomRequest{Name: "Algebra I"})
	require.Equal(t, http.StatusCreated, created.Code)
	var classroom types.ClassroomResponse
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &classroom))

	// Another teacher, not the owner
	other, err := h.deps.UserService.Register(context.Background(), "Other", "other@example.com", "password123", models.UserRoleTeacher)
	require.NoError(t, err)
	otherToken, err := h.deps.AuthService.Generate(other)
	require.NoError(t, err)

	w := h.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/classrooms/%d", classroom.ID), otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
