package types

import (
	"github.com/lectern/classroom-api/internal/database"
	"github.com/lectern/classroom-api/internal/services/auth"
	"github.com/lectern/classroom-api/internal/services/classrooms"
	"github.com/lectern/classroom-api/internal/services/jobs"
	"github.com/lectern/classroom-api/internal/services/lectures"
	"github.com/lectern/classroom-api/internal/services/storage"
	"github.com/lectern/classroom-api/internal/services/transcription"
	"github.com/lectern/classroom-api/internal/services/users"
	"github.com/lectern/classroom-api/internal/services/workers"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                   *database.DB
	AuthService          *auth.Service
	UserService          users.Service
	ClassroomService     classrooms.Service
	LectureService       lectures.Service
	TranscriptionService transcription.Service
	JobService           jobs.Service
	WorkerPool           *workers.WorkerPool
	ObjectStore          storage.ObjectStore

	// TempDir stages multipart uploads before they move to object storage
	TempDir string
}
