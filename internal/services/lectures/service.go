package lectures

import (
	"context"
	"fmt"
	"strings"

	"github.com/lectern/classroom-api/internal/models"
	"github.com/lectern/classroom-api/internal/services/classrooms"
	"github.com/lectern/classroom-api/internal/services/jobs"
	"github.com/lectern/classroom-api/internal/services/storage"
	"github.com/lectern/classroom-api/internal/services/transcription"
	"github.com/rs/zerolog/log"
)

type service struct {
	repo           Repository
	classrooms     classrooms.Service
	transcriptions transcription.Service
	store          storage.ObjectStore
	jobQueue       jobs.Service
}

// NewService creates a lecture service
func NewService(
	repo Repository,
	classroomService classrooms.Service,
	transcriptionService transcription.Service,
	store storage.ObjectStore,
	jobQueue jobs.Service,
) Service {
	return &service{
		repo:           repo,
		classrooms:     classroomService,
		transcriptions: transcriptionService,
		store:          store,
		jobQueue:       jobQueue,
	}
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Lecture, error) {
	classroom, err := s.classrooms.Get(ctx, input.ClassroomID)
	if err != nil {
		return nil, err
	}
	if !classroom.OwnedBy(input.TeacherID) {
		return nil, classrooms.ErrNotOwner
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	lecture := &models.Lecture{
		Title:       title,
		Description: input.Description,
		Date:        input.Date,
		ClassroomID: input.ClassroomID,
		CreatedBy:   input.TeacherID,
	}

	if input.Audio != nil {
		asset, err := s.storeAudio(ctx, input.Audio, input.TeacherID)
		if err != nil {
			return nil, err
		}
		lecture.AudioAssetID = &asset.ID
		lecture.AudioAsset = asset
	}

	if err := s.repo.CreateLecture(ctx, lecture); err != nil {
		return nil, fmt.Errorf("creating lecture: %w", err)
	}

	log.Info().
		Uint("lecture_id", lecture.ID).
		Uint("classroom_id", input.ClassroomID).
		Bool("has_audio", lecture.HasAudio()).
		Msg("Lecture created")

	return lecture, nil
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*models.Lecture, error) {
	lecture, err := s.repo.GetByID(ctx, input.LectureID)
	if err != nil {
		return nil, err
	}

	if err := s.checkModifiable(ctx, lecture, input.TeacherID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		lecture.Title = title
	}
	if input.Description != nil {
		lecture.Description = *input.Description
	}
	if input.Date != nil {
		lecture.Date = *input.Date
	}

	if input.Audio != nil {
		asset, err := s.storeAudio(ctx, input.Audio, input.TeacherID)
		if err != nil {
			return nil, err
		}

		// Retire the previous recording before linking the new one
		if lecture.AudioAssetID != nil {
			s.retireAsset(ctx, *lecture.AudioAssetID)
		}

		lecture.AudioAssetID = &asset.ID
		lecture.AudioAsset = asset
	}

	if err := s.repo.UpdateLecture(ctx, lecture); err != nil {
		return nil, fmt.Errorf("updating lecture: %w", err)
	}

	return lecture, nil
}

func (s *service) Delete(ctx context.Context, lectureID, teacherID uint) error {
	lecture, err := s.repo.GetByID(ctx, lectureID)
	if err != nil {
		return err
	}

	if err := s.checkModifiable(ctx, lecture, teacherID); err != nil {
		return err
	}

	if err := s.repo.DeleteLecture(ctx, lectureID); err != nil {
		return err
	}

	if lecture.AudioAssetID != nil {
		s.retireAsset(ctx, *lecture.AudioAssetID)
	}

	log.Info().
		Uint("lecture_id", lectureID).
		Uint("teacher_id", teacherID).
		Msg("Lecture deleted")

	return nil
}

func (s *service) Get(ctx context.Context, lectureID uint) (*models.Lecture, error) {
	return s.repo.GetByID(ctx, lectureID)
}

func (s *service) ListByClassroom(ctx context.Context, classroomID uint) ([]*models.Lecture, error) {
	if _, err := s.classrooms.Get(ctx, classroomID); err != nil {
		return nil, err
	}
	return s.repo.ListByClassroom(ctx, classroomID)
}

// checkModifiable enforces that only the classroom owner who also created
// the lecture may change it
func (s *service) checkModifiable(ctx context.Context, lecture *models.Lecture, teacherID uint) error {
	classroom, err := s.classrooms.Get(ctx, lecture.ClassroomID)
	if err != nil {
		return err
	}
	if !classroom.OwnedBy(teacherID) || lecture.CreatedBy != teacherID {
		return ErrNotAllowed
	}
	return nil
}

// storeAudio uploads the staged file and registers a pending audio asset.
// An upload failure aborts the whole operation.
func (s *service) storeAudio(ctx context.Context, upload *AudioUpload, ownerID uint) (*models.AudioAsset, error) {
	uploaded, err := s.store.Upload(ctx, upload.LocalPath, upload.OriginalName)
	if err != nil {
		return nil, fmt.Errorf("uploading audio: %w", err)
	}

	asset := &models.AudioAsset{
		FileName:   upload.OriginalName,
		ObjectName: uploaded.ObjectName,
		StorageURL: uploaded.URL,
		FileSize:   uploaded.Size,
		OwnerID:    ownerID,
	}
	if err := s.transcriptions.CreateAsset(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

// retireAsset soft-deletes a replaced or orphaned asset and queues the
// stored file for removal. Failures are logged, not surfaced: the lecture
// change itself has already succeeded.
func (s *service) retireAsset(ctx context.Context, assetID uint) {
	if err := s.transcriptions.SoftDelete(ctx, assetID); err != nil {
		log.Warn().
			Uint("asset_id", assetID).
			Err(err).
			Msg("Could not soft-delete replaced audio asset")
		return
	}

	_, err := s.jobQueue.EnqueueUniqueJob(ctx, models.JobTypeAssetCleanup,
		models.JobPayload{"asset_id": assetID}, "asset_id")
	if err != nil {
		log.Warn().
			Uint("asset_id", assetID).
			Err(err).
			Msg("Could not enqueue asset cleanup job")
	}
}
