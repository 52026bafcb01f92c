package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lectern/classroom-api/internal/models"
	"github.com/lectern/classroom-api/internal/services/jobs"
	"github.com/rs/zerolog/log"
)

// JobProcessor defines the interface for processing different job types
type JobProcessor interface {
	ProcessJob(ctx context.Context, job *models.Job) error
	CanProcess(jobType models.JobType) bool
}

// allJobTypes lists every job type the queue knows about. Workers claim
// only the subset their registered processors can handle.
var allJobTypes = []models.JobType{
	models.JobTypeTranscription,
	models.JobTypeAssetCleanup,
}

// Worker represents a background worker that processes jobs
type Worker struct {
	id           string
	jobService   jobs.Service
	processors   []JobProcessor
	stopChan     chan struct{}
	wg           sync.WaitGroup
	pollInterval time.Duration
}

// NewWorker creates a new worker instance
func NewWorker(id string, jobService jobs.Service, pollInterval time.Duration) *Worker {
	return &Worker{
		id:           id,
		jobService:   jobService,
		processors:   make([]JobProcessor, 0),
		stopChan:     make(chan struct{}),
		pollInterval: pollInterval,
	}
}

// RegisterProcessor registers a job processor
func (w *Worker) RegisterProcessor(processor JobProcessor) {
	w.processors = append(w.processors, processor)
}

// Start starts the worker in a goroutine
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop stops the worker gracefully
func (w *Worker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log.Info().Str("worker_id", w.id).Msg("Worker starting")
	defer log.Info().Str("worker_id", w.id).Msg("Worker stopped")

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-ticker.C:
			if err := w.processNextJob(ctx); err != nil {
				log.Error().
					Str("worker_id", w.id).
					Err(err).
					Msg("Error processing job")
			}
		}
	}
}

// processNextJob claims and processes the next available job
func (w *Worker) processNextJob(ctx context.Context) error {
	var supportedTypes []models.JobType
	typeMap := make(map[models.JobType]bool)

	for _, jobType := range allJobTypes {
		for _, p := range w.processors {
			if p.CanProcess(jobType) && !typeMap[jobType] {
				supportedTypes = append(supportedTypes, jobType)
				typeMap[jobType] = true
			}
		}
	}

	if len(supportedTypes) == 0 {
		return fmt.Errorf("no job processors registered")
	}

	job, err := w.jobService.ClaimNextJob(ctx, w.id, supportedTypes)
	if err != nil {
		// No jobs available is not an error
		return nil
	}
	if job == nil {
		return nil
	}

	var processor JobProcessor
	for _, p := range w.processors {
		if p.CanProcess(job.Type) {
			processor = p
			break
		}
	}

	if processor == nil {
		return fmt.Errorf("no processor found for job type %s", job.Type)
	}

	if err := processor.ProcessJob(ctx, job); err != nil {
		if failErr := w.jobService.FailJob(ctx, job.ID, err); failErr != nil {
			log.Error().
				Str("worker_id", w.id).
				Uint("job_id", job.ID).
				Err(failErr).
				Msg("Failed to mark job as failed")
		}
		return fmt.Errorf("job processing failed: %w", err)
	}

	log.Debug().
		Str("worker_id", w.id).
		Uint("job_id", job.ID).
		Msg("Job processed")

	return nil
}

// WorkerPool manages multiple workers
type WorkerPool struct {
	workers    []*Worker
	jobService jobs.Service
	mu         sync.RWMutex
	started    bool
}

// NewWorkerPool creates a new worker pool
func NewWorkerPool(jobService jobs.Service, workerCount int, pollInterval time.Duration) *WorkerPool {
	pool := &WorkerPool{
		jobService: jobService,
		workers:    make([]*Worker, workerCount),
	}

	for i := 0; i < workerCount; i++ {
		workerID := fmt.Sprintf("worker-%d", i+1)
		pool.workers[i] = NewWorker(workerID, jobService, pollInterval)
	}

	return pool
}

// RegisterProcessor registers a processor with all workers
func (p *WorkerPool) RegisterProcessor(processor JobProcessor) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, worker := range p.workers {
		worker.RegisterProcessor(processor)
	}
}

// Start starts all workers
func (p *WorkerPool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("worker pool already started")
	}

	log.Info().Int("workers", len(p.workers)).Msg("Starting worker pool")

	for _, worker := range p.workers {
		worker.Start(ctx)
	}

	p.started = true
	return nil
}

// Stop stops all workers gracefully
func (p *WorkerPool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	log.Info().Msg("Stopping worker pool")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.started = false
}
