package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lectern/classroom-api/api"
	"github.com/lectern/classroom-api/api/types"
	"github.com/lectern/classroom-api/internal/database"
	"github.com/lectern/classroom-api/internal/models"
	"github.com/lectern/classroom-api/internal/services/auth"
	"github.com/lectern/classroom-api/internal/services/classrooms"
	"github.com/lectern/classroom-api/internal/services/jobs"
	"github.com/lectern/classroom-api/internal/services/lectures"
	"github.com/lectern/classroom-api/internal/services/storage"
	"github.com/lectern/classroom-api/internal/services/transcription"
	"github.com/lectern/classroom-api/internal/services/users"
	"github.com/lectern/classroom-api/internal/services/workers"
	"github.com/lectern/classroom-api/pkg/config"
	"github.com/lectern/classroom-api/pkg/transcriber"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Classroom API server with the configured settings.

The server exposes the REST API for classrooms, lectures and
transcriptions, and runs the background worker pool that drives
transcription and cleanup jobs.

Example:
  classroom-api serve
  classroom-api serve --port 9090
  classroom-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	deps, pool, err := buildDependencies(db, cfg)
	if err != nil {
		return err
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	if err := pool.Start(workerCtx); err != nil {
		return fmt.Errorf("starting worker pool: %w", err)
	}
	defer pool.Stop()

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(address)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Info().Str("address", address).Msg("Server is ready to handle requests")

	select {
	case <-stop:
		log.Info().Msg("Shutting down server")
	case err := <-serverErr:
		log.Error().Err(err).Msg("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("Server gracefully stopped")
	return nil
}

// buildDependencies wires the service graph and the worker pool
func buildDependencies(db *database.DB, cfg *config.Config) (*types.Dependencies, *workers.WorkerPool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := storage.NewMinIOStore(ctx, storage.ConfigFromApp(cfg.Storage))
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to object storage: %w", err)
	}

	transcriptionSvc := transcription.NewService(transcription.NewRepository(db.DB))
	jobSvc := jobs.NewService(jobs.NewRepository(db.DB))
	classroomSvc := classrooms.NewService(classrooms.NewRepository(db.DB))
	lectureSvc := lectures.NewService(lectures.NewRepository(db.DB), classroomSvc, transcriptionSvc, store, jobSvc)
	userSvc := users.NewService(users.NewRepository(db.DB))
	authSvc := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	client := transcriber.NewClient(transcriber.Config{
		BaseURL:  cfg.Transcription.ServiceURL,
		Timeout:  cfg.Transcription.Timeout,
		Language: cfg.Transcription.Language,
	})

	workerCount := cfg.Processing.Workers
	pool := workers.NewWorkerPool(jobSvc, workerCount, cfg.Processing.PollInterval)
	pool.RegisterProcessor(workers.NewTranscriptionProcessor(transcriptionSvc, client))
	pool.RegisterProcessor(workers.NewCleanupProcessor(transcriptionSvc, store))

	deps := &types.Dependencies{
		DB:                   db,
		AuthService:          authSvc,
		UserService:          userSvc,
		ClassroomService:     classroomSvc,
		LectureService:       lectureSvc,
		TranscriptionService: transcriptionSvc,
		JobService:           jobSvc,
		WorkerPool:           pool,
		ObjectStore:          store,
		TempDir:              cfg.Storage.TempDir,
	}

	return deps, pool, nil
}
