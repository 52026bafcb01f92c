package cmd

import (
	"fmt"

	"github.com/lectern/classroom-api/internal/database"
	"github.com/lectern/classroom-api/internal/models"
	"github.com/lectern/classroom-api/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply the database schema for the Classroom API.

Runs GORM auto-migration for all models, creating or updating the
users, classrooms, lectures, audio_assets and jobs tables.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Database migrated: %s\n", cfg.Database.Path)
	return nil
}
