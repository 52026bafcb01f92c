package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lectern/classroom-api/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "classroom-api",
	Short: "Classroom API server",
	Long: `Classroom API - class and lecture management with audio transcription

Teachers create classrooms and lectures, attach audio recordings, and
request transcriptions. Recordings are stored in object storage and
transcribed asynchronously by a background worker pool calling an
external speech-to-text service.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && cmd.Name() == "version" {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	setupLogging()
}

// setupLogging configures the global zerolog logger from config and flags
func setupLogging() {
	level := config.GetString("logging.level")
	if flagLevel, err := rootCmd.PersistentFlags().GetString("log-level"); err == nil && flagLevel != "" {
		level = flagLevel
	}

	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	jsonLogs, _ := rootCmd.PersistentFlags().GetBool("json-logs")
	if !jsonLogs && config.GetString("logging.format") != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
