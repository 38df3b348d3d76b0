// Package main provides the entry point for the Career Copilot CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/career-copilot/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	logJSON bool

	// logger is rebuilt from the persistent flags before every command runs
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "copilot",
	Short:         "Career Copilot resume and job posting analyzer",
	Long:          "Career Copilot parses resumes and job postings into structured records and reports how well a resume covers a job's must-have requirements.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		l, err := logging.New(logJSON, verbose)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		logger = l.With(zap.String(logging.FieldCommand, cmd.Name()))
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
