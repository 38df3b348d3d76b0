package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/career-copilot/internal/config"
	"github.com/jonathan/career-copilot/internal/fetch"
	"github.com/jonathan/career-copilot/internal/logging"
	"github.com/jonathan/career-copilot/internal/parsing"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Parse a job posting into structured Job JSON",
	Long:  "Parse a job posting text file, or a posting fetched from a URL, into a Job record that validates against the job schema.",
	RunE:  runParseJob,
}

var (
	parseJobInput   string
	parseJobURL     string
	parseJobOutput  string
	parseJobFormat  string
	parseJobBrowser bool
	parseJobTimeout string
)

func init() {
	parseJobCmd.Flags().StringVarP(&parseJobInput, "in", "i", "", "Path to job posting text file")
	parseJobCmd.Flags().StringVarP(&parseJobURL, "url", "u", "", "URL of the job posting to fetch")
	parseJobCmd.Flags().StringVarP(&parseJobOutput, "out", "o", "", "Path to output file (default stdout)")
	parseJobCmd.Flags().StringVarP(&parseJobFormat, "format", "f", formatJSON, "Output format: json or text")
	parseJobCmd.Flags().BoolVar(&parseJobBrowser, "browser", false, "Render short pages with headless Chrome")
	parseJobCmd.Flags().StringVar(&parseJobTimeout, "timeout", config.DefaultFetchTimeout, "Fetch timeout for --url")
	parseJobCmd.MarkFlagsMutuallyExclusive("in", "url")
	parseJobCmd.MarkFlagsOneRequired("in", "url")

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(cmd *cobra.Command, _ []string) error {
	if err := checkFormat(parseJobFormat); err != nil {
		return err
	}

	text, err := loadJobText(cmd)
	if err != nil {
		return err
	}

	job := parsing.ParseJob(text)
	logger.Debug("parsed job",
		zap.String("title", job.Title),
		zap.Int("must_have", len(job.MustHave)),
		zap.Int("nice_to_have", len(job.NiceToHave)),
	)

	return writeOutput(cmd, parseJobOutput, parseJobFormat, job)
}

// loadJobText reads --in or fetches --url.
func loadJobText(cmd *cobra.Command) (string, error) {
	if parseJobInput != "" {
		content, err := os.ReadFile(parseJobInput)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		if strings.TrimSpace(string(content)) == "" {
			return "", fmt.Errorf("input file is empty")
		}
		return string(content), nil
	}

	timeoutCfg := config.Config{FetchTimeout: parseJobTimeout}
	if err := timeoutCfg.Validate(); err != nil {
		return "", err
	}

	opts := fetch.DefaultOptions()
	opts.Timeout = timeoutCfg.FetchTimeoutDuration()
	opts.BrowserTimeout = timeoutCfg.FetchTimeoutDuration()
	opts.UseBrowser = parseJobBrowser
	opts.Logger = logger

	posting, err := fetch.JobPosting(cmd.Context(), parseJobURL, opts)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	logger.Info("fetched job posting",
		zap.String("url", posting.URL),
		zap.String("platform", string(posting.Platform)),
		zap.Bool("rendered", posting.Rendered),
		zap.String("preview", logging.Truncate(posting.Text, 80)),
	)
	return posting.Text, nil
}
