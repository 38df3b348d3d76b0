package main

import (
	"fmt"

	"github.com/jonathan/career-copilot/internal/coverage"
	"github.com/jonathan/career-copilot/internal/parsing"
	"github.com/jonathan/career-copilot/internal/schemas"
	"github.com/jonathan/career-copilot/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report how well a resume covers a job's must-have requirements",
	Long: `Compare a resume with a job posting and print a gap report with the coverage score,
the uncovered must-have requirements and the resume lines evidencing each covered one.
Inputs ending in .json are read as structured records; anything else is parsed as a document.`,
	RunE: runAnalyze,
}

var (
	analyzeResume string
	analyzeJob    string
	analyzeOutput string
	analyzeFormat string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume (.json record, .pdf, .docx or text)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting (.json record or text)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output file (default stdout)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", formatJSON, "Output format: json or text")
	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if err := checkFormat(analyzeFormat); err != nil {
		return err
	}

	var (
		resume *types.Resume
		job    *types.Job
	)

	// Resume and job are independent, load them in parallel
	var g errgroup.Group
	g.Go(func() error {
		var err error
		resume, err = loadResume(analyzeResume)
		return err
	})
	g.Go(func() error {
		var err error
		job, err = loadJob(analyzeJob)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	report := coverage.Analyze(resume, job)
	logger.Debug("analyzed coverage",
		zap.Int("must_have", len(job.MustHave)),
		zap.Int("gaps", len(report.MustHaveGaps)),
		zap.Int("score", report.CoverageScore),
	)

	return writeOutput(cmd, analyzeOutput, analyzeFormat, report)
}

func loadResume(path string) (*types.Resume, error) {
	if isJSONRecord(path) {
		var resume types.Resume
		if err := loadRecord(schemas.KindResume, path, &resume); err != nil {
			return nil, err
		}
		return &resume, nil
	}

	text, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	resume, err := parsing.ParseResume(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume: %w", err)
	}
	return resume, nil
}

func loadJob(path string) (*types.Job, error) {
	if isJSONRecord(path) {
		var job types.Job
		if err := loadRecord(schemas.KindJob, path, &job); err != nil {
			return nil, err
		}
		return &job, nil
	}

	text, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	return parsing.ParseJob(text), nil
}
