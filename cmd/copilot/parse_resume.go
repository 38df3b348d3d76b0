package main

import (
	"fmt"

	"github.com/jonathan/career-copilot/internal/parsing"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume document into structured Resume JSON",
	Long:  "Parse a PDF, DOCX or plain text resume into a Resume record that validates against the resume schema.",
	RunE:  runParseResume,
}

var (
	parseResumeInput  string
	parseResumeOutput string
	parseResumeFormat string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInput, "in", "i", "", "Path to resume file (.pdf, .docx or text)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutput, "out", "o", "", "Path to output file (default stdout)")
	parseResumeCmd.Flags().StringVarP(&parseResumeFormat, "format", "f", formatJSON, "Output format: json or text")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, _ []string) error {
	if err := checkFormat(parseResumeFormat); err != nil {
		return err
	}

	text, err := readDocument(parseResumeInput)
	if err != nil {
		return err
	}

	resume, err := parsing.ParseResume(text)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	logger.Debug("parsed resume",
		zap.String("in", parseResumeInput),
		zap.Int("skills", len(resume.Skills)),
		zap.Int("bullets", len(resume.BulletTexts())),
	)

	return writeOutput(cmd, parseResumeOutput, parseResumeFormat, resume)
}
