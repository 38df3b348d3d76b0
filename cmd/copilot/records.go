package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/career-copilot/internal/ingestion"
	"github.com/jonathan/career-copilot/internal/observability"
	"github.com/jonathan/career-copilot/internal/schemas"
	"github.com/jonathan/career-copilot/internal/types"
	"github.com/spf13/cobra"
)

// Output formats accepted by --format
const (
	formatJSON = "json"
	formatText = "text"
)

func checkFormat(format string) error {
	switch format {
	case formatJSON, formatText:
		return nil
	default:
		return fmt.Errorf("invalid --format %q: must be %q or %q", format, formatJSON, formatText)
	}
}

// readDocument reads a PDF, DOCX or text file as plain text.
func readDocument(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	text, err := ingestion.ExtractTextStrict(path, raw)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", filepath.Base(path), err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text found in %s", filepath.Base(path))
	}
	return text, nil
}

// isJSONRecord reports whether path holds an already-structured record.
func isJSONRecord(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// loadRecord schema-validates a JSON file and decodes it into target.
func loadRecord(kind schemas.Kind, path string, target interface {
	Normalize()
	Validate() error
}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", kind, err)
	}
	if err := schemas.Validate(kind, data); err != nil {
		return fmt.Errorf("%s does not validate against schema: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse %s JSON: %w", kind, err)
	}
	target.Normalize()
	if err := target.Validate(); err != nil {
		return fmt.Errorf("invalid %s: %w", kind, err)
	}
	return nil
}

// writeOutput renders v as indented JSON or through the text printer, then
// writes it to outPath or the command's stdout.
func writeOutput(cmd *cobra.Command, outPath, format string, v any) error {
	var buf bytes.Buffer
	switch format {
	case formatText:
		p := observability.NewPrinter(&buf)
		switch rec := v.(type) {
		case *types.Resume:
			p.PrintResume(rec)
		case *types.Job:
			p.PrintJob(rec)
		case *types.GapReport:
			p.PrintGapReport(rec)
		default:
			return fmt.Errorf("no text format for %T", v)
		}
	default:
		jsonBytes, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		buf.Write(jsonBytes)
		buf.WriteByte('\n')
	}

	if outPath == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", outPath)
	return nil
}
