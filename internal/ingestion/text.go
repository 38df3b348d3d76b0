// Package ingestion turns raw resume and job posting input into plain text lines.
package ingestion

import (
	"regexp"
	"strings"
)

// lineSplit matches one or more consecutive line breaks (LF or CRLF).
var lineSplit = regexp.MustCompile(`(\r?\n)+`)

// SplitLines splits raw text into trimmed, non-empty lines.
// Empty or whitespace-only input yields an empty slice.
func SplitLines(text string) []string {
	lines := make([]string, 0)
	if strings.TrimSpace(text) == "" {
		return lines
	}

	for _, line := range lineSplit.Split(text, -1) {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// JoinNonEmpty joins the non-blank parts with newlines, trimming the result.
// It is used to combine an uploaded document with pasted text.
func JoinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
