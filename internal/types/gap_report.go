// Package types provides type definitions for structured data used throughout the career-copilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// GapReport summarizes how well a resume evidences a job's must-have requirements
type GapReport struct {
	CoverageScore  int                 `json:"coverage_score"`
	MustHaveGaps   []string            `json:"must_have_gaps"`
	NiceToHaveGaps []string            `json:"nice_to_have_gaps"` // reserved, always empty
	EvidenceMap    map[string][]string `json:"evidence_map"`      // requirement -> up to 3 resume lines
}

// AnalyzeRequest pairs a resume with the job it is compared against
type AnalyzeRequest struct {
	Resume Resume `json:"resume"`
	Job    Job    `json:"job"`
}
