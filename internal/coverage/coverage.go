// Package coverage compares a resume against a job's must-have requirements and builds a gap report.
package coverage

import (
	"math"
	"strings"

	"github.com/jonathan/career-copilot/internal/types"
)

// MaxEvidenceLines caps the number of resume lines cited for one requirement
const MaxEvidenceLines = 3

// Analyze reports which must-have requirements are evidenced by the resume's bullets.
// Matching is a case-insensitive substring test without word boundaries, so "ml"
// is evidenced by a line mentioning "HTML".
func Analyze(resume *types.Resume, job *types.Job) *types.GapReport {
	report := &types.GapReport{
		CoverageScore:  0,
		MustHaveGaps:   []string{},
		NiceToHaveGaps: []string{},
		EvidenceMap:    map[string][]string{},
	}

	requirements := dedupeInOrder(job.MustHave)
	if len(requirements) == 0 {
		return report
	}

	corpus := resume.BulletTexts()
	lowered := make([]string, len(corpus))
	for i, line := range corpus {
		lowered[i] = strings.ToLower(line)
	}

	evidenced := 0
	for _, req := range requirements {
		evidence := findEvidence(strings.ToLower(req), corpus, lowered)
		if len(evidence) == 0 {
			report.MustHaveGaps = append(report.MustHaveGaps, req)
			continue
		}
		report.EvidenceMap[req] = evidence
		evidenced++
	}

	report.CoverageScore = Score(evidenced, len(requirements))
	return report
}

// Score returns the percentage of evidenced requirements, rounded half up.
// It is 0 when there are no requirements, and only reaches 100 when nothing is missing.
func Score(evidenced, total int) int {
	if total <= 0 {
		return 0
	}
	pct := 100 * float64(evidenced) / float64(total)
	score := min(100, max(0, int(math.Floor(pct+0.5))))
	if score == 100 && evidenced < total {
		score = 99
	}
	return score
}

// findEvidence returns up to MaxEvidenceLines corpus lines containing term, in corpus order.
func findEvidence(term string, corpus, lowered []string) []string {
	evidence := make([]string, 0, MaxEvidenceLines)
	for i, line := range lowered {
		if !strings.Contains(line, term) {
			continue
		}
		evidence = append(evidence, corpus[i])
		if len(evidence) == MaxEvidenceLines {
			break
		}
	}
	return evidence
}

// dedupeInOrder drops repeated requirements, keeping the first occurrence.
func dedupeInOrder(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
