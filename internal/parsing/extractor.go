// Package parsing extracts structured Resume and Job records from free text using line heuristics.
package parsing

import (
	"github.com/jonathan/career-copilot/internal/skills"
)

// Extractor holds the read-only vocabularies used for keyword detection.
// It has no mutable state and is safe for concurrent use.
type Extractor struct {
	skills skills.Vocabulary
	tools  skills.Vocabulary
}

// NewExtractor creates an Extractor that mines the given skill and tool vocabularies.
func NewExtractor(skillVocab, toolVocab skills.Vocabulary) *Extractor {
	return &Extractor{skills: skillVocab, tools: toolVocab}
}

var defaultExtractor = NewExtractor(skills.SeedSkills(), skills.SeedTools())

// DefaultExtractor returns the Extractor built from the seed vocabularies.
func DefaultExtractor() *Extractor {
	return defaultExtractor
}
