// Package skills provides the seed skill and tool vocabularies and the ordered-set helpers used to mine them from text.
package skills

import (
	"strings"
)

// Vocabulary is an immutable list of lower-case keywords matched by substring containment.
type Vocabulary struct {
	terms []string
}

// NewVocabulary builds a Vocabulary from the given terms. Terms are lower-cased,
// trimmed and deduplicated; empty terms are dropped.
func NewVocabulary(terms ...string) Vocabulary {
	set := NewSortedSet()
	for _, term := range terms {
		set.Add(strings.ToLower(strings.TrimSpace(term)))
	}
	return Vocabulary{terms: set.Sorted()}
}

// SeedSkills returns the built-in skill vocabulary.
func SeedSkills() Vocabulary {
	return NewVocabulary("python", "sql", "etl", "ml", "machine learning", "statistics")
}

// SeedTools returns the built-in tool vocabulary.
func SeedTools() Vocabulary {
	return NewVocabulary("fastapi", "streamlit", "pandas", "numpy", "airflow", "docker", "aws")
}

// Terms returns a copy of the vocabulary terms in lexicographic order.
func (v Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Len returns the number of terms.
func (v Vocabulary) Len() int {
	return len(v.terms)
}

// Match returns every term contained in text, case-insensitively, in lexicographic order.
// Containment is a plain substring test: "ml" matches inside "html".
func (v Vocabulary) Match(text string) []string {
	lower := strings.ToLower(text)
	matched := make([]string, 0)
	for _, term := range v.terms {
		if strings.Contains(lower, term) {
			matched = append(matched, term)
		}
	}
	return matched
}
