package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedVocabularies(t *testing.T) {
	assert.Equal(t, []string{"etl", "machine learning", "ml", "python", "sql", "statistics"}, SeedSkills().Terms())
	assert.Equal(t, []string{"airflow", "aws", "docker", "fastapi", "numpy", "pandas", "streamlit"}, SeedTools().Terms())
}

func TestNewVocabulary_NormalizesTerms(t *testing.T) {
	v := NewVocabulary(" Go ", "go", "", "Kubernetes")
	assert.Equal(t, []string{"go", "kubernetes"}, v.Terms())
	assert.Equal(t, 2, v.Len())
}

func TestVocabulary_Match(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"Case insensitive", "Built pipelines in PYTHON and Sql", []string{"python", "sql"}},
		{"Multi-word term", "Applied Machine Learning to churn", []string{"machine learning"}},
		{"Substring without word boundary", "Wrote HTML templates", []string{"ml"}},
		{"No match", "Managed a bakery", []string{}},
		{"Empty text", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SeedSkills().Match(tt.text))
		})
	}
}

func TestVocabulary_TermsReturnsCopy(t *testing.T) {
	v := SeedTools()
	terms := v.Terms()
	terms[0] = "mutated"
	assert.Equal(t, "airflow", v.Terms()[0])
}
