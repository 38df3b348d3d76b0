package parsing

import (
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/career-copilot/internal/skills"
	"github.com/jonathan/career-copilot/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResume_BasicResume(t *testing.T) {
	text := "Jane Doe\njane@example.com\n- Built ETL pipelines using Python and SQL"

	resume, err := ParseResume(text)
	require.NoError(t, err)
	require.NotNil(t, resume)

	assert.Equal(t, "Jane Doe", resume.Basics.Name)
	assert.Equal(t, "jane@example.com", resume.Basics.Email)
	assert.Equal(t, 0, resume.Basics.YearsExperience)
	assert.Equal(t, []types.Skill{{Name: "etl"}, {Name: "python"}, {Name: "sql"}}, resume.Skills)
	assert.Equal(t, []string{}, resume.Tools)

	require.Len(t, resume.Experiences, 1)
	exp := resume.Experiences[0]
	assert.Equal(t, PlaceholderCompany, exp.Company)
	assert.Equal(t, PlaceholderTitle, exp.Title)
	assert.Equal(t, []types.Bullet{{Text: "Built ETL pipelines using Python and SQL"}}, exp.Bullets)
}

func TestParseResume_MissingEmail(t *testing.T) {
	inputs := []string{
		"",
		"Jane Doe\nData engineer with Python",
		"Contact me at jane(at)example.com",
		"jane@localhost",
		"john..doe@example.com",
		"me@-host.com",
		"me@host..com",
	}

	for _, input := range inputs {
		resume, err := ParseResume(input)
		assert.Nil(t, resume)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingRequiredField))

		var fieldErr *MissingRequiredFieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "email", fieldErr.Field)
	}
}

func TestParseResume_EmailInsideLine(t *testing.T) {
	resume, err := ParseResume("Jane Doe | jane.doe+jobs@mail.example.org | 555-0100")
	require.NoError(t, err)
	assert.Equal(t, "jane.doe+jobs@mail.example.org", resume.Basics.Email)
	assert.NoError(t, resume.Validate())
}

func TestParseResume_SkipsInvalidEmailCandidates(t *testing.T) {
	resume, err := ParseResume("Jane Doe\nold: me@-host.com\njohn..doe@example.com\njane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resume.Basics.Email)
	assert.NoError(t, resume.Validate())
}

func TestParseResume_NameHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"First line without at sign", "jane@example.com\nJane Doe\nEngineer", "Jane Doe"},
		{"Only email line", "jane@example.com", DefaultCandidateName},
		{"Leading blank lines skipped", "\n\n  Jane Doe  \njane@example.com", "Jane Doe"},
		{"Truncated to 80 characters", strings.Repeat("a", 100) + "\njane@example.com", strings.Repeat("a", 80)},
		{"Truncation counts runes", strings.Repeat("é", 90) + "\njane@example.com", strings.Repeat("é", 80)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resume, err := ParseResume(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resume.Basics.Name)
		})
	}
}

func TestParseResume_SkillsAndTools(t *testing.T) {
	text := `Jane Doe
jane@example.com
Skills: Statistics, Machine Learning, SQL
Tools: Docker, AWS, Pandas, docker`

	resume, err := ParseResume(text)
	require.NoError(t, err)

	names := make([]string, 0, len(resume.Skills))
	for _, s := range resume.Skills {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"machine learning", "sql", "statistics"}, names)
	assert.Equal(t, []string{"aws", "docker", "pandas"}, resume.Tools)
}

func TestParseResume_Bullets(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Glyph bullets are stripped",
			input:    "Jane\njane@example.com\n- Led team\n• Shipped app\n* Cut costs\n--  Double dash",
			expected: []string{"Led team", "Shipped app", "Cut costs", "Double dash"},
		},
		{
			name:     "Long prose lines kept verbatim",
			input:    "Jane\njane@example.com\nReduced report latency by forty percent overall\nShort line",
			expected: []string{"Reduced report latency by forty percent overall"},
		},
		{
			name:     "Fallback to first five lines",
			input:    "Jane\njane@example.com\nBerlin\nEngineer\nPython\nSQL",
			expected: []string{"Jane", "jane@example.com", "Berlin", "Engineer", "Python"},
		},
		{
			name:     "Fallback with fewer lines",
			input:    "jane@example.com",
			expected: []string{"jane@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resume, err := ParseResume(tt.input)
			require.NoError(t, err)
			require.Len(t, resume.Experiences, 1)
			assert.Equal(t, tt.expected, resume.BulletTexts())
		})
	}
}

func TestParseResume_BulletsCappedAtEight(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Jane\njane@example.com\n")
	for i := 0; i < 12; i++ {
		sb.WriteString("- achievement\n")
	}

	resume, err := ParseResume(sb.String())
	require.NoError(t, err)
	assert.Len(t, resume.Experiences[0].Bullets, 8)
}

func TestParseResume_Deterministic(t *testing.T) {
	text := "Jane Doe\njane@example.com\nSkills: python, sql, ml, etl\nTools: aws, docker, numpy\n- Built models with pandas"

	first, err := ParseResume(text)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := ParseResume(text)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestExtractor_CustomVocabulary(t *testing.T) {
	extractor := NewExtractor(skills.NewVocabulary("Go", "Kubernetes"), skills.NewVocabulary("Terraform"))

	resume, err := extractor.ParseResume("Sam\nsam@example.com\n- Ran Kubernetes clusters with Terraform and Go")
	require.NoError(t, err)
	assert.Equal(t, []types.Skill{{Name: "go"}, {Name: "kubernetes"}}, resume.Skills)
	assert.Equal(t, []string{"terraform"}, resume.Tools)
}
