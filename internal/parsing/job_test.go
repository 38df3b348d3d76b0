package parsing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJob_Sections(t *testing.T) {
	text := "Requirements:\n- Python\n- SQL\nPreferred:\n- Docker"

	job := ParseJob(text)
	require.NotNil(t, job)

	assert.Equal(t, []string{"Python", "SQL"}, job.MustHave)
	assert.Equal(t, []string{"Docker"}, job.NiceToHave)
	assert.Equal(t, []string{"docker"}, job.Tools) // fallback mining, lower-case seed terms
	assert.Empty(t, job.Responsibilities)
	// the first line that is not a header becomes the title, even a bullet
	assert.Equal(t, "- Python", job.Title)
}

func TestParseJob_EmptyText(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\r\n"} {
		job := ParseJob(input)
		require.NotNil(t, job)

		assert.Equal(t, DefaultJobTitle, job.Title)
		assert.Equal(t, []string{}, job.MustHave)
		assert.Equal(t, []string{}, job.NiceToHave)
		assert.Equal(t, []string{}, job.Tools)
		assert.Equal(t, []string{}, job.Responsibilities)
		assert.Equal(t, 0, job.YearsRequired)
	}
}

func TestParseJob_FullPosting(t *testing.T) {
	text := `Senior Data Engineer
Acme Analytics is hiring.

What you will do:
- Own batch pipelines
- Partner with analysts

Qualifications
1. Python
2. SQL
- Spark
Excellent communication skills

Nice to have
* Airflow

Tech stack
- Docker
- AWS
- Docker`

	job := ParseJob(text)

	assert.Equal(t, "Senior Data Engineer", job.Title)
	assert.Equal(t, []string{"Own batch pipelines", "Partner with analysts"}, job.Responsibilities)
	assert.Equal(t, []string{"Python", "SQL", "Spark"}, job.MustHave)
	assert.Equal(t, []string{"Airflow"}, job.NiceToHave)
	assert.Equal(t, []string{"AWS", "Docker"}, job.Tools)
}

func TestParseJob_HeaderPriority(t *testing.T) {
	tests := []struct {
		line     string
		expected Section
	}{
		{"Requirements:", SectionMust},
		{"Minimum Qualifications", SectionMust},
		{"Must-have skills", SectionMust},
		{"Must have", SectionMust},
		{"Preferred qualifications", SectionMust}, // requirement rule is checked first
		{"Preferred", SectionNice},
		{"Nice-to-have", SectionNice},
		{"Bonus points (a plus)", SectionNice},
		{"Responsibilities", SectionResponsibilities},
		{"Duties", SectionResponsibilities},
		{"What you'll do", SectionResponsibilities},
		{"Our stack", SectionTools},
		{"Technology", SectionTools},
		{"Tooling", SectionTools},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			section, ok := MatchSection(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.expected, section, "got %s", section)
		})
	}

	_, ok := MatchSection("Senior Data Engineer")
	assert.False(t, ok)
}

func TestParseJob_BulletsIgnoredBeforeFirstHeader(t *testing.T) {
	text := "Data Analyst\n- Python\n- Excel\nRequirements\n- SQL"

	job := ParseJob(text)
	assert.Equal(t, []string{"SQL"}, job.MustHave)
}

func TestParseJob_NonBulletLinesKeepState(t *testing.T) {
	text := "Analyst\nRequirements\nYou should bring:\n- SQL\nsome prose line\n- Tableau"

	job := ParseJob(text)
	assert.Equal(t, []string{"SQL", "Tableau"}, job.MustHave)
}

func TestParseJob_FallbackKeywordMining(t *testing.T) {
	text := "ML Engineer\nWe use Python, SQL and statistics every day on AWS with Docker."

	job := ParseJob(text)
	assert.Equal(t, "ML Engineer", job.Title)
	assert.Equal(t, []string{"ml", "python", "sql", "statistics"}, job.MustHave)
	assert.Equal(t, []string{"aws", "docker"}, job.Tools)
	assert.Empty(t, job.NiceToHave)
}

func TestParseJob_ResponsibilitiesCapped(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Engineer\nResponsibilities\n")
	for i := 0; i < 25; i++ {
		sb.WriteString(fmt.Sprintf("- task %c\n", 'a'+i))
	}

	job := ParseJob(sb.String())
	require.Len(t, job.Responsibilities, 20)
	assert.Equal(t, "task a", job.Responsibilities[0])
	assert.Equal(t, "task t", job.Responsibilities[19])
}

func TestParseJob_ResponsibilitiesKeepOrderAndDuplicates(t *testing.T) {
	job := ParseJob("Engineer\nDuties\n- Review code\n- Deploy\n- Review code")
	assert.Equal(t, []string{"Review code", "Deploy", "Review code"}, job.Responsibilities)
}

func TestParseJob_SetsDeduplicatedAndSorted(t *testing.T) {
	job := ParseJob("Engineer\nRequirements\n- SQL\n- Python\n- SQL\n- Go")
	assert.Equal(t, []string{"Go", "Python", "SQL"}, job.MustHave)
}

func TestParseJob_AllHeaders(t *testing.T) {
	job := ParseJob("Requirements\nResponsibilities\nTools")
	assert.Equal(t, DefaultJobTitle, job.Title)
}

func TestParseJob_NeverPanics(t *testing.T) {
	inputs := []string{
		"1.",
		"- ",
		"Requirements\n1.\n-\n•",
		strings.Repeat("Requirements\n- x\n", 100),
		"\x00\xff\xfe",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() { _ = ParseJob(input) })
	}
}
