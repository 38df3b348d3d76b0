package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/career-copilot/internal/ingestion"
	"github.com/jonathan/career-copilot/internal/skills"
	"github.com/jonathan/career-copilot/internal/types"
)

// DefaultJobTitle is used when every line looks like a section header
const DefaultJobTitle = "Unknown Role"

// Section is the job posting section a bullet line is collected into
type Section int

const (
	// SectionNone means no header has been seen yet
	SectionNone Section = iota
	// SectionMust collects must-have requirements
	SectionMust
	// SectionNice collects nice-to-have requirements
	SectionNice
	// SectionResponsibilities collects responsibilities
	SectionResponsibilities
	// SectionTools collects tools and technologies
	SectionTools
)

func (s Section) String() string {
	switch s {
	case SectionMust:
		return "must"
	case SectionNice:
		return "nice"
	case SectionResponsibilities:
		return "resp"
	case SectionTools:
		return "tools"
	default:
		return "none"
	}
}

// sectionRule maps a header pattern to the section it opens
type sectionRule struct {
	pattern *regexp.Regexp
	section Section
}

// sectionRules are evaluated in order; the first match wins.
var sectionRules = []sectionRule{
	{regexp.MustCompile(`(?i)requirement|qualification|must[- ]have`), SectionMust},
	{regexp.MustCompile(`(?i)preferred|nice[- ]to[- ]have|plus`), SectionNice},
	{regexp.MustCompile(`(?i)responsibilit|duties|what you.*do`), SectionResponsibilities},
	{regexp.MustCompile(`(?i)tool|tech|stack|technology`), SectionTools},
}

var (
	// bulletLine matches glyph-prefixed lines; the numbered-item branch is unanchored
	// and accepts any line containing a digit followed by a period
	bulletLine = regexp.MustCompile(`^(\s*[-*•]\s+)|(.{0,2}\d\.)`)
	// titleHeader rejects header-looking lines as the posting title
	titleHeader = regexp.MustCompile(`(?i)(requirement|qualification|responsibilit|duties|preferred|nice[- ]to[- ]have|tools|stack|technology)`)
)

const bulletPrefixChars = "-*•0123456789. "

// ParseJob extracts a Job from raw posting text using the seed vocabularies.
func ParseJob(text string) *types.Job {
	return DefaultExtractor().ParseJob(text)
}

// ParseJob extracts a Job from raw posting text. It never fails; undetectable
// structure falls back to keyword mining against the vocabularies.
func (e *Extractor) ParseJob(text string) *types.Job {
	lines := ingestion.SplitLines(text)
	collected := collectSections(lines)

	must := collected[SectionMust]
	if len(must) == 0 {
		must = e.skills.Match(text)
	}
	tools := collected[SectionTools]
	if len(tools) == 0 {
		tools = e.tools.Match(text)
	}

	responsibilities := make([]string, 0, types.MaxResponsibilities)
	for _, item := range collected[SectionResponsibilities] {
		if len(responsibilities) == types.MaxResponsibilities {
			break
		}
		responsibilities = append(responsibilities, item)
	}

	return &types.Job{
		Title:            detectTitle(lines),
		YearsRequired:    0,
		MustHave:         skills.Dedupe(must),
		NiceToHave:       skills.Dedupe(collected[SectionNice]),
		Tools:            skills.Dedupe(tools),
		Responsibilities: responsibilities,
	}
}

// MatchSection reports the section a header line opens, if any.
func MatchSection(line string) (Section, bool) {
	for _, rule := range sectionRules {
		if rule.pattern.MatchString(line) {
			return rule.section, true
		}
	}
	return SectionNone, false
}

// collectSections runs the header/bullet state machine over the lines.
func collectSections(lines []string) map[Section][]string {
	collected := make(map[Section][]string)
	current := SectionNone

	for _, line := range lines {
		if section, ok := MatchSection(line); ok {
			current = section
			continue
		}
		if current == SectionNone || !bulletLine.MatchString(line) {
			continue
		}
		item := strings.TrimSpace(strings.TrimLeft(line, bulletPrefixChars))
		if item != "" {
			collected[current] = append(collected[current], item)
		}
	}
	return collected
}

// detectTitle returns the first line that does not look like a section header.
func detectTitle(lines []string) string {
	for _, line := range lines {
		if !titleHeader.MatchString(line) {
			return line
		}
	}
	return DefaultJobTitle
}
