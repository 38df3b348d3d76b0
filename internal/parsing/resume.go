package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/career-copilot/internal/ingestion"
	"github.com/jonathan/career-copilot/internal/types"
)

const (
	// DefaultCandidateName is used when no line qualifies as a name
	DefaultCandidateName = "Candidate"
	// PlaceholderCompany and PlaceholderTitle label the single synthetic experience
	PlaceholderCompany = "Unknown Co"
	PlaceholderTitle   = "Unknown Title"

	maxNameLength       = 80
	maxResumeBullets    = 8
	fallbackBullets     = 5
	minProseBulletWords = 6
	bulletGlyphs        = "-•*"
)

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// ParseResume extracts a Resume from raw text using the seed vocabularies.
func ParseResume(text string) (*types.Resume, error) {
	return DefaultExtractor().ParseResume(text)
}

// ParseResume extracts a Resume from raw text.
// It fails with a MissingRequiredFieldError when the text contains no valid email address.
func (e *Extractor) ParseResume(text string) (*types.Resume, error) {
	lines := ingestion.SplitLines(text)

	email := detectEmail(text)
	if email == "" {
		return nil, &MissingRequiredFieldError{
			Field:   "email",
			Message: "could not detect an email address in resume text",
		}
	}

	skillNames := e.skills.Match(text)
	resumeSkills := make([]types.Skill, 0, len(skillNames))
	for _, name := range skillNames {
		resumeSkills = append(resumeSkills, types.Skill{Name: name})
	}

	// Multiple positions are not segmented; every bullet lands on one placeholder experience
	experience := types.Experience{
		Company: PlaceholderCompany,
		Title:   PlaceholderTitle,
		Bullets: extractBullets(lines),
	}

	return &types.Resume{
		Basics:      types.NewBasics(detectName(lines), email, 0),
		Skills:      resumeSkills,
		Tools:       e.tools.Match(text),
		Experiences: []types.Experience{experience},
	}, nil
}

// detectEmail returns the first email-shaped substring of text that passes record validation.
// Emails may share a line with other content, so the raw text is searched.
func detectEmail(text string) string {
	for _, candidate := range emailPattern.FindAllString(text, -1) {
		if types.ValidEmail(candidate) {
			return candidate
		}
	}
	return ""
}

// detectName returns the first line without an '@', truncated to maxNameLength runes.
func detectName(lines []string) string {
	for _, line := range lines {
		if strings.Contains(line, "@") {
			continue
		}
		runes := []rune(line)
		if len(runes) > maxNameLength {
			return string(runes[:maxNameLength])
		}
		return line
	}
	return DefaultCandidateName
}

// extractBullets keeps glyph-prefixed lines and long prose lines, falling back to the first lines.
func extractBullets(lines []string) []types.Bullet {
	bullets := make([]types.Bullet, 0, maxResumeBullets)
	for _, line := range lines {
		if !isResumeBullet(line) {
			continue
		}
		bullets = append(bullets, types.Bullet{Text: strings.TrimSpace(strings.TrimLeft(line, bulletGlyphs+" "))})
		if len(bullets) == maxResumeBullets {
			return bullets
		}
	}

	if len(bullets) == 0 {
		for _, line := range lines[:min(fallbackBullets, len(lines))] {
			bullets = append(bullets, types.Bullet{Text: line})
		}
	}
	return bullets
}

func isResumeBullet(line string) bool {
	if line != "" && strings.ContainsRune(bulletGlyphs, []rune(line)[0]) {
		return true
	}
	return len(strings.Fields(line)) >= minProseBulletWords
}
