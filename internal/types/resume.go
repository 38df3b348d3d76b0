// Package types provides type definitions for structured data used throughout the career-copilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume represents a candidate resume normalized from free text
type Resume struct {
	Basics      Basics       `json:"basics" validate:"required"`
	Skills      []Skill      `json:"skills" validate:"dive"`
	Tools       []string     `json:"tools"`
	Experiences []Experience `json:"experiences" validate:"dive"`
}

// Basics holds the candidate's identity fields
type Basics struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone,omitempty"`
	Location        string `json:"location,omitempty"`
	YearsExperience int    `json:"years_experience"`
}

// Skill represents a named skill with an optional proficiency level
type Skill struct {
	Name  string `json:"name" validate:"required"`
	Level string `json:"level,omitempty"` // beginner, intermediate, advanced
}

// Experience represents one position held by the candidate
type Experience struct {
	Company   string   `json:"company" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Bullets   []Bullet `json:"bullets"`
}

// Bullet represents a single achievement line
type Bullet struct {
	Text string   `json:"text"`
	Tags []string `json:"tags,omitempty"`
}

// NewBasics builds Basics with years of experience clamped to zero or more.
func NewBasics(name, email string, yearsExperience int) Basics {
	return Basics{
		Name:            name,
		Email:           email,
		YearsExperience: max(0, yearsExperience),
	}
}

// Normalize applies construction invariants to a resume decoded from outside input.
func (r *Resume) Normalize() {
	r.Basics.YearsExperience = max(0, r.Basics.YearsExperience)
	if r.Skills == nil {
		r.Skills = []Skill{}
	}
	if r.Tools == nil {
		r.Tools = []string{}
	}
	if r.Experiences == nil {
		r.Experiences = []Experience{}
	}
	for i := range r.Experiences {
		if r.Experiences[i].Bullets == nil {
			r.Experiences[i].Bullets = []Bullet{}
		}
	}
}

// Validate validates the Resume using the validator.
func (r *Resume) Validate() error {
	return validate.Struct(r)
}

// BulletTexts returns the non-empty bullet texts across all experiences in order.
func (r *Resume) BulletTexts() []string {
	lines := make([]string, 0)
	for _, exp := range r.Experiences {
		for _, b := range exp.Bullets {
			if b.Text != "" {
				lines = append(lines, b.Text)
			}
		}
	}
	return lines
}
