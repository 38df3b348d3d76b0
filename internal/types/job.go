// Package types provides type definitions for structured data used throughout the career-copilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MaxResponsibilities caps the number of responsibilities kept on a Job
const MaxResponsibilities = 20

// Job represents a job posting normalized from free text
type Job struct {
	Title            string   `json:"title" validate:"required"`
	Company          string   `json:"company,omitempty"`
	Location         string   `json:"location,omitempty"`
	YearsRequired    int      `json:"years_required" validate:"gte=0"`
	MustHave         []string `json:"must_have"`
	NiceToHave       []string `json:"nice_to_have"`
	Tools            []string `json:"tools"`
	Responsibilities []string `json:"responsibilities" validate:"max=20"`
}

// Normalize fills nil collections so the record always serializes with lists.
func (j *Job) Normalize() {
	j.YearsRequired = max(0, j.YearsRequired)
	if j.MustHave == nil {
		j.MustHave = []string{}
	}
	if j.NiceToHave == nil {
		j.NiceToHave = []string{}
	}
	if j.Tools == nil {
		j.Tools = []string{}
	}
	if j.Responsibilities == nil {
		j.Responsibilities = []string{}
	}
}

// Validate validates the Job using the validator.
func (j *Job) Validate() error {
	return validate.Struct(j)
}
