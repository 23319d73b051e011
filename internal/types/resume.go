// Package types provides type definitions for structured data used throughout the resume-builder system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ResumeRecord is the canonical input to rendering and previewing.
// All fields are optional at the record level; list entries carry their own
// required sub-fields, enforced at the collection boundary via Validate.
// Dates are opaque strings and are rendered verbatim.
type ResumeRecord struct {
	Name     string `json:"name,omitempty"`
	Title    string `json:"title,omitempty"`
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`

	Skills       []string           `json:"skills,omitempty"`
	Experience   []ExperienceEntry  `json:"experience,omitempty" validate:"dive"`
	Education    []EducationEntry   `json:"education,omitempty" validate:"dive"`
	Projects     []ProjectEntry     `json:"projects,omitempty" validate:"dive"`
	Certificates []CertificateEntry `json:"certificates,omitempty" validate:"dive"`
	Languages    []string           `json:"languages,omitempty"`
	Interests    []string           `json:"interests,omitempty"`
}

// ExperienceEntry is a single work experience item.
type ExperienceEntry struct {
	Title       string `json:"title" validate:"required,min=1"`
	Company     string `json:"company" validate:"required,min=1"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is a single education item.
type EducationEntry struct {
	Degree      string `json:"degree" validate:"required,min=1"`
	University  string `json:"university,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	CGPA        string `json:"cgpa,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProjectEntry is a single project item.
type ProjectEntry struct {
	Title       string `json:"title" validate:"required,min=1"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Company     string `json:"company,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Description string `json:"description,omitempty"`
}

// CertificateEntry is a single course or certificate item.
type CertificateEntry struct {
	Title        string `json:"title" validate:"required,min=1"`
	Organization string `json:"organization,omitempty"`
	Date         string `json:"date,omitempty"`
}

// Validate checks required sub-fields of list entries (experience title/company,
// education degree, project title, certificate title). The renderer itself performs
// no validation; callers collecting records are expected to run this first.
func (r *ResumeRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
