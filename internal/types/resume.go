// Package types provides type definitions for structured data used throughout the CV analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// ContactInfo holds contact details recovered from the top of a resume.
// Every field is best-effort; empty string means not found.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Location string `json:"location,omitempty"`
}

// Experience represents one work-history entry.
type Experience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	DateRange   string `json:"date_range,omitempty"`
	Description string `json:"description"`
}

// Education represents one education entry.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	DateRange   string `json:"date_range,omitempty"`
	Description string `json:"description"`
}

// Project represents one project entry with the technologies detected in it.
type Project struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// ResumeEntities is the structured output of entity extraction.
// Section slices are always non-nil; a missing section is an empty slice,
// never null, so downstream scoring arithmetic needs no nil checks.
type ResumeEntities struct {
	ContactInfo    ContactInfo  `json:"contact_info"`
	Summary        string       `json:"summary"`
	Skills         []string     `json:"skills"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Projects       []Project    `json:"projects"`
	Certifications []string     `json:"certifications"`

	// FullText is the verbatim extracted text, retained for scoring.
	// Stripped from serialized reports.
	FullText string `json:"full_text,omitempty"`

	// FileFormat describes the source document as seen by the extractor.
	FileFormat FileFormat `json:"file_format"`
}

// FileFormat carries document-level signals that feed ATS scoring.
type FileFormat struct {
	Extension string `json:"extension"`
	// HasProblematicElements is true when the structural classifier found
	// tables, raster images or a multi-column layout in the source file.
	HasProblematicElements bool `json:"has_problematic_elements"`
}

// NewResumeEntities returns an empty record with all collections initialized.
func NewResumeEntities() *ResumeEntities {
	return &ResumeEntities{
		Skills:         []string{},
		Experience:     []Experience{},
		Education:      []Education{},
		Projects:       []Project{},
		Certifications: []string{},
	}
}

// HasSkill reports whether the given normalized skill is present.
func (r *ResumeEntities) HasSkill(skill string) bool {
	for _, s := range r.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// SortSkills sorts the skill list in place for deterministic output.
func (r *ResumeEntities) SortSkills() {
	sort.Strings(r.Skills)
}
