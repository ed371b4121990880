// Package types provides type definitions for structured data used throughout the resume-parser system.
package types

import (
	"github.com/google/uuid"
)

// PersonalInfo holds the candidate identity and contact fields recovered from
// the resume header. Every field is independently optional; an empty string
// means the extractor found no signal for that field.
type PersonalInfo struct {
	Name         string `json:"name,omitempty"`
	Role         string `json:"role,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Location     string `json:"location,omitempty"`
	LinkedInURL  string `json:"linkedin_url,omitempty"`
	PortfolioURL string `json:"portfolio_url,omitempty"`
}

// IsEmpty reports whether no personal info field was recovered.
func (p *PersonalInfo) IsEmpty() bool {
	return p.Name == "" && p.Role == "" && p.Email == "" && p.Phone == "" &&
		p.Location == "" && p.LinkedInURL == "" && p.PortfolioURL == ""
}

// Summary holds the professional summary paragraph, capped at 500 characters.
type Summary struct {
	Content string `json:"content"`
}

// ExperienceEntry represents a single work history record.
// EndDate is nil for a current position.
type ExperienceEntry struct {
	ID          uuid.UUID `json:"id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Location    string    `json:"location,omitempty"`
	StartDate   string    `json:"start_date,omitempty"` // YYYY-MM or empty
	EndDate     *string   `json:"end_date"`             // YYYY-MM, nil when current
	IsCurrent   bool      `json:"is_current"`
	Description string    `json:"description,omitempty"`
	Order       int       `json:"order"`
}

// EducationEntry represents a single education record.
type EducationEntry struct {
	ID             uuid.UUID `json:"id"`
	Institution    string    `json:"institution,omitempty"`
	Degree         string    `json:"degree"`
	Field          string    `json:"field,omitempty"`
	GraduationDate string    `json:"graduation_date,omitempty"` // YYYY-MM
	Location       string    `json:"location,omitempty"`
	Description    string    `json:"description,omitempty"`
	Order          int       `json:"order"`
}

// SkillEntry represents a single skill grouped under a category heading.
type SkillEntry struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Order    int       `json:"order"`
}

// ExtractionResult aggregates everything recovered from one resume document.
// Sub-objects are nil (not empty shells) when no signal was found, so
// presence in the serialized result is itself informative.
type ExtractionResult struct {
	PersonalInfo *PersonalInfo     `json:"personal_info,omitempty"`
	Summary      *Summary          `json:"summary,omitempty"`
	Experience   []ExperienceEntry `json:"experience,omitempty"`
	Education    []EducationEntry  `json:"education,omitempty"`
	Skills       []SkillEntry      `json:"skills,omitempty"`
	Confidence   float64           `json:"confidence"`
}
