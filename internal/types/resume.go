// Package types provides type definitions for structured data used throughout the resume analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Contact holds the contact header fields extracted from a resume.
// Any field may be empty when the parser could not find it.
type Contact struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// Experience represents a single work history entry.
// Dates are free-form strings; each consumer parses them independently.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description,omitempty"`
}

// Education represents a single education entry.
type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// Certification represents a professional certification by name.
type Certification struct {
	Name string `json:"name"`
}

// Metadata holds document-level facts captured by the parser.
type Metadata struct {
	PageCount  int    `json:"page_count"`
	WordCount  int    `json:"word_count"`
	HasPhoto   bool   `json:"has_photo"`
	FileFormat string `json:"file_format,omitempty"`
}

// ResumeRecord is the parsed resume handed to the evaluation engine.
// It is treated as immutable for the duration of one evaluation.
type ResumeRecord struct {
	Contact        Contact         `json:"contact"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []string        `json:"skills"`
	Certifications []Certification `json:"certifications,omitempty"`
	Metadata       Metadata        `json:"metadata"`

	// RawText is the full extracted document text, used for structural
	// checks and keyword matching where section boundaries do not matter.
	RawText string `json:"raw_text,omitempty"`
}

// ExperienceText concatenates all experience descriptions into one block.
func (r *ResumeRecord) ExperienceText() string {
	var out string
	for _, exp := range r.Experience {
		if exp.Description == "" {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += exp.Description
	}
	return out
}
