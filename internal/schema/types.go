// Package schema defines the core data structures for the résumé pipeline.
package schema

import "time"

// ExperienceType classifies how a work entry relates to employment.
type ExperienceType string

const (
	ExperienceEmployment        ExperienceType = "employment"
	ExperienceClinicalPlacement ExperienceType = "clinical_placement"
	ExperienceOJT               ExperienceType = "ojt"
	ExperienceVolunteer         ExperienceType = "volunteer"
)

// ValidExperienceTypes lists every type accepted at persistence time.
var ValidExperienceTypes = map[ExperienceType]bool{
	ExperienceEmployment:        true,
	ExperienceClinicalPlacement: true,
	ExperienceOJT:               true,
	ExperienceVolunteer:         true,
}

// Experience represents a single work, clinical, OJT, or volunteer entry.
// An entry only exists if a start date was detected; a nominal entry with
// only an employer is dropped before it reaches this type.
type Experience struct {
	Employer    string         `json:"employer,omitempty"`
	Position    string         `json:"position,omitempty"`
	Type        ExperienceType `json:"type"`
	Department  string         `json:"department,omitempty"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date,omitempty"`
	Description string         `json:"description,omitempty"`
	Location    string         `json:"location,omitempty"`
}

// Education represents a single academic entry.
type Education struct {
	Institution         string `json:"institution,omitempty"`
	Degree              string `json:"degree,omitempty"`
	FieldOfStudy        string `json:"field_of_study,omitempty"`
	Year                *int   `json:"year,omitempty"`
	InstitutionLocation string `json:"institution_location,omitempty"`
	StartDate           string `json:"start_date,omitempty"`
	EndDate             string `json:"end_date,omitempty"`
	Status              string `json:"status,omitempty"`
}

// Certification represents a license or credential with an optional number
// or score, extracted from an anchored context (never a global match).
type Certification struct {
	Type   string `json:"type"`
	Number string `json:"number,omitempty"`
	Score  string `json:"score,omitempty"`
}

// ParsedRecord is the single in-memory result of a parse.
type ParsedRecord struct {
	Summary           string          `json:"summary,omitempty"`
	Address           string          `json:"address,omitempty"`
	GraduationYear    *int            `json:"graduation_year,omitempty"`
	YearsOfExperience int             `json:"years_of_experience"`
	Salary            string          `json:"salary,omitempty"`
	Hospitals         []string        `json:"hospitals,omitempty"`
	Skills            []string        `json:"skills,omitempty"`
	Certifications    []Certification `json:"certifications,omitempty"`
	Experience        []Experience    `json:"experience,omitempty"`
	Education         []Education     `json:"education,omitempty"`
}

// ParseError is a structured error produced by the decode and extraction
// stages. Only UnsupportedFormat, NotFound, BadRequest, StorageError, and
// PersistenceError ever escape to a caller; the rest are downgraded to a
// warning or silently absorbed per the error taxonomy.
type ParseError struct {
	Code    string
	Message string
}

func (e *ParseError) Error() string {
	return e.Code + ": " + e.Message
}

// Error codes — the exit-kind taxonomy.
const (
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeBadRequest        = "BAD_REQUEST"
	CodeNotFound          = "NOT_FOUND"
	CodeStorageError      = "STORAGE_ERROR"
	CodeExtractionFailed  = "EXTRACTION_FAILED"
	CodeLlmUnavailable    = "LLM_UNAVAILABLE"
	CodePersistenceError  = "PERSISTENCE_ERROR"
	CodeConflict          = "CONFLICT"
)

// UploadRequest is the input to the pipeline's single externally visible
// operation.
type UploadRequest struct {
	SubjectID   string
	FileName    string
	FileContent []byte
	FileType    string // "pdf" | "docx" | "doc", inferred from FileName if empty
}

// UploadResult is the output of uploadResume.
type UploadResult struct {
	ResumeID string
	HasText  bool
	Record   *ParsedRecord
	Warning  string

	// SectionsFound and ParserVersion are diagnostic-only: useful
	// operational signal returned in the response envelope, never persisted
	// as part of the record itself.
	SectionsFound []string
	ParserVersion string
}

const ParserVersion = "1.0.0"

var now = time.Now

// Now returns the current time in UTC, the pipeline's single time source.
func Now() time.Time { return now().UTC() }
