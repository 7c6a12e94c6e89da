// Package pipeline implements uploadResume, the single externally visible
// operation of the résumé ingestion system: decode, extract, score, persist.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/learnbot/resume-pipeline/internal/decode"
	"github.com/learnbot/resume-pipeline/internal/experience"
	"github.com/learnbot/resume-pipeline/internal/orchestrator"
	"github.com/learnbot/resume-pipeline/internal/schema"
	"github.com/learnbot/resume-pipeline/internal/section"
)

const (
	primaryBucket = "resumes"
	legacyPrefix  = "profile-images/"
)

var allowedExtensions = map[string]bool{"pdf": true, "docx": true, "doc": true}

// BlobStore is the subset of the object store the pipeline depends on.
type BlobStore interface {
	Upload(ctx context.Context, bucket, path string, content []byte, contentType string) error
	Remove(ctx context.Context, bucket string, paths []string) error
}

// MetadataStore is the subset of the Postgres-backed store the pipeline
// depends on, one method per entity it reads or writes.
type MetadataStore interface {
	GetProfileIDBySubject(ctx context.Context, subjectID string) (uuid.UUID, error)
	PriorResumeBlobPaths(ctx context.Context, profileID uuid.UUID) ([]string, error)
	ClearResumes(ctx context.Context, profileID uuid.UUID) error
	InsertResume(ctx context.Context, profileID uuid.UUID, filePath, originalFilename, fileType, extractedText string, parsedData []byte) (uuid.UUID, error)
	ReplaceExperience(ctx context.Context, profileID, resumeID uuid.UUID, entries []schema.Experience) error
	ReplaceEducation(ctx context.Context, profileID, resumeID uuid.UUID, entries []schema.Education) error
	ReplaceCertifications(ctx context.Context, profileID, resumeID uuid.UUID, entries []schema.Certification) error
	ReplaceSkillsAndHospitals(ctx context.Context, profileID uuid.UUID, skills, hospitals []string) error
	FillEmptyProfileFields(ctx context.Context, profileID uuid.UUID, bio, address string, graduationYear *int, yearsOfExperience int) error
}

// Clock returns milliseconds since epoch, used to build a unique blob path.
// Substituted by tests; the pipeline's only caller to the wall clock.
type Clock func() int64

// Pipeline wires the three external collaborators
// together behind a single uploadResume operation.
type Pipeline struct {
	blobs         BlobStore
	meta          MetadataStore
	orch          *orchestrator.Orchestrator
	now           Clock
	marshalRecord func(*schema.ParsedRecord) ([]byte, error)
}

// New builds a Pipeline. marshalRecord defaults to encoding/json.Marshal
// when nil — callers only override it in tests.
func New(blobs BlobStore, meta MetadataStore, orch *orchestrator.Orchestrator, now Clock, marshalRecord func(*schema.ParsedRecord) ([]byte, error)) *Pipeline {
	if marshalRecord == nil {
		marshalRecord = defaultMarshal
	}
	return &Pipeline{blobs: blobs, meta: meta, orch: orch, now: now, marshalRecord: marshalRecord}
}

// Upload resolves the subject's profile, validates and stores the file,
// decodes and extracts its text, and persists the resulting record.
func (p *Pipeline) Upload(ctx context.Context, req schema.UploadRequest) (*schema.UploadResult, error) {
	profileID, err := p.meta.GetProfileIDBySubject(ctx, req.SubjectID)
	if err != nil {
		return nil, &schema.ParseError{Code: schema.CodeNotFound, Message: "no profile for subject"}
	}

	ext := req.FileType
	if ext == "" {
		ext = strings.ToLower(strings.TrimPrefix(filepath.Ext(req.FileName), "."))
	}
	if !allowedExtensions[ext] {
		return nil, &schema.ParseError{Code: schema.CodeUnsupportedFormat, Message: fmt.Sprintf("unsupported extension %q", ext)}
	}

	path := fmt.Sprintf("%s/%d.%s", profileID.String(), p.now(), ext)
	contentType := contentTypeFor(ext)
	if err := p.blobs.Upload(ctx, primaryBucket, path, req.FileContent, contentType); err != nil {
		legacyPath := legacyPrefix + path
		if fallbackErr := p.blobs.Upload(ctx, primaryBucket, legacyPath, req.FileContent, contentType); fallbackErr != nil {
			return nil, &schema.ParseError{Code: schema.CodeStorageError, Message: "failed to upload to primary and legacy paths"}
		}
		path = legacyPath
	}

	result := &schema.UploadResult{ParserVersion: schema.ParserVersion}
	var warning string
	text, decodeErr := decode.Text(req.FileContent, ext, req.FileName)
	if decodeErr != nil {
		warning = fmt.Sprintf("could not extract text: %v", decodeErr)
		text = ""
	}
	result.HasText = text != ""
	result.Warning = warning

	var record *schema.ParsedRecord
	if text != "" {
		record = p.orch.Run(ctx, text)
		result.Record = record
		result.SectionsFound = section.New(text).FoundKinds()
	}

	priorPaths, err := p.meta.PriorResumeBlobPaths(ctx, profileID)
	if err == nil && len(priorPaths) > 0 {
		_ = p.blobs.Remove(ctx, primaryBucket, priorPaths)
	}
	if err := p.meta.ClearResumes(ctx, profileID); err != nil {
		return nil, &schema.ParseError{Code: schema.CodePersistenceError, Message: "failed to clear prior resume rows"}
	}

	parsedJSON, err := p.marshalRecord(record)
	if err != nil {
		parsedJSON = nil
	}
	resumeID, err := p.meta.InsertResume(ctx, profileID, path, req.FileName, ext, text, parsedJSON)
	if err != nil {
		return nil, &schema.ParseError{Code: schema.CodePersistenceError, Message: "failed to persist resume metadata"}
	}
	result.ResumeID = resumeID.String()

	if record != nil {
		if err := p.persistRecord(ctx, profileID, resumeID, record); err != nil {
			return nil, &schema.ParseError{Code: schema.CodePersistenceError, Message: "failed to persist parsed record"}
		}
	}

	return result, nil
}

func (p *Pipeline) persistRecord(ctx context.Context, profileID, resumeID uuid.UUID, record *schema.ParsedRecord) error {
	experiences := filterSaneExperience(record.Experience)
	if err := p.meta.ReplaceExperience(ctx, profileID, resumeID, experiences); err != nil {
		return err
	}
	if err := p.meta.ReplaceEducation(ctx, profileID, resumeID, toISOEducation(record.Education)); err != nil {
		return err
	}
	if err := p.meta.ReplaceCertifications(ctx, profileID, resumeID, record.Certifications); err != nil {
		return err
	}
	if err := p.meta.ReplaceSkillsAndHospitals(ctx, profileID, record.Skills, record.Hospitals); err != nil {
		return err
	}
	return p.meta.FillEmptyProfileFields(ctx, profileID, record.Summary, record.Address, record.GraduationYear, record.YearsOfExperience)
}

// filterSaneExperience drops entries whose employer "looks like a sentence"
// and normalises dates and type before persistence.
func filterSaneExperience(entries []schema.Experience) []schema.Experience {
	out := make([]schema.Experience, 0, len(entries))
	for _, e := range entries {
		if experience.LooksLikeSentence(e.Employer) {
			continue
		}
		if !schema.ValidExperienceTypes[e.Type] {
			e.Type = schema.ExperienceEmployment
		}
		e.StartDate = toDateString(e.StartDate)
		e.EndDate = toDateString(e.EndDate)
		out = append(out, e)
	}
	return out
}

func toISOEducation(entries []schema.Education) []schema.Education {
	out := make([]schema.Education, 0, len(entries))
	for _, e := range entries {
		e.StartDate = toDateString(e.StartDate)
		e.EndDate = toDateString(e.EndDate)
		out = append(out, e)
	}
	return out
}

func contentTypeFor(ext string) string {
	switch ext {
	case "pdf":
		return "application/pdf"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "doc":
		return "application/msword"
	default:
		return "application/octet-stream"
	}
}
