package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/learnbot/resume-pipeline/internal/orchestrator"
	"github.com/learnbot/resume-pipeline/internal/schema"
)

type fakeBlobStore struct {
	uploadErr     error
	uploadCalls   int
	failFirstCall bool
	removedPaths  []string
}

func (f *fakeBlobStore) Upload(ctx context.Context, bucket, path string, content []byte, contentType string) error {
	f.uploadCalls++
	if f.failFirstCall && f.uploadCalls == 1 {
		return errors.New("primary bucket unavailable")
	}
	return f.uploadErr
}

func (f *fakeBlobStore) Remove(ctx context.Context, bucket string, paths []string) error {
	f.removedPaths = append(f.removedPaths, paths...)
	return nil
}

type fakeMetadataStore struct {
	profileID       uuid.UUID
	noProfile       bool
	priorPaths      []string
	clearResumesErr error
	insertResumeErr error
	replaceErr      error
	filledBio       string
	filledAddress   string

	blobs          *fakeBlobStore
	removedAtClear int
}

func (f *fakeMetadataStore) GetProfileIDBySubject(ctx context.Context, subjectID string) (uuid.UUID, error) {
	if f.noProfile {
		return uuid.UUID{}, errors.New("not found")
	}
	return f.profileID, nil
}

func (f *fakeMetadataStore) PriorResumeBlobPaths(ctx context.Context, profileID uuid.UUID) ([]string, error) {
	return f.priorPaths, nil
}

func (f *fakeMetadataStore) ClearResumes(ctx context.Context, profileID uuid.UUID) error {
	if f.blobs != nil {
		f.removedAtClear = len(f.blobs.removedPaths)
	}
	return f.clearResumesErr
}

func (f *fakeMetadataStore) InsertResume(ctx context.Context, profileID uuid.UUID, filePath, originalFilename, fileType, extractedText string, parsedData []byte) (uuid.UUID, error) {
	if f.insertResumeErr != nil {
		return uuid.UUID{}, f.insertResumeErr
	}
	return uuid.New(), nil
}

func (f *fakeMetadataStore) ReplaceExperience(ctx context.Context, profileID, resumeID uuid.UUID, entries []schema.Experience) error {
	return f.replaceErr
}

func (f *fakeMetadataStore) ReplaceEducation(ctx context.Context, profileID, resumeID uuid.UUID, entries []schema.Education) error {
	return f.replaceErr
}

func (f *fakeMetadataStore) ReplaceCertifications(ctx context.Context, profileID, resumeID uuid.UUID, entries []schema.Certification) error {
	return f.replaceErr
}

func (f *fakeMetadataStore) ReplaceSkillsAndHospitals(ctx context.Context, profileID uuid.UUID, skills, hospitals []string) error {
	return f.replaceErr
}

func (f *fakeMetadataStore) FillEmptyProfileFields(ctx context.Context, profileID uuid.UUID, bio, address string, graduationYear *int, yearsOfExperience int) error {
	f.filledBio = bio
	f.filledAddress = address
	return nil
}

func fixedClock() int64 { return 1700000000000 }

func newTestPipeline(blobs *fakeBlobStore, meta *fakeMetadataStore) *Pipeline {
	return New(blobs, meta, orchestrator.New(nil), fixedClock, nil)
}

func TestUpload_NoProfileFailsNotFound(t *testing.T) {
	meta := &fakeMetadataStore{noProfile: true}
	p := newTestPipeline(&fakeBlobStore{}, meta)

	_, err := p.Upload(context.Background(), schema.UploadRequest{SubjectID: "sub-1", FileName: "resume.pdf"})
	var parseErr *schema.ParseError
	if !errors.As(err, &parseErr) || parseErr.Code != schema.CodeNotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestUpload_UnsupportedExtensionFailsBadFormat(t *testing.T) {
	meta := &fakeMetadataStore{profileID: uuid.New()}
	p := newTestPipeline(&fakeBlobStore{}, meta)

	_, err := p.Upload(context.Background(), schema.UploadRequest{SubjectID: "sub-1", FileName: "resume.exe"})
	var parseErr *schema.ParseError
	if !errors.As(err, &parseErr) || parseErr.Code != schema.CodeUnsupportedFormat {
		t.Fatalf("expected UnsupportedFormat, got %v", err)
	}
}

func TestUpload_BothBucketsFailIsStorageError(t *testing.T) {
	meta := &fakeMetadataStore{profileID: uuid.New()}
	blobs := &fakeBlobStore{uploadErr: errors.New("down")}
	p := newTestPipeline(blobs, meta)

	_, err := p.Upload(context.Background(), schema.UploadRequest{SubjectID: "sub-1", FileName: "resume.pdf", FileContent: []byte("%PDF-1.4")})
	var parseErr *schema.ParseError
	if !errors.As(err, &parseErr) || parseErr.Code != schema.CodeStorageError {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

func TestUpload_PrimaryBucketFailureFallsBackToLegacy(t *testing.T) {
	meta := &fakeMetadataStore{profileID: uuid.New()}
	blobs := &fakeBlobStore{failFirstCall: true}
	p := newTestPipeline(blobs, meta)

	result, err := p.Upload(context.Background(), schema.UploadRequest{
		SubjectID: "sub-1", FileName: "resume.docx", FileContent: []byte("not a real docx"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blobs.uploadCalls != 2 {
		t.Errorf("expected a fallback upload attempt, got %d calls", blobs.uploadCalls)
	}
	if result.ResumeID == "" {
		t.Error("expected a resume id")
	}
}

func TestUpload_DecodeFailureYieldsWarningAndContinues(t *testing.T) {
	meta := &fakeMetadataStore{profileID: uuid.New()}
	p := newTestPipeline(&fakeBlobStore{}, meta)

	result, err := p.Upload(context.Background(), schema.UploadRequest{
		SubjectID: "sub-1", FileName: "resume.pdf", FileContent: []byte("not a real pdf"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HasText {
		t.Error("expected HasText false for undecodable content")
	}
	if result.Warning == "" {
		t.Error("expected a warning message")
	}
	if result.Record != nil {
		t.Error("expected no record when there is no text")
	}
}

func TestUpload_ClearResumesFailureIsPersistenceError(t *testing.T) {
	meta := &fakeMetadataStore{profileID: uuid.New(), clearResumesErr: errors.New("db down")}
	p := newTestPipeline(&fakeBlobStore{}, meta)

	_, err := p.Upload(context.Background(), schema.UploadRequest{
		SubjectID: "sub-1", FileName: "resume.pdf", FileContent: []byte("irrelevant"),
	})
	var parseErr *schema.ParseError
	if !errors.As(err, &parseErr) || parseErr.Code != schema.CodePersistenceError {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}

func TestUpload_PriorBlobsAreRemovedBeforeClearing(t *testing.T) {
	blobs := &fakeBlobStore{}
	meta := &fakeMetadataStore{profileID: uuid.New(), priorPaths: []string{"p1/old.pdf", "p1/older.pdf"}, blobs: blobs}
	p := newTestPipeline(blobs, meta)

	if _, err := p.Upload(context.Background(), schema.UploadRequest{
		SubjectID: "sub-1", FileName: "resume.pdf", FileContent: []byte("irrelevant"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blobs.removedPaths) != 2 {
		t.Errorf("expected 2 removed paths, got %d", len(blobs.removedPaths))
	}
	if meta.removedAtClear != 2 {
		t.Errorf("expected both prior paths removed before ClearResumes, got %d at clear time", meta.removedAtClear)
	}
}

func TestFilterSaneExperience_DropsSentenceLikeEmployer(t *testing.T) {
	entries := []schema.Experience{
		{Employer: "Responsible for managing a team of nurses across three units.", Position: "Nurse", StartDate: "January 2020"},
		{Employer: "St. Luke's Medical Center", Position: "Staff Nurse", StartDate: "January 2020", Type: "employment"},
	}
	out := filterSaneExperience(entries)
	if len(out) != 1 {
		t.Fatalf("expected 1 surviving entry, got %d", len(out))
	}
	if out[0].Employer != "St. Luke's Medical Center" {
		t.Errorf("unexpected surviving entry: %+v", out[0])
	}
}

func TestFilterSaneExperience_DefaultsInvalidType(t *testing.T) {
	entries := []schema.Experience{
		{Employer: "St. Luke's Medical Center", Position: "Staff Nurse", StartDate: "January 2020", Type: "bogus"},
	}
	out := filterSaneExperience(entries)
	if out[0].Type != schema.ExperienceEmployment {
		t.Errorf("expected type defaulted to employment, got %q", out[0].Type)
	}
}

func TestFilterSaneExperience_NormalisesDatesPresentBecomesEmpty(t *testing.T) {
	entries := []schema.Experience{
		{Employer: "St. Luke's Medical Center", Position: "Staff Nurse", StartDate: "January 2020", EndDate: "Present", Type: schema.ExperienceEmployment},
	}
	out := filterSaneExperience(entries)
	if out[0].StartDate != "2020-01-01" {
		t.Errorf("expected normalised start date, got %q", out[0].StartDate)
	}
	if out[0].EndDate != "" {
		t.Errorf("expected Present to normalise to empty so persistence stores NULL, got %q", out[0].EndDate)
	}
}
