// Package transport provides the HTTP surface over the résumé ingestion
// pipeline's single externally visible operation, uploadResume.
package transport

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/learnbot/resume-pipeline/internal/schema"
)

const (
	maxResumeUploadSize         = 10 << 20 // 10 MiB, per the pipeline's resource ceilings
	maxProfilePictureUploadSize = 5 << 20  // 5 MiB
)

// Uploader is the subset of internal/pipeline.Pipeline the handler depends
// on, named narrowly so it can be faked in tests.
type Uploader interface {
	Upload(ctx context.Context, req schema.UploadRequest) (*schema.UploadResult, error)
}

// BlobWriter is the subset of internal/store/blob.Store the profile-picture
// endpoint depends on directly — that upload never goes through the
// extraction pipeline.
type BlobWriter interface {
	Upload(ctx context.Context, bucket, path string, content []byte, contentType string) error
}

const profilePicturesBucket = "profile-pictures"

// Handler holds the HTTP handler dependencies.
type Handler struct {
	pipeline Uploader
	blobs    BlobWriter
	logger   *log.Logger
}

// NewHandler builds a Handler.
func NewHandler(pipeline Uploader, blobs BlobWriter, logger *log.Logger) *Handler {
	return &Handler{pipeline: pipeline, blobs: blobs, logger: logger}
}

// RegisterRoutes registers every route on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/resumes", h.withMiddleware(h.UploadResume))
	mux.HandleFunc("/api/v1/profile-picture", h.withMiddleware(h.UploadProfilePicture))
	mux.HandleFunc("/api/v1/health", h.withMiddleware(h.HealthCheck))
}

// withMiddleware wraps a handler with request logging and panic recovery.
func (h *Handler) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			if rec := recover(); rec != nil {
				h.logger.Printf("PANIC: %v", rec)
				h.writeError(w, http.StatusInternalServerError, schema.CodePersistenceError, "an unexpected error occurred")
			}
		}()

		h.logger.Printf("%s %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next(w, r)
		h.logger.Printf("%s %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	}
}

// UploadResume handles POST /api/v1/resumes.
// Accepts multipart/form-data with a "resume" file field and a "subject"
// form value identifying the uploading nurse.
//
// Example:
//
//	curl -X POST http://localhost:8080/api/v1/resumes \
//	  -F "subject=nurse-123" -F "resume=@/path/to/resume.pdf"
func (h *Handler) UploadResume(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "only POST is supported")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxResumeUploadSize)

	if err := r.ParseMultipartForm(maxResumeUploadSize); err != nil {
		h.writeError(w, http.StatusBadRequest, schema.CodeBadRequest, "failed to parse multipart form: "+err.Error())
		return
	}

	subject := r.FormValue("subject")
	if subject == "" {
		h.writeError(w, http.StatusBadRequest, schema.CodeBadRequest, "'subject' form value is required")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, schema.CodeBadRequest, "'resume' file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, schema.CodeBadRequest, "failed to read uploaded file")
		return
	}

	req := schema.UploadRequest{
		SubjectID:   subject,
		FileName:    header.Filename,
		FileContent: data,
	}

	result, err := h.pipeline.Upload(r.Context(), req)
	if err != nil {
		if pe, ok := err.(*schema.ParseError); ok {
			h.writeError(w, parseErrorToHTTPStatus(pe.Code), pe.Code, pe.Message)
			return
		}
		h.writeError(w, http.StatusInternalServerError, schema.CodePersistenceError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, uploadResponse{Success: true, Data: result})
}

// UploadProfilePicture handles POST /api/v1/profile-picture. Unlike a
// résumé, a profile picture never reaches the pipeline — it's stored
// directly under its subject's key in the profile-pictures bucket.
func (h *Handler) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "only POST is supported")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxProfilePictureUploadSize)

	if err := r.ParseMultipartForm(maxProfilePictureUploadSize); err != nil {
		h.writeError(w, http.StatusBadRequest, schema.CodeBadRequest, "failed to parse multipart form: "+err.Error())
		return
	}

	subject := r.FormValue("subject")
	if subject == "" {
		h.writeError(w, http.StatusBadRequest, schema.CodeBadRequest, "'subject' form value is required")
		return
	}

	file, header, err := r.FormFile("picture")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, schema.CodeBadRequest, "'picture' file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, schema.CodeBadRequest, "failed to read uploaded file")
		return
	}

	path := subject + "/" + header.Filename
	if err := h.blobs.Upload(r.Context(), profilePicturesBucket, path, data, header.Header.Get("Content-Type")); err != nil {
		h.writeError(w, http.StatusInternalServerError, schema.CodeStorageError, "failed to store profile picture")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"path": path})
}

// HealthCheck handles GET /api/v1/health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": schema.ParserVersion,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

type uploadResponse struct {
	Success bool                 `json:"success"`
	Data    *schema.UploadResult `json:"data,omitempty"`
}

type errorResponse struct {
	Success bool               `json:"success"`
	Error   *schema.ParseError `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Printf("failed to encode JSON response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, errorResponse{
		Success: false,
		Error:   &schema.ParseError{Code: code, Message: message},
	})
}

// parseErrorToHTTPStatus maps the pipeline's error taxonomy to HTTP status
// codes.
func parseErrorToHTTPStatus(code string) int {
	switch code {
	case schema.CodeUnsupportedFormat, schema.CodeBadRequest:
		return http.StatusBadRequest
	case schema.CodeNotFound:
		return http.StatusNotFound
	case schema.CodeStorageError, schema.CodePersistenceError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
