package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/career-copilot/internal/coverage"
	"github.com/jonathan/career-copilot/internal/fetch"
	"github.com/jonathan/career-copilot/internal/ingestion"
	"github.com/jonathan/career-copilot/internal/logging"
	"github.com/jonathan/career-copilot/internal/schemas"
	"github.com/jonathan/career-copilot/internal/types"
	"go.uber.org/zap"
)

// TextRequest is the JSON body of /ingest/resume and /ingest/job
type TextRequest struct {
	Text string `json:"text"`
}

// URLRequest is the JSON body of /ingest/job/url
type URLRequest struct {
	URL string `json:"url"`
}

// ResumeResponse wraps a parsed resume
type ResumeResponse struct {
	Resume *types.Resume `json:"resume"`
}

// JobResponse wraps a parsed job, with its source when fetched from a URL
type JobResponse struct {
	Job    *types.Job     `json:"job"`
	Source *fetch.Posting `json:"source,omitempty"`
}

// analyzeRequest keeps both records raw so each can be schema-validated on its own
type analyzeRequest struct {
	Resume json.RawMessage `json:"resume"`
	Job    json.RawMessage `json:"job"`
}

// record is a decoded resume or job
type record interface {
	Normalize()
	Validate() error
}

// handleValidateResume echoes a resume that passes schema and struct validation
func (s *Server) handleValidateResume(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var resume types.Resume
	if err := decodeRecord(schemas.KindResume, "", body, &resume); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleValidateJob echoes a job that passes schema and struct validation
func (s *Server) handleValidateJob(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var job types.Job
	if err := decodeRecord(schemas.KindJob, "", body, &job); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleAnalyze compares a resume with a job and returns the gap report
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req analyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, &ErrBadRequest{Message: "invalid request body", Cause: err})
		return
	}

	var resume types.Resume
	if err := decodeRecord(schemas.KindResume, "resume", req.Resume, &resume); err != nil {
		s.writeError(w, err)
		return
	}
	var job types.Job
	if err := decodeRecord(schemas.KindJob, "job", req.Job, &job); err != nil {
		s.writeError(w, err)
		return
	}

	report := coverage.Analyze(&resume, &job)
	s.logger.Debug("analyzed coverage",
		zap.String(logging.FieldRequestID, RequestID(r.Context())),
		zap.Int("must_have", len(job.MustHave)),
		zap.Int("score", report.CoverageScore),
	)
	s.jsonResponse(w, http.StatusOK, report)
}

// handleIngestResume parses a resume from an uploaded document, form text or a JSON body
func (s *Server) handleIngestResume(w http.ResponseWriter, r *http.Request) {
	text, err := s.resumeText(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resume, err := s.extractor.ParseResume(text)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ResumeResponse{Resume: resume})
}

// handleIngestJob parses a job posting from a JSON body
func (s *Server) handleIngestJob(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req TextRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, &ErrBadRequest{Message: "invalid request body", Cause: err})
		return
	}

	job, err := s.parseJobText(req.Text)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, JobResponse{Job: job})
}

// handleIngestJobURL fetches a posting and parses it
func (s *Server) handleIngestJobURL(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req URLRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, &ErrBadRequest{Message: "invalid request body", Cause: err})
		return
	}
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		s.writeError(w, &ErrBadRequest{Message: "url is required"})
		return
	}

	posting, err := s.fetchJob(r.Context(), req.URL)
	if err != nil {
		s.logger.Warn("job posting fetch failed",
			zap.String(logging.FieldRequestID, RequestID(r.Context())),
			zap.String("url", req.URL),
			zap.Error(err),
		)
		s.writeError(w, err)
		return
	}

	job, err := s.parseJobText(posting.Text)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, JobResponse{Job: job, Source: posting})
}

// parseJobText enforces the minimum length and runs the job extractor.
func (s *Server) parseJobText(text string) (*types.Job, error) {
	text = strings.TrimSpace(text)
	if n := utf8.RuneCountInString(text); n < s.cfg.MinJobTextLength {
		return nil, &ErrInputTooShort{Length: n, Min: s.cfg.MinJobTextLength}
	}
	return s.extractor.ParseJob(text), nil
}

// resumeText collects resume text from a multipart form (file first, then text) or a JSON body.
func (s *Server) resumeText(w http.ResponseWriter, r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		body, err := s.readBody(w, r)
		if err != nil {
			return "", err
		}
		var req TextRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return "", &ErrBadRequest{Message: "invalid request body", Cause: err}
		}
		if text := strings.TrimSpace(req.Text); text != "" {
			return text, nil
		}
		return "", ErrNoInput
	}

	limit := s.cfg.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(limit); err != nil {
		return "", classifyBodyError(err, limit)
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	var fileText string
	file, header, err := r.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		return "", &ErrBadRequest{Message: "invalid file upload", Cause: err}
	default:
		defer func() { _ = file.Close() }()
		raw, err := ingestion.ReadUpload(file, limit)
		if err != nil {
			return "", err
		}
		fileText = ingestion.ExtractText(header.Filename, raw)
		s.logger.Debug("extracted upload",
			zap.String(logging.FieldRequestID, RequestID(r.Context())),
			zap.String("filename", header.Filename),
			zap.String("format", string(ingestion.DetectFormat(header.Filename))),
			zap.Int("chars", len(fileText)),
		)
	}

	text := ingestion.JoinNonEmpty(fileText, r.FormValue("text"))
	if text == "" {
		return "", ErrNoInput
	}
	return text, nil
}

// readBody reads the request body up to the configured upload limit.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	limit := s.cfg.MaxUploadBytes
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		return nil, classifyBodyError(err, limit)
	}
	return body, nil
}

func classifyBodyError(err error, limit int64) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return &ErrPayloadTooLarge{Limit: limit}
	}
	return &ErrBadRequest{Message: "failed to read request body", Cause: err}
}

// decodeRecord validates data against the kind's schema, decodes it into target,
// then applies Normalize and the struct validator. Field paths are prefixed with prefix.
func decodeRecord(kind schemas.Kind, prefix string, data []byte, target record) error {
	if len(data) == 0 || string(data) == "null" {
		field := prefix
		if field == "" {
			field = "(root)"
		}
		return &ErrValidation{Field: field, Message: "is required"}
	}
	if !json.Valid(data) {
		return &ErrBadRequest{Message: "invalid JSON body"}
	}

	if err := schemas.Validate(kind, data); err != nil {
		var schemaErr *schemas.ValidationError
		if !errors.As(err, &schemaErr) || len(schemaErr.Errors) == 0 {
			return fmt.Errorf("validating %s: %w", kind, err)
		}
		fields := make([]schemas.FieldError, len(schemaErr.Errors))
		for i, fe := range schemaErr.Errors {
			fields[i] = schemas.FieldError{Field: joinField(prefix, fe.Field), Message: fe.Message}
		}
		return &ErrValidation{Field: fields[0].Field, Message: fields[0].Message, Fields: fields}
	}

	if err := json.Unmarshal(data, target); err != nil {
		return &ErrBadRequest{Message: fmt.Sprintf("invalid %s", kind), Cause: err}
	}
	target.Normalize()

	if err := target.Validate(); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fields := make([]schemas.FieldError, len(validationErrors))
			for i, ve := range validationErrors {
				fields[i] = schemas.FieldError{
					Field:   joinField(prefix, types.FieldPath(ve.Namespace())),
					Message: "failed '" + ve.Tag() + "'",
				}
			}
			return &ErrValidation{Field: fields[0].Field, Message: fields[0].Message, Fields: fields}
		}
		return fmt.Errorf("validating %s: %w", kind, err)
	}
	return nil
}

func joinField(prefix, field string) string {
	switch {
	case prefix == "":
		return field
	case field == "" || field == "(root)":
		return prefix
	default:
		return prefix + "." + field
	}
}
