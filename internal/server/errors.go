package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/career-copilot/internal/fetch"
	"github.com/jonathan/career-copilot/internal/ingestion"
	"github.com/jonathan/career-copilot/internal/parsing"
	"github.com/jonathan/career-copilot/internal/schemas"
)

// ErrNoInput indicates an ingest request carried neither a file nor text
var ErrNoInput = errors.New("provide a file upload or text")

// ErrorBody is the JSON shape of every error response
type ErrorBody struct {
	Error  string               `json:"error"`
	Fields []schemas.FieldError `json:"fields,omitempty"`
}

// ErrValidation indicates a request body that does not satisfy the record schema
type ErrValidation struct {
	Field   string
	Message string
	Fields  []schemas.FieldError
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrBadRequest indicates a malformed request body
type ErrBadRequest struct {
	Message string
	Cause   error
}

func (e *ErrBadRequest) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ErrBadRequest) Unwrap() error {
	return e.Cause
}

// ErrInputTooShort indicates job text below the configured minimum length
type ErrInputTooShort struct {
	Length int
	Min    int
}

func (e *ErrInputTooShort) Error() string {
	return fmt.Sprintf("text too short: %d characters, need at least %d", e.Length, e.Min)
}

// ErrPayloadTooLarge indicates an upload above the configured size limit
type ErrPayloadTooLarge struct {
	Limit int64
}

func (e *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		badRequestErr *ErrBadRequest
		tooShortErr   *ErrInputTooShort
		tooLargeErr   *ErrPayloadTooLarge
		fetchErr      *fetch.Error
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr), errors.Is(err, parsing.ErrMissingRequiredField):
		return http.StatusUnprocessableEntity
	case errors.As(err, &tooLargeErr), errors.Is(err, ingestion.ErrUploadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &badRequestErr), errors.As(err, &tooShortErr), errors.Is(err, ErrNoInput):
		return http.StatusBadRequest
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status and writes it as an ErrorBody.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	body := ErrorBody{Error: err.Error()}

	var validationErr *ErrValidation
	if errors.As(err, &validationErr) {
		body.Fields = validationErr.Fields
	}
	if status >= http.StatusInternalServerError {
		body.Error = "internal server error"
		if status == http.StatusBadGateway {
			body.Error = err.Error()
		}
	}

	s.jsonResponse(w, status, body)
}
