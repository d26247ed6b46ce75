package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorCode represents API error codes
type ErrorCode int

const (
	// Webhook authentication (1xxx)
	ErrCodeSignatureMissing ErrorCode = 1001
	ErrCodeSignatureInvalid ErrorCode = 1002
	ErrCodeVerifyToken      ErrorCode = 1003

	// Request errors (4xxx)
	ErrCodeInvalidInput  ErrorCode = 4002
	ErrCodeLimitExceeded ErrorCode = 4003

	// Internal errors (5xxx)
	ErrCodeInternal ErrorCode = 5001
)

const problemTypeBase = "https://allergy-albert.invalid/errors/"

// ProblemDetails represents RFC 9457 Problem Details for HTTP APIs.
// The webhook only returns these to Messenger or to a misconfigured client;
// chat users never see them.
type ProblemDetails struct {
	Type   string    `json:"type"`
	Title  string    `json:"title"`
	Status int       `json:"status"`
	Detail string    `json:"detail,omitempty"`
	Code   ErrorCode `json:"code,omitempty"`
}

// Error implements the error interface
func (p *ProblemDetails) Error() string {
	return fmt.Sprintf("[%d] %s: %s", p.Status, p.Title, p.Detail)
}

// WriteJSON writes the problem details as JSON response
func (p *ProblemDetails) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

func newProblem(slug, title string, status int, detail string, code ErrorCode) *ProblemDetails {
	return &ProblemDetails{
		Type:   problemTypeBase + slug,
		Title:  title,
		Status: status,
		Detail: detail,
		Code:   code,
	}
}

// NewSignatureError is returned when X-Hub-Signature is absent or wrong
func NewSignatureError(detail string, code ErrorCode) *ProblemDetails {
	return newProblem("signature", "Unauthorized", http.StatusUnauthorized, detail, code)
}

// NewVerifyTokenError is returned when a subscription handshake fails
func NewVerifyTokenError() *ProblemDetails {
	return newProblem("verify-token", "Forbidden", http.StatusForbidden,
		"Failed validation. Make sure the validation tokens match.", ErrCodeVerifyToken)
}

func NewBadRequestError(detail string) *ProblemDetails {
	return newProblem("bad-request", "Bad Request", http.StatusBadRequest, detail, ErrCodeInvalidInput)
}

func NewInternalError(detail string) *ProblemDetails {
	if detail == "" {
		detail = "An unexpected error occurred"
	}
	return newProblem("internal", "Internal Server Error", http.StatusInternalServerError, detail, ErrCodeInternal)
}

func NewRateLimitError(retryAfter int) *ProblemDetails {
	return newProblem("rate-limited", "Too Many Requests", http.StatusTooManyRequests,
		fmt.Sprintf("Rate limit exceeded. Retry after %d seconds", retryAfter), ErrCodeLimitExceeded)
}

func NewNotFoundError(detail string) *ProblemDetails {
	return newProblem("not-found", "Not Found", http.StatusNotFound, detail, 0)
}
