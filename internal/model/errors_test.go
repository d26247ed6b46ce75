package model

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestProblemDetails_Error_ReturnsFormattedMessage(t *testing.T) {
	t.Parallel()

	pd := NewBadRequestError("invalid webhook payload")

	errMsg := pd.Error()

	if !strings.Contains(errMsg, "400") {
		t.Errorf("error message should contain status code, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "invalid webhook payload") {
		t.Errorf("error message should contain detail, got: %s", errMsg)
	}
}

func TestProblemDetails_WriteJSON_EncodesBody(t *testing.T) {
	t.Parallel()

	pd := NewSignatureError("signature mismatch", ErrCodeSignatureInvalid)
	rr := httptest.NewRecorder()

	pd.WriteJSON(rr)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected problem+json content type, got %q", ct)
	}

	var result ProblemDetails
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if result.Code != ErrCodeSignatureInvalid {
		t.Errorf("expected code %d, got %d", ErrCodeSignatureInvalid, result.Code)
	}
	if !strings.HasSuffix(result.Type, "/signature") {
		t.Errorf("unexpected type %q", result.Type)
	}
}

func TestNewInternalError_DefaultDetail(t *testing.T) {
	t.Parallel()

	pd := NewInternalError("")

	if pd.Detail != "An unexpected error occurred" {
		t.Errorf("expected default detail, got %q", pd.Detail)
	}
	if pd.Status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", pd.Status)
	}
}

func TestNewRateLimitError_IncludesRetryAfter(t *testing.T) {
	t.Parallel()

	pd := NewRateLimitError(42)

	if pd.Status != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", pd.Status)
	}
	if !strings.Contains(pd.Detail, "42 seconds") {
		t.Errorf("expected retry-after in detail, got %q", pd.Detail)
	}
}

func TestEvent_CloneIsDeep(t *testing.T) {
	t.Parallel()

	name := "Picnic"
	e := &Event{ID: "1000", HostID: "a", Name: &name, TotalAllergies: []string{"nuts"}}

	c := e.Clone()
	*c.Name = "Changed"
	c.TotalAllergies[0] = "fish"

	if *e.Name != "Picnic" {
		t.Errorf("clone shares name pointer")
	}
	if e.TotalAllergies[0] != "nuts" {
		t.Errorf("clone shares allergy slice")
	}
}

func TestEvent_SetAndIsHost(t *testing.T) {
	t.Parallel()

	e := &Event{ID: "1000", HostID: "host"}
	e.Set(EventFieldName, "Picnic")
	e.Set(EventFieldPage, "http://example.com")

	if e.Name == nil || *e.Name != "Picnic" {
		t.Errorf("name not set")
	}
	if e.Page == nil || *e.Page != "http://example.com" {
		t.Errorf("page not set")
	}
	if !e.IsHost("host") || e.IsHost("guest") {
		t.Errorf("IsHost mismatch")
	}
}
