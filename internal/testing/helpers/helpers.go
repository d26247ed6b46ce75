package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Nick-the-BinaryTree/allergy-albert/internal/model"
)

// DefaultPageID is the page id used by the callback builders
const DefaultPageID = "PAGE_ID"

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ============================================================================
// Callback Builders
// ============================================================================

// TextMessage builds a text message event from senderID
func TextMessage(senderID, mid, text string) model.MessagingEvent {
	return model.MessagingEvent{
		Sender:    model.Participant{ID: senderID},
		Recipient: model.Participant{ID: DefaultPageID},
		Timestamp: 1458692752478,
		Message:   &model.Message{MID: mid, Seq: 1, Text: text},
	}
}

// QuickReplyMessage builds a tapped quick reply event
func QuickReplyMessage(senderID, mid, payload string) model.MessagingEvent {
	ev := TextMessage(senderID, mid, payload)
	ev.Message.QuickReply = &model.QuickReplyTap{Payload: payload}
	return ev
}

// Callback wraps events in a single page entry
func Callback(events ...model.MessagingEvent) model.WebhookPayload {
	return model.WebhookPayload{
		Object: model.WebhookObjectPage,
		Entry: []model.PageEntry{{
			ID:        DefaultPageID,
			Time:      1458692752478,
			Messaging: events,
		}},
	}
}

// ============================================================================
// Request Builder
// ============================================================================

// Signer returns the header name and value that authenticate body
type Signer func(body []byte) (header, value string)

// RequestBuilder helps construct test requests
type RequestBuilder struct {
	t       *testing.T
	method  string
	path    string
	body    []byte
	headers map[string]string
	signer  Signer
}

// NewRequest creates a new request builder
func NewRequest(t *testing.T, method, path string) *RequestBuilder {
	t.Helper()
	return &RequestBuilder{
		t:       t,
		method:  method,
		path:    path,
		headers: make(map[string]string),
	}
}

// WithBody sets the request body. Strings and byte slices are sent as is;
// anything else is encoded as JSON.
func (rb *RequestBuilder) WithBody(body any) *RequestBuilder {
	switch b := body.(type) {
	case string:
		rb.body = []byte(b)
	case []byte:
		rb.body = b
	default:
		data, err := json.Marshal(body)
		if err != nil {
			rb.t.Fatalf("helpers: failed to marshal body: %v", err)
		}
		rb.body = data
	}
	return rb
}

// WithHeader adds a header
func (rb *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	rb.headers[key] = value
	return rb
}

// WithSigner signs the final body when the request is built
func (rb *RequestBuilder) WithSigner(s Signer) *RequestBuilder {
	rb.signer = s
	return rb
}

// Build creates the http.Request
func (rb *RequestBuilder) Build() *http.Request {
	req := httptest.NewRequest(rb.method, rb.path, bytes.NewReader(rb.body))
	if rb.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range rb.headers {
		req.Header.Set(k, v)
	}
	if rb.signer != nil {
		header, value := rb.signer(rb.body)
		req.Header.Set(header, value)
	}
	return req
}

// Do builds the request, serves it with h and returns the recorder
func (rb *RequestBuilder) Do(h http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, rb.Build())
	return rr
}

// ============================================================================
// Assertions
// ============================================================================

// AssertStatus checks the response status code
func AssertStatus(t *testing.T, resp *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if resp.Code != expected {
		t.Errorf("expected status %d, got %d. Body: %s", expected, resp.Code, resp.Body.String())
	}
}

// AssertProblemDetails checks that the response is an RFC 9457 error with
// the given status and code
func AssertProblemDetails(t *testing.T, resp *httptest.ResponseRecorder, expectedStatus int, expectedCode model.ErrorCode) {
	t.Helper()
	AssertStatus(t, resp, expectedStatus)

	if ct := resp.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected problem+json content type, got %q", ct)
	}

	var problem model.ProblemDetails
	if err := json.Unmarshal(resp.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to decode problem details: %v", err)
	}
	if problem.Status != expectedStatus {
		t.Errorf("expected problem status %d, got %d", expectedStatus, problem.Status)
	}
	if expectedCode != 0 && problem.Code != expectedCode {
		t.Errorf("expected error code %d, got %d", expectedCode, problem.Code)
	}
}

// DecodeResponse decodes a JSON response body into v
func DecodeResponse(t *testing.T, resp *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response: %v. Body: %s", err, resp.Body.String())
	}
}
