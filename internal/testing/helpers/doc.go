// Package helpers provides test utilities for exercising the webhook:
// callback payload builders, a request builder that can sign bodies, and
// assertions for RFC 9457 error responses.
package helpers
