package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"hash"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Nick-the-BinaryTree/allergy-albert/internal/model"
)

const (
	SignatureHeader       = "X-Hub-Signature"
	Signature256Header    = "X-Hub-Signature-256"
	defaultMaxWebhookBody = 1 << 20
)

var (
	ErrSignatureMissing   = errors.New("signature header missing")
	ErrSignatureMalformed = errors.New("signature header malformed")
	ErrSignatureMismatch  = errors.New("signature does not match body")
)

// SignatureConfig configures webhook signature verification
type SignatureConfig struct {
	AppSecret string
	// RequireSignature rejects requests that carry no signature header.
	// Development setups that replay payloads by hand leave it off.
	RequireSignature bool
	MaxBodyBytes     int64
	Logger           *slog.Logger
}

// Signature verifies that POST bodies were signed with the app secret.
// X-Hub-Signature-256 is preferred over the legacy sha1 header when both are
// present. The body is restored for the next handler.
func Signature(cfg SignatureConfig) Middleware {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxWebhookBody
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, cfg.MaxBodyBytes+1))
			if err != nil {
				model.NewBadRequestError("Could not read request body").WriteJSON(w)
				return
			}
			if int64(len(body)) > cfg.MaxBodyBytes {
				model.NewBadRequestError("Request body too large").WriteJSON(w)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			err = VerifySignature(cfg.AppSecret, body, r.Header)
			switch {
			case err == nil:
			case errors.Is(err, ErrSignatureMissing) && !cfg.RequireSignature:
				logger.WarnContext(r.Context(), "couldn't validate the signature",
					slog.String("request_id", GetRequestID(r.Context())),
				)
			case errors.Is(err, ErrSignatureMissing):
				model.NewSignatureError("Missing "+SignatureHeader+" header", model.ErrCodeSignatureMissing).WriteJSON(w)
				return
			default:
				logger.WarnContext(r.Context(), "webhook signature rejected",
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				model.NewSignatureError("Couldn't validate the request signature", model.ErrCodeSignatureInvalid).WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// VerifySignature checks body against the signature headers in h
func VerifySignature(secret string, body []byte, h http.Header) error {
	if sig := h.Get(Signature256Header); sig != "" {
		return verify(sha256.New, "sha256", secret, body, sig)
	}
	if sig := h.Get(SignatureHeader); sig != "" {
		return verify(sha1.New, "sha1", secret, body, sig)
	}
	return ErrSignatureMissing
}

// Sign returns the header value Messenger would send for body
func Sign(secret string, body []byte) string {
	return "sha1=" + digest(sha1.New, secret, body)
}

// Sign256 is Sign for X-Hub-Signature-256
func Sign256(secret string, body []byte) string {
	return "sha256=" + digest(sha256.New, secret, body)
}

func verify(newHash func() hash.Hash, method, secret string, body []byte, header string) error {
	gotMethod, got, ok := strings.Cut(header, "=")
	if !ok || gotMethod != method || got == "" {
		return ErrSignatureMalformed
	}
	want := digest(newHash, secret, body)
	if !hmac.Equal([]byte(strings.ToLower(got)), []byte(want)) {
		return ErrSignatureMismatch
	}
	return nil
}

func digest(newHash func() hash.Hash, secret string, body []byte) string {
	mac := hmac.New(newHash, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
