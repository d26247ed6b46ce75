// Package middleware provides HTTP middleware for the webhook server.
//
//   - RequestID: tags requests and exposes GetRequestID / WithRequestID
//   - Logger: one structured slog line per request
//   - Recovery: converts panics to a 500 problem response
//   - RateLimit: token bucket per client address
//   - Signature: verifies the Messenger X-Hub-Signature headers
//
// Compose them with Chain:
//
//	h := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	)
package middleware
