// Package handler provides the HTTP endpoints of the bot.
//
//   - WebhookHandler: Messenger subscription handshake and callbacks
//   - HealthHandler: liveness probe
//   - AuthorizeHandler: account linking landing endpoint
//   - AssetsHandler: template images under /assets/
//
// Each handler exposes RegisterRoutes(mux) and takes its dependencies
// through a config struct:
//
//	webhook := handler.NewWebhookHandler(handler.WebhookHandlerConfig{
//	    Chat:        chatService,
//	    Outbox:      outbox,
//	    Seen:        seen,
//	    VerifyToken: cfg.Messenger.ValidationToken,
//	})
//	webhook.RegisterRoutes(mux)
//
// Errors returned to callers use RFC 9457 Problem Details. Chat users never
// see them; their replies travel through the outbox.
package handler
