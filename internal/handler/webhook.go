package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Nick-the-BinaryTree/allergy-albert/internal/jobs"
	"github.com/Nick-the-BinaryTree/allergy-albert/internal/middleware"
	"github.com/Nick-the-BinaryTree/allergy-albert/internal/model"
)

// ReplyAuthenticated is sent after a "Send to Messenger" plugin opt-in
const ReplyAuthenticated = "Authentication successful"

// ChatHandler answers a user's message
type ChatHandler interface {
	Handle(ctx context.Context, senderID, text string) model.ReplyAction
	HandleQuickReply(ctx context.Context, senderID, payload string) model.ReplyAction
}

// ReplyQueue accepts replies for background delivery
type ReplyQueue interface {
	Enqueue(d jobs.Delivery) bool
}

// MessageDeduper reports whether a message id is new. Messenger retries
// callbacks it did not see acknowledged in time.
type MessageDeduper interface {
	FirstSeen(id string) bool
}

// WebhookHandler handles Messenger webhook requests
type WebhookHandler struct {
	chat        ChatHandler
	outbox      ReplyQueue
	seen        MessageDeduper
	verifyToken string
	validate    *validator.Validate
	logger      *slog.Logger
}

// WebhookHandlerConfig holds the dependencies of the webhook handler
type WebhookHandlerConfig struct {
	Chat        ChatHandler
	Outbox      ReplyQueue
	Seen        MessageDeduper // optional
	VerifyToken string
	Validate    *validator.Validate // optional
	Logger      *slog.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(cfg WebhookHandlerConfig) *WebhookHandler {
	v := cfg.Validate
	if v == nil {
		v = validator.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookHandler{
		chat:        cfg.Chat,
		outbox:      cfg.Outbox,
		seen:        cfg.Seen,
		verifyToken: cfg.VerifyToken,
		validate:    v,
		logger:      logger,
	}
}

// RegisterRoutes registers webhook routes
func (h *WebhookHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /webhook", h.Verify)
	mux.HandleFunc("POST /webhook", h.Receive)
}

// Verify handles GET /webhook, the subscription handshake
func (h *WebhookHandler) Verify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if h.verifyToken == "" || q.Get("hub.mode") != "subscribe" || q.Get("hub.verify_token") != h.verifyToken {
		h.logger.ErrorContext(r.Context(), "failed validation, make sure the validation tokens match")
		WriteError(w, model.NewVerifyTokenError())
		return
	}

	h.logger.InfoContext(r.Context(), "validating webhook")
	WriteText(w, http.StatusOK, q.Get("hub.challenge"))
}

// Receive handles POST /webhook. Every messaging event of a page payload is
// dispatched before the 200 is written; replies go out asynchronously.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var payload model.WebhookPayload
	if err := DecodeJSON(r, &payload); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid JSON body"))
		return
	}

	if err := h.validate.Struct(&payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			WriteError(w, model.NewBadRequestError("Invalid field: "+verrs[0].Namespace()))
			return
		}
		WriteError(w, model.NewBadRequestError(err.Error()))
		return
	}

	if payload.Object != model.WebhookObjectPage {
		h.logger.WarnContext(r.Context(), "ignoring non-page webhook", slog.String("object", payload.Object))
		WriteError(w, model.NewNotFoundError("Unsupported webhook object: "+payload.Object))
		return
	}

	for _, entry := range payload.Entry {
		for i := range entry.Messaging {
			h.dispatch(r.Context(), entry.ID, &entry.Messaging[i])
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *WebhookHandler) dispatch(ctx context.Context, pageID string, ev *model.MessagingEvent) {
	senderID := ev.Sender.ID
	log := h.logger.With(
		slog.String("page_id", pageID),
		slog.String("sender_id", senderID),
		slog.String("request_id", middleware.GetRequestID(ctx)),
	)

	switch {
	case ev.Optin != nil:
		log.InfoContext(ctx, "received authentication", slog.String("ref", ev.Optin.Ref))
		h.reply(ctx, senderID, model.TextReply(ReplyAuthenticated))
	case ev.Message != nil:
		h.receiveMessage(ctx, log, senderID, ev.Message)
	case ev.Delivery != nil:
		for _, mid := range ev.Delivery.MIDs {
			log.DebugContext(ctx, "received delivery confirmation", slog.String("mid", mid))
		}
		log.DebugContext(ctx, "all messages delivered", slog.Int64("watermark", ev.Delivery.Watermark))
	case ev.Postback != nil:
		log.InfoContext(ctx, "received postback", slog.String("payload", ev.Postback.Payload))
	case ev.Read != nil:
		log.DebugContext(ctx, "received message read",
			slog.Int64("watermark", ev.Read.Watermark),
			slog.Int64("seq", ev.Read.Seq),
		)
	case ev.AccountLinking != nil:
		log.InfoContext(ctx, "received account link",
			slog.String("status", ev.AccountLinking.Status),
			slog.String("authorization_code", ev.AccountLinking.AuthorizationCode),
		)
	default:
		log.WarnContext(ctx, "webhook received unknown messaging event")
	}
}

func (h *WebhookHandler) receiveMessage(ctx context.Context, log *slog.Logger, senderID string, msg *model.Message) {
	if msg.IsEcho {
		log.DebugContext(ctx, "received echo", slog.String("mid", msg.MID), slog.Int64("app_id", msg.AppID))
		return
	}
	if h.seen != nil && !h.seen.FirstSeen(msg.MID) {
		log.InfoContext(ctx, "skipping redelivered message", slog.String("mid", msg.MID))
		return
	}

	switch {
	case msg.QuickReply != nil:
		h.reply(ctx, senderID, h.chat.HandleQuickReply(ctx, senderID, msg.QuickReply.Payload))
	case msg.Text != "":
		h.reply(ctx, senderID, h.chat.Handle(ctx, senderID, msg.Text))
	case len(msg.Attachments) > 0:
		log.InfoContext(ctx, "message with attachment received", slog.Int("attachments", len(msg.Attachments)))
	}
}

func (h *WebhookHandler) reply(ctx context.Context, recipientID string, reply model.ReplyAction) {
	if reply.IsEmpty() {
		return
	}
	h.outbox.Enqueue(jobs.Delivery{
		RecipientID: recipientID,
		Reply:       reply,
		RequestID:   middleware.GetRequestID(ctx),
	})
}
