package model

// Webhook payloads delivered by the Messenger Platform.
// https://developers.facebook.com/docs/messenger-platform/webhook

// WebhookObjectPage is the only subscription object this bot handles
const WebhookObjectPage = "page"

// WebhookPayload is the body of a POST /webhook callback
type WebhookPayload struct {
	Object string      `json:"object" validate:"required"`
	Entry  []PageEntry `json:"entry" validate:"dive"`
}

// PageEntry groups messaging events for one page; batches may hold several
type PageEntry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []MessagingEvent `json:"messaging" validate:"dive"`
}

// Participant identifies a sender or recipient
type Participant struct {
	ID string `json:"id" validate:"required"`
}

// MessagingEvent is a single callback. Exactly one of the pointer fields is set.
type MessagingEvent struct {
	Sender         Participant     `json:"sender"`
	Recipient      Participant     `json:"recipient"`
	Timestamp      int64           `json:"timestamp"`
	Message        *Message        `json:"message,omitempty"`
	Postback       *Postback       `json:"postback,omitempty"`
	Delivery       *Delivery       `json:"delivery,omitempty"`
	Read           *Read           `json:"read,omitempty"`
	Optin          *Optin          `json:"optin,omitempty"`
	AccountLinking *AccountLinking `json:"account_linking,omitempty"`
}

// Message is an inbound (or echoed) message
type Message struct {
	MID         string          `json:"mid"`
	Seq         int64           `json:"seq,omitempty"`
	Text        string          `json:"text,omitempty"`
	IsEcho      bool            `json:"is_echo,omitempty"`
	AppID       int64           `json:"app_id,omitempty"`
	Metadata    string          `json:"metadata,omitempty"`
	QuickReply  *QuickReplyTap  `json:"quick_reply,omitempty"`
	Attachments []AttachmentRef `json:"attachments,omitempty"`
}

// QuickReplyTap carries the payload of a tapped quick reply
type QuickReplyTap struct {
	Payload string `json:"payload"`
}

// AttachmentRef is an inbound attachment (image, audio, ...)
type AttachmentRef struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Postback is sent when a postback button is tapped
type Postback struct {
	Title   string `json:"title,omitempty"`
	Payload string `json:"payload"`
}

// Delivery confirms delivery of previously sent messages
type Delivery struct {
	MIDs      []string `json:"mids,omitempty"`
	Watermark int64    `json:"watermark"`
	Seq       int64    `json:"seq,omitempty"`
}

// Read reports that messages up to Watermark were read
type Read struct {
	Watermark int64 `json:"watermark"`
	Seq       int64 `json:"seq,omitempty"`
}

// Optin is sent by the "Send to Messenger" plugin
type Optin struct {
	Ref string `json:"ref"`
}

// AccountLinking reports a link or unlink
type AccountLinking struct {
	Status            string `json:"status"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
}
