package messenger

import "github.com/Nick-the-BinaryTree/allergy-albert/internal/model"

// DefaultMetadata is attached to every outbound text message
const DefaultMetadata = "DEVELOPER_DEFINED_METADATA"

// SendRequest is the body of POST /me/messages
type SendRequest struct {
	Recipient model.Participant `json:"recipient"`
	Message   OutboundMessage   `json:"message"`
}

// OutboundMessage is a message sent through the Send API
type OutboundMessage struct {
	Text         string             `json:"text,omitempty"`
	Metadata     string             `json:"metadata,omitempty"`
	QuickReplies []model.QuickReply `json:"quick_replies,omitempty"`
	Attachment   *Attachment        `json:"attachment,omitempty"`
}

// Attachment wraps a structured template
type Attachment struct {
	Type    string              `json:"type"`
	Payload *model.TemplateSpec `json:"payload"`
}

// SendResponse is returned by the Send API on success
type SendResponse struct {
	RecipientID string `json:"recipient_id"`
	MessageID   string `json:"message_id"`
}

// ThreadSettings is the body of POST /me/thread_settings
type ThreadSettings struct {
	SettingType string    `json:"setting_type"`
	Greeting    *Greeting `json:"greeting,omitempty"`
}

// Greeting is the text shown before a user starts a conversation
type Greeting struct {
	Text string `json:"text"`
}

// graphErrorBody is the error envelope returned by the Graph API
type graphErrorBody struct {
	Error *GraphError `json:"error"`
}

// GraphError describes a failed Graph API call
type GraphError struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	FBTraceID string `json:"fbtrace_id,omitempty"`
}

// NewSendRequest converts a reply into a Send API request
func NewSendRequest(recipientID string, reply model.ReplyAction) SendRequest {
	req := SendRequest{Recipient: model.Participant{ID: recipientID}}

	switch reply.Kind {
	case model.ReplyKindOptions:
		req.Message = OutboundMessage{
			Text:         reply.Body,
			QuickReplies: reply.Options,
		}
	case model.ReplyKindTemplate:
		req.Message = OutboundMessage{
			Attachment: &Attachment{Type: "template", Payload: reply.Template},
		}
	default:
		req.Message = OutboundMessage{
			Text:     reply.Body,
			Metadata: DefaultMetadata,
		}
	}
	return req
}
