package model

// ReplyKind distinguishes the shapes of a bot reply
type ReplyKind string

const (
	ReplyKindNone     ReplyKind = ""
	ReplyKindText     ReplyKind = "text"
	ReplyKindOptions  ReplyKind = "options"
	ReplyKindTemplate ReplyKind = "template"
)

// ReplyAction is what the command engine wants sent back to a sender.
// Transport code turns it into a Send API payload.
type ReplyAction struct {
	Kind     ReplyKind     `json:"kind"`
	Body     string        `json:"body,omitempty"`
	EventID  string        `json:"event_id,omitempty"`
	Options  []QuickReply  `json:"options,omitempty"`
	Template *TemplateSpec `json:"template,omitempty"`
}

// IsEmpty reports whether there is nothing to deliver
func (a ReplyAction) IsEmpty() bool {
	return a.Kind == ReplyKindNone
}

// QuickReply is one button of a quick-reply menu
type QuickReply struct {
	ContentType string `json:"content_type"`
	Title       string `json:"title"`
	Payload     string `json:"payload"`
}

// Template types supported by the Send API
const (
	TemplateTypeButton  = "button"
	TemplateTypeGeneric = "generic"
)

// TemplateSpec is a structured message attachment
type TemplateSpec struct {
	TemplateType string            `json:"template_type"`
	Text         string            `json:"text,omitempty"`
	Buttons      []TemplateButton  `json:"buttons,omitempty"`
	Elements     []TemplateElement `json:"elements,omitempty"`
}

// TemplateButton is a button inside a template
type TemplateButton struct {
	Type    string `json:"type"` // web_url, postback, phone_number
	URL     string `json:"url,omitempty"`
	Title   string `json:"title"`
	Payload string `json:"payload,omitempty"`
}

// TemplateElement is one bubble of a generic template
type TemplateElement struct {
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle,omitempty"`
	ItemURL  string           `json:"item_url,omitempty"`
	ImageURL string           `json:"image_url,omitempty"`
	Buttons  []TemplateButton `json:"buttons,omitempty"`
}

// TextReply builds a plain text reply
func TextReply(body string) ReplyAction {
	return ReplyAction{Kind: ReplyKindText, Body: body}
}
