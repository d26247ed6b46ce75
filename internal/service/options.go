package service

import "github.com/Nick-the-BinaryTree/allergy-albert/internal/model"

// Quick-reply payloads offered in the event menu
const (
	PayloadEventName   = "eventName"
	PayloadEventPage   = "eventPage"
	PayloadInvite      = "invite"
	PayloadAllergyInfo = "allergy info"
	PayloadDelete      = "delete"
)

var eventMenu = []model.QuickReply{
	{ContentType: "text", Title: "Name it.", Payload: PayloadEventName},
	{ContentType: "text", Title: "Link page.", Payload: PayloadEventPage},
	{ContentType: "text", Title: "Invite people.", Payload: PayloadInvite},
	{ContentType: "text", Title: "View allergies.", Payload: PayloadAllergyInfo},
	{ContentType: "text", Title: "Delete it.", Payload: PayloadDelete},
}

var payloadInstructions = map[string]string{
	PayloadEventName:   `To set your event name, type "set name {event code, new name}"`,
	PayloadEventPage:   `To link to an event page, type "set page {event code, new link}"`,
	PayloadInvite:      `To generate invitations to an event, type "invite {event code}"`,
	PayloadAllergyInfo: `To view guest allergies for an event, type "allergy info {event code}"`,
	PayloadDelete:      `To delete an event (must be host), type "delete {event code}"`,
}

// RouteOption returns the instruction for a tapped quick reply. Unknown
// payloads produce an empty action.
func RouteOption(payload string) model.ReplyAction {
	text, ok := payloadInstructions[payload]
	if !ok {
		return model.ReplyAction{}
	}
	return model.TextReply(text)
}

// EventMenu builds the quick-reply prompt shown after "host" or "edit".
// An empty eventID shows the menu without an event code.
func EventMenu(eventID string) model.ReplyAction {
	body := "What would you like to do?"
	if eventID != "" {
		body = "Your eventID is " + eventID + ". " + body
	}
	return model.ReplyAction{
		Kind:    model.ReplyKindOptions,
		Body:    body,
		EventID: eventID,
		Options: append([]model.QuickReply(nil), eventMenu...),
	}
}
