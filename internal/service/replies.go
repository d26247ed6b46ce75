package service

import (
	"errors"

	"github.com/Nick-the-BinaryTree/allergy-albert/internal/command"
)

// Replies the bot sends back
const (
	ReplyHi             = "oh hi"
	ReplyJoined         = "Joined."
	ReplyJoinNoEvent    = "Event didn't exist :("
	ReplyAllergiesSet   = "Allergies set."
	ReplyEventMissing   = "Event doesn't exist :("
	ReplyNoAllergies    = "No one has allergies at this event."
	ReplyEventUpdated   = "Event updated."
	ReplyFieldGuidance  = "Is there a comma between id and the item?\nEvent not found :("
	ReplyNotHost        = "You're not a host of this event"
	ReplyEventDeleted   = "Event deleted."
	ReplyDeleteFailed   = "Something went wrong. Does that event exist?"
	ReplyUserRemoved    = "Your information has been removed."
	ReplySomethingWrong = "Something went wrong."
	ReplyInviteMissing  = "Something went wrong"
	ReplyUnrecognized   = `Didn't get that. Type "help" for commands.`
	ReplyInviteJoinLine = `If you have allergies, go to the Allergy Albert Facebook page, and type "join %s"`
	ReplyHelp           = `To host an event, type "host" | To join an event, type "join {event id}" | To set your allergies, type "set allergies: {allergies separated by commas}" | For more help, type "help 2"`
	ReplyHelp2          = `To edit an event (must be host), type "edit {event code}" | To see the allergy information for an event, type "allergy info {event id}" | To wipe your account, type "game over"`
	GreetingText        = `Howdy {{user_first_name}}. If you have allergies, type "set allergies:" followed by your comma-separated allergies (i.e. "set allergies: nuts, fish, homework")`
)

// replyForError maps a service error to the text shown for intent.
// Not-found replies differ per command; everything unexpected collapses
// to ReplySomethingWrong.
func replyForError(intent command.Intent, err error) string {
	switch {
	case errors.Is(err, ErrNotEventHost):
		return ReplyNotHost

	case errors.Is(err, ErrEventNotFound):
		switch intent {
		case command.IntentJoin:
			return ReplyJoinNoEvent
		case command.IntentAllergyInfo, command.IntentEdit:
			return ReplyEventMissing
		case command.IntentSetName, command.IntentSetPage:
			return ReplyFieldGuidance
		case command.IntentDelete:
			return ReplyDeleteFailed
		case command.IntentInvite:
			return ReplyInviteMissing
		}
		return ReplySomethingWrong

	case errors.Is(err, ErrMalformedInput):
		switch intent {
		case command.IntentSetName, command.IntentSetPage:
			return ReplyFieldGuidance
		case command.IntentDelete:
			return ReplyDeleteFailed
		}
		return ReplySomethingWrong

	case errors.Is(err, ErrDebugDisabled):
		return ReplyUnrecognized

	default:
		return ReplySomethingWrong
	}
}
