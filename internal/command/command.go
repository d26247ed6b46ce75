package command

import "strings"

// Intent is the classified meaning of an inbound text command
type Intent string

const (
	IntentJoin         Intent = "join"
	IntentSetAllergies Intent = "set_allergies"
	IntentEdit         Intent = "edit"
	IntentAllergyInfo  Intent = "allergy_info"
	IntentSetName      Intent = "set_name"
	IntentSetPage      Intent = "set_page"
	IntentInvite       Intent = "invite"
	IntentDelete       Intent = "delete"
	IntentHi           Intent = "hi"
	IntentButton       Intent = "button"
	IntentGeneric      Intent = "generic"
	IntentQuickReply   Intent = "quick_reply"
	IntentHost         Intent = "host"
	IntentHelp         Intent = "help"
	IntentHelp2        Intent = "help_2"
	IntentGameOver     Intent = "game_over"
	IntentDebug        Intent = "debug"
	IntentUnrecognized Intent = "unrecognized"
)

// Command is a classified message
type Command struct {
	Intent Intent
	// Arg is everything after the matched prefix and one separator
	// character. It is not validated.
	Arg string
	// Text is the normalized (trimmed, lower-cased) input
	Text string
}

// Rule maps a prefix or an exact keyword to an intent
type Rule struct {
	Intent Intent
	Prefix string
	Exact  bool
}

// Match reports whether text satisfies the rule and extracts the argument
func (r Rule) Match(text string) (string, bool) {
	if r.Exact {
		return "", text == r.Prefix
	}
	if !strings.HasPrefix(text, r.Prefix) {
		return "", false
	}
	// skip the prefix plus the separator after it (" " or ":")
	start := len(r.Prefix) + 1
	if start >= len(text) {
		return "", true
	}
	return text[start:], true
}

// Rules is checked in order; the first match wins. "set allergies" must
// come before the other "set" commands and "allergy info" is matched as a
// prefix so its event id can follow.
var Rules = []Rule{
	{Intent: IntentJoin, Prefix: "join"},
	{Intent: IntentSetAllergies, Prefix: "set allergies"},
	{Intent: IntentEdit, Prefix: "edit"},
	{Intent: IntentAllergyInfo, Prefix: "allergy info"},
	{Intent: IntentSetName, Prefix: "set name"},
	{Intent: IntentSetPage, Prefix: "set page"},
	{Intent: IntentInvite, Prefix: "invite"},
	{Intent: IntentDelete, Prefix: "delete"},
	{Intent: IntentHi, Prefix: "hi", Exact: true},
	{Intent: IntentButton, Prefix: "button", Exact: true},
	{Intent: IntentGeneric, Prefix: "generic", Exact: true},
	{Intent: IntentQuickReply, Prefix: "quick reply", Exact: true},
	{Intent: IntentHost, Prefix: "host", Exact: true},
	{Intent: IntentHelp, Prefix: "help", Exact: true},
	{Intent: IntentHelp2, Prefix: "help 2", Exact: true},
	{Intent: IntentGameOver, Prefix: "game over", Exact: true},
	{Intent: IntentDebug, Prefix: "debug", Exact: true},
}

// Classify lower-cases text and returns the first matching rule's intent
func Classify(text string) Command {
	normalized := strings.ToLower(strings.TrimSpace(text))

	for _, rule := range Rules {
		if arg, ok := rule.Match(normalized); ok {
			return Command{Intent: rule.Intent, Arg: arg, Text: normalized}
		}
	}
	return Command{Intent: IntentUnrecognized, Text: normalized}
}
