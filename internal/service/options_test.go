package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nick-the-BinaryTree/allergy-albert/internal/model"
)

func TestRouteOption_KnownPayloads(t *testing.T) {
	t.Parallel()

	for payload, want := range map[string]string{
		PayloadEventName:   "set name",
		PayloadEventPage:   "set page",
		PayloadInvite:      "invite {event code}",
		PayloadAllergyInfo: "allergy info {event code}",
		PayloadDelete:      "delete {event code}",
	} {
		reply := RouteOption(payload)
		assert.Equal(t, model.ReplyKindText, reply.Kind, payload)
		assert.Contains(t, reply.Body, want, payload)
	}
}

func TestRouteOption_UnknownPayloadIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, RouteOption("nope").IsEmpty())
}

func TestEventMenu(t *testing.T) {
	t.Parallel()

	menu := EventMenu("1000")

	assert.Equal(t, model.ReplyKindOptions, menu.Kind)
	assert.Equal(t, "1000", menu.EventID)
	assert.Equal(t, "Your eventID is 1000. What would you like to do?", menu.Body)
	require.Len(t, menu.Options, 5)
	assert.Equal(t, PayloadEventName, menu.Options[0].Payload)

	// callers get their own slice
	menu.Options[0].Title = "changed"
	assert.Equal(t, "Name it.", EventMenu("1").Options[0].Title)

	assert.Equal(t, "What would you like to do?", EventMenu("").Body)
}
