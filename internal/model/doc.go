// Package model defines the domain entities and wire types of the bot.
//
// # Domain Entities
//
//   - User: a sender and the allergies they registered
//   - Event: a hosted gathering with the union of its guests' allergies
//
// # Replies
//
// ReplyAction is the engine's answer to one inbound message. It is either a
// plain text body, a quick-reply options menu for an event, or a structured
// template. Transport code converts it into a Send API request.
//
// # Webhook Types
//
// WebhookPayload and friends mirror the Messenger Platform callback JSON.
//
// # Error Types
//
// RFC 9457 Problem Details for HTTP-level failures are defined in errors.go.
package model
