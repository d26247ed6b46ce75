package service

import "errors"

// Centralized service layer errors.
// Every chat operation returns one of these (or nil); replies.go turns them
// into what the user reads, so nothing here ever reaches the webhook.

// ===== Lookup Errors =====
var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
)

// ===== Authorization Errors =====
var (
	ErrNotEventHost = errors.New("not the host of this event")
)

// ===== Input Errors =====
var (
	ErrMalformedInput = errors.New("malformed command arguments")
	ErrNoAllergies    = errors.New("no allergies listed")
)

// ===== Feature Errors =====
var (
	ErrDebugDisabled = errors.New("debug command disabled")
)
