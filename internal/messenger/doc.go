// Package messenger is a small client for the Messenger Platform Send API.
//
// It converts model.ReplyAction values into Send API payloads (text,
// quick replies, button and generic templates) and sets the page greeting
// through the Thread Settings API. The access token is sent as a query
// parameter, as the Graph API expects.
package messenger
