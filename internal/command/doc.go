// Package command classifies free-text chat messages into intents.
//
// Classification is a pure function over an ordered rule table. It never
// looks at state and never validates arguments; that is left to the service
// layer, which must cope with empty or malformed arguments.
package command
