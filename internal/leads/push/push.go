// Package push abstracts the device push transport. The service persists
// every notification regardless; push delivery is best effort on top.
package push

import "context"

// Message is one push notification addressed to a single device token.
type Message struct {
	Token string
	Title string
	Body  string

	// Data is attached as message data for client-side routing.
	Data map[string]string
}

// Sender delivers a push message to a device. Implementations must treat
// delivery as best effort; callers log and continue on error.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
