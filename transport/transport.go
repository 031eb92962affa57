// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package transport

// PollOptions carries the optional quiz settings for OpenPoll.
type PollOptions struct {
	Quiz         bool
	CorrectIndex int
	Explanation  string
}

// Messenger is the outbound half of the chat transport. The engine never
// talks to a chat platform directly: production wires the HTTP bridge
// client, tests wire a fake.
type Messenger interface {
	// SendMessage delivers a plain text message to a chat.
	SendMessage(chatID int64, text string) error

	// OpenPoll opens a single-answer poll and returns the transport's
	// opaque poll ID, the key later poll-answer events carry.
	OpenPoll(chatID int64, question string, options []string, opts PollOptions) (string, error)
}
