// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package transport is the outbound half of the chat bridge.

Messenger is the interface the handlers talk to; BridgeClient is its
production implementation, POSTing JSON to the bridge process:

	POST {bridge}/messages  {"chat_id": ..., "text": ...}
	POST {bridge}/polls     {"chat_id": ..., "question": ..., "options": [...]}
	                        → {"poll_id": "..."}

Quiz polls additionally carry quiz, correct_index and explanation.
The poll ID the bridge returns is the correlation key later
poll-answer events carry back in.
*/
package transport
