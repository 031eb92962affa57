// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP endpoints of the jukebot engine.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(env, processor)

# Endpoints

Health:

	GET /health

Inbound events from the transport bridge:

	POST /events/command     - A chat command (/recommend, /battle, ...)
	POST /events/poll-answer - A poll answer or retraction

Both accept JSON bodies and answer {"status":"ok"} once the event has
been handled. Malformed bodies get a 400 with an error payload.

# Command Dispatch

Command names are lower-cased and stripped of a leading slash, then
dispatched through a name-to-handler map. Names without a registered
handler fall through to the unknown-command reply rather than an HTTP
error, because from the bridge's point of view the event was delivered
fine.
*/
package router
