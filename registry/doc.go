// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry correlates open polls with their pending contexts.

Register stores a context under the transport's poll ID; Resolve looks
it up without removing it, so every member of the chat can answer the
same poll. Contexts live for the process lifetime - a restart forgets
open polls, and answers to forgotten polls drop silently downstream.
*/
package registry
