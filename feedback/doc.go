// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package feedback turns poll-answer events into state writes.

Processor resolves the answered poll against the registry and
dispatches on the context type: rating contexts convert the chosen
option index to a 1-10 rating, battle contexts record a side-0/side-1
vote. Answers for unknown polls and empty answers (retractions) drop
silently; storage failures are logged, never propagated to the bridge.
*/
package feedback
