// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog is the JSON-file song catalog.

Store serves reads from memory under an RWMutex; Add and Remove rewrite
the backing file (temp file + rename) before mutating the in-memory
copy, so a crash mid-write never leaves a truncated catalog. A missing
or malformed file opens as an empty catalog instead of failing startup.

LoadQuotes reads the quotes file with the same tolerance.
*/
package catalog
