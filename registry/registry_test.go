// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"fmt"
	"sync"
	"testing"
)

func TestRegisterAndResolve(t *testing.T) {
	reg := New()

	reg.Register("poll-1", "ctx-1")

	ctx, ok := reg.Resolve("poll-1")
	if !ok {
		t.Fatal("Expected poll-1 to resolve")
	}
	if ctx != "ctx-1" {
		t.Errorf("Expected ctx-1, got %v", ctx)
	}
}

func TestResolveDoesNotConsume(t *testing.T) {
	reg := New()
	reg.Register("poll-1", "ctx-1")

	// Every chat member answers the same poll, so resolution must not
	// remove the context.
	for i := 0; i < 3; i++ {
		if _, ok := reg.Resolve("poll-1"); !ok {
			t.Fatalf("Resolve %d failed, context was consumed", i)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	reg := New()

	if _, ok := reg.Resolve("nope"); ok {
		t.Error("Expected unknown poll ID to not resolve")
	}
}

func TestRegisterOverwrites(t *testing.T) {
	reg := New()
	reg.Register("poll-1", "old")
	reg.Register("poll-1", "new")

	ctx, _ := reg.Resolve("poll-1")
	if ctx != "new" {
		t.Errorf("Expected overwrite, got %v", ctx)
	}
	if reg.Len() != 1 {
		t.Errorf("Expected one entry, got %d", reg.Len())
	}
}

func TestConcurrentAccess(t *testing.T) {
	reg := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			reg.Register(fmt.Sprintf("poll-%d", i), i)
		}(i)
		go func(i int) {
			defer wg.Done()
			reg.Resolve(fmt.Sprintf("poll-%d", i))
		}(i)
	}
	wg.Wait()

	if reg.Len() != 50 {
		t.Errorf("Expected 50 entries, got %d", reg.Len())
	}
}
