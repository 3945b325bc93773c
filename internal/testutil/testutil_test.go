package testutil

import (
	"testing"
	"time"
)

func TestSequenceIDs(t *testing.T) {
	ids := NewSequenceIDs()

	if got := ids.NewID(); got != "id-0001" {
		t.Errorf("first NewID() = %q, want id-0001", got)
	}
	if got := ids.NewID(); got != "id-0002" {
		t.Errorf("second NewID() = %q, want id-0002", got)
	}

	ids.Reset()
	if got := ids.NewID(); got != "id-0001" {
		t.Errorf("NewID() after Reset() = %q, want id-0001", got)
	}
}

func TestTickingClock(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := NewTickingClock(start, time.Second)

	if got := clock.Now(); !got.Equal(start) {
		t.Errorf("first Now() = %v, want %v", got, start)
	}
	if got := clock.Now(); !got.Equal(start.Add(time.Second)) {
		t.Errorf("second Now() = %v, want %v", got, start.Add(time.Second))
	}
}
