package uuid

import (
	"testing"
	"time"

	googleuuid "github.com/google/uuid"
)

func TestNewAt(t *testing.T) {
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	id := NewAt(at)

	parsed, err := googleuuid.Parse(id)
	if err != nil {
		t.Fatalf("generated id %q is not a UUID: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
	if parsed.Variant() != googleuuid.RFC4122 {
		t.Errorf("expected RFC4122 variant, got %v", parsed.Variant())
	}

	ts, err := Timestamp(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ts.Equal(at) {
		t.Errorf("expected timestamp %v, got %v", at, ts)
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := New()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s after %d generations", id, i)
		}
		seen[id] = struct{}{}
	}
}

func TestNewAt_SortsByTime(t *testing.T) {
	earlier := NewAt(time.UnixMilli(1_700_000_000_000))
	later := NewAt(time.UnixMilli(1_700_000_000_001))
	if earlier >= later {
		t.Errorf("expected %s < %s", earlier, later)
	}
}

func TestTimestamp_RejectsOtherVersions(t *testing.T) {
	if _, err := Timestamp(googleuuid.NewString()); err == nil {
		t.Error("expected error for a v4 uuid")
	}
	if _, err := Timestamp("1700000000000abc123"); err == nil {
		t.Error("expected error for a non-uuid id")
	}
}
