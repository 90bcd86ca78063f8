package id

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	got, err := Generate("player")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.HasPrefix(got, "player-") {
		t.Errorf("Generate: got %q, want prefix %q", got, "player-")
	}

	// Default NanoID is 21 characters plus our prefix and separator.
	if len(got) != len("player-")+21 {
		t.Errorf("Generate: got length %d, want %d", len(got), len("player-")+21)
	}
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		got, err := Generate("team")
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if seen[got] {
			t.Fatalf("Generate produced duplicate ID %q", got)
		}
		seen[got] = true
	}
}

func TestMustGenerate(t *testing.T) {
	got := MustGenerate("draft")
	if !strings.HasPrefix(got, "draft-") {
		t.Errorf("MustGenerate: got %q, want prefix %q", got, "draft-")
	}
}
