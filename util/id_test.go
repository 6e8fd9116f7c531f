package util

import "testing"

func TestRandomID(t *testing.T) {
	id := RandomID(12)
	if len(id) != 12 {
		t.Fatalf("expected length 12, got %d", len(id))
	}
	for _, c := range id {
		if !(c >= 'a' && c <= 'z') && !(c >= '0' && c <= '9') {
			t.Fatalf("unexpected character %q in %s", c, id)
		}
	}
}

func TestNewRunID(t *testing.T) {
	if got := NewRunID(); len(got) != runIDLength {
		t.Fatalf("expected length %d, got %d", runIDLength, len(got))
	}
	if RandomID(0) != "" {
		t.Fatalf("expected empty id for zero length")
	}
}
