package id

import (
	"encoding/hex"
	"testing"
)

func TestNewID32(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		got := NewID32()
		if len(got) != 32 {
			t.Fatalf("length = %d, want 32 (got=%q)", len(got), got)
		}
		b, err := hex.DecodeString(got)
		if err != nil || len(b) != 16 {
			t.Fatalf("not valid hex of 16 bytes: %q (%v)", got, err)
		}
		for _, r := range got {
			if r >= 'A' && r <= 'Z' {
				t.Fatalf("uppercase in id: %q", got)
			}
		}
		if _, ok := seen[got]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, got)
		}
		seen[got] = struct{}{}
	}
}
