package security

import (
	"strings"
	"testing"
)

func TestRandomStringLengthAndAlphabet(t *testing.T) {
	t.Parallel()

	const alphabet = "abc123"
	value, err := RandomString(32, alphabet)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(value) != 32 {
		t.Fatalf("expected 32 characters, got %d", len(value))
	}
	for _, character := range value {
		if !strings.ContainsRune(alphabet, character) {
			t.Fatalf("character %q outside alphabet", character)
		}
	}
}

func TestRandomStringEdgeCases(t *testing.T) {
	t.Parallel()

	if value, err := RandomString(0, "abc"); err != nil || value != "" {
		t.Fatalf("expected empty string for zero length, got %q err=%v", value, err)
	}
	if _, err := RandomString(-1, "abc"); err == nil {
		t.Fatal("expected error for negative length")
	}
	if _, err := RandomString(4, ""); err == nil {
		t.Fatal("expected error for empty alphabet")
	}
}

func TestRandomStringValuesDiffer(t *testing.T) {
	t.Parallel()

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	first, err := RandomString(24, alphabet)
	if err != nil {
		t.Fatalf("generate first: %v", err)
	}
	second, err := RandomString(24, alphabet)
	if err != nil {
		t.Fatalf("generate second: %v", err)
	}
	if first == second {
		t.Fatal("expected two generated values to differ")
	}
}
