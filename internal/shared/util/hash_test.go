package util

import "testing"

func TestHashPrompt(t *testing.T) {
	prompt := "Return a single JSON object"
	got := HashPrompt(prompt)
	if got != HashPrompt(prompt) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	if got == HashPrompt(prompt+" ") {
		t.Fatalf("expected different hash for different input")
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 16 {
		t.Fatalf("expected 16 hex characters, got %d", len(got))
	}
}
