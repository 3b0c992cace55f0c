package utils

import (
	"strings"
	"testing"
)

func TestGenerateInviteToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		tok, err := GenerateInviteToken(8)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(tok) != 8 {
			t.Fatalf("length: want 8, got %d (%q)", len(tok), tok)
		}
		for _, ch := range tok {
			if !strings.ContainsRune(inviteCharset, ch) {
				t.Fatalf("token %q contains %q outside charset", tok, ch)
			}
		}
		seen[tok] = true
	}
	if len(seen) < 2 {
		t.Fatal("tokens are not random")
	}

	if _, err := GenerateInviteToken(0); err == nil {
		t.Fatal("zero length must error")
	}
}

func TestGenerateSecureToken(t *testing.T) {
	tok, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(tok) != 64 { // hex doubles the byte count
		t.Fatalf("length: want 64, got %d", len(tok))
	}
	if _, err := GenerateSecureToken(-1); err == nil {
		t.Fatal("negative length must error")
	}
}

func TestNormalizeInviteToken(t *testing.T) {
	cases := map[string]string{
		"ab12cd34":   "AB12CD34",
		" AB12-CD34": "AB12CD34",
		"ab12-cd34 ": "AB12CD34",
	}
	for in, want := range cases {
		if got := NormalizeInviteToken(in); got != want {
			t.Errorf("normalize %q: want %q, got %q", in, want, got)
		}
	}

	if !IsValidInviteTokenFormat("AB12CD34") {
		t.Error("AB12CD34 should be valid")
	}
	if IsValidInviteTokenFormat("short") {
		t.Error("short token should be invalid")
	}
	if IsValidInviteTokenFormat("ab12cd34") {
		t.Error("format check expects normalized input")
	}
}
