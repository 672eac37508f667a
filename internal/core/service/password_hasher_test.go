package service

import (
	"strings"
	"testing"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("abc123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "abc123" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}
	if !h.Verify("abc123", hash) {
		t.Fatalf("Verify rejected the original password")
	}
	if h.Verify("abc124", hash) {
		t.Fatalf("Verify accepted a different password")
	}
}

func TestBcryptHasher_Salted(t *testing.T) {
	h := NewBcryptHasher()

	h1, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
}

func TestBcryptHasher_MalformedHashFailsClosed(t *testing.T) {
	h := NewBcryptHasher()

	for _, malformed := range []string{"", "not-a-hash", "$2a$zz$broken"} {
		if h.Verify("anything", malformed) {
			t.Fatalf("Verify accepted malformed hash %q", malformed)
		}
	}
}
