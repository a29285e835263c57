package utils

import (
	"strings"
	"testing"
)

func TestHashString_Deterministic(t *testing.T) {
	a := HashString("payload", "key")
	b := HashString("payload", "key")
	if a != b {
		t.Fatalf("expected equal hashes, got %s and %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}

func TestHashString_KeyMatters(t *testing.T) {
	if HashString("payload", "k1") == HashString("payload", "k2") {
		t.Fatal("expected different hashes for different keys")
	}
}

func TestSHA256Hex_KnownValue(t *testing.T) {
	// sha256("abc")
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := SHA256Hex("abc"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestSignPayload_VerifySignature(t *testing.T) {
	body := []byte(`{"type":"pageview"}`)
	sig := SignPayload(body, "whsec")

	if !strings.HasPrefix(sig, "sha256=") {
		t.Fatalf("expected sha256= prefix, got %s", sig)
	}
	if !VerifySignature(body, "whsec", sig) {
		t.Error("expected signature to verify")
	}
	if VerifySignature(body, "other", sig) {
		t.Error("expected signature with wrong secret to fail")
	}
	if VerifySignature([]byte("{}"), "whsec", sig) {
		t.Error("expected signature over different body to fail")
	}
}
