package auth

import (
	"os"
	"strings"
	"testing"
)

func TestGenerateAPIKeyUsesTestPrefixByDefault(t *testing.T) {
	os.Unsetenv("ROUTER_ENV")

	key, err := GenerateAPIKey()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(key, KeyPrefixTest) {
		t.Errorf("key = %s, want prefix %s", key, KeyPrefixTest)
	}
}

func TestGenerateAPIKeyUsesProductionPrefixWhenConfigured(t *testing.T) {
	os.Setenv("ROUTER_ENV", "production")
	defer os.Unsetenv("ROUTER_ENV")

	key, err := GenerateAPIKey()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(key, KeyPrefixProduction) {
		t.Errorf("key = %s, want prefix %s", key, KeyPrefixProduction)
	}
}

func TestGenerateAPIKeyProducesDistinctKeys(t *testing.T) {
	a, err := GenerateAPIKey()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, err := GenerateAPIKey()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if a == b {
		t.Error("expected two generated keys to differ")
	}
}

func TestStaticAPIKeyCheckerAcceptsConfiguredKey(t *testing.T) {
	checker := NewStaticAPIKeyChecker("hmac-secret", "router_live_abc123")

	if err := checker.Check("router_live_abc123"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestStaticAPIKeyCheckerRejectsWrongKey(t *testing.T) {
	checker := NewStaticAPIKeyChecker("hmac-secret", "router_live_abc123")

	if err := checker.Check("router_live_wrongkey"); err != ErrAPIKeyMismatch {
		t.Errorf("err = %v, want ErrAPIKeyMismatch", err)
	}
}

func TestStaticAPIKeyCheckerRejectsUnprefixedKey(t *testing.T) {
	checker := NewStaticAPIKeyChecker("hmac-secret", "router_live_abc123")

	if err := checker.Check("abc123"); err != ErrAPIKeyMismatch {
		t.Errorf("err = %v, want ErrAPIKeyMismatch", err)
	}
}

func TestStaticAPIKeyCheckerDifferentSecretsProduceDifferentHashes(t *testing.T) {
	c1 := NewStaticAPIKeyChecker("secret-one", "router_live_abc123")
	c2 := NewStaticAPIKeyChecker("secret-two", "router_live_abc123")

	if c1.keyHash == c2.keyHash {
		t.Error("expected different hmac secrets to yield different key hashes for the same key")
	}
}
