package utils

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "test-secret-key-for-sessions"

func TestMintThenValidate_RoundTrip(t *testing.T) {
	codec := NewTokenCodec(testSecret, 24*time.Hour)

	token, err := codec.Mint("admin@example.com")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	email, err := codec.Validate(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if email != "admin@example.com" {
		t.Fatalf("expected admin@example.com, got %q", email)
	}
}

func TestValidate_MissingToken(t *testing.T) {
	codec := NewTokenCodec(testSecret, 24*time.Hour)

	if _, err := codec.Validate(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestValidate_MalformedToken(t *testing.T) {
	codec := NewTokenCodec(testSecret, 24*time.Hour)

	for _, token := range []string{"garbage", "a.b.c", "YWRtaW5AZXhhbXBsZS5jb20tMTcwMDAwMDAwMA=="} {
		if _, err := codec.Validate(token); !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("expected ErrMalformedToken for %q, got %v", token, err)
		}
	}
}

func TestValidate_RejectsWrongSecret(t *testing.T) {
	codec := NewTokenCodec(testSecret, 24*time.Hour)
	other := NewTokenCodec("a-different-secret", 24*time.Hour)

	token, err := other.Mint("admin@example.com")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	if _, err := codec.Validate(token); !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken for forged token, got %v", err)
	}
}

func TestValidate_JustInsideWindow(t *testing.T) {
	minter := NewTokenCodec(testSecret, 24*time.Hour)
	minter.now = func() time.Time { return time.Now().Add(-(23*time.Hour + 59*time.Minute)) }

	token, err := minter.Mint("admin@example.com")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	codec := NewTokenCodec(testSecret, 24*time.Hour)
	email, err := codec.Validate(token)
	if err != nil {
		t.Fatalf("expected token inside window to validate, got %v", err)
	}
	if email != "admin@example.com" {
		t.Fatalf("expected admin@example.com, got %q", email)
	}
}

func TestValidate_ExpiredToken(t *testing.T) {
	minter := NewTokenCodec(testSecret, 24*time.Hour)
	minter.now = func() time.Time { return time.Now().Add(-(24*time.Hour + time.Minute)) }

	token, err := minter.Mint("admin@example.com")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	codec := NewTokenCodec(testSecret, 24*time.Hour)
	if _, err := codec.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestMint_DistinctTokensOverTime(t *testing.T) {
	codec := NewTokenCodec(testSecret, 24*time.Hour)

	base := time.Now()
	codec.now = func() time.Time { return base }
	first, err := codec.Mint("admin@example.com")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	codec.now = func() time.Time { return base.Add(time.Second) }
	second, err := codec.Mint("admin@example.com")
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	if first == second {
		t.Fatal("expected tokens minted at different times to differ")
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken for empty header, got %v", err)
	}
	if _, err := ExtractBearerToken("Basic dXNlcjpwYXNz"); !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken for non-bearer header, got %v", err)
	}
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("expected bearer header to parse, got %v", err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("expected raw token, got %q", token)
	}
}
