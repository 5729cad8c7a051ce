package utils

import (
	"errors"
	"testing"
	"time"
)

const testAdmin = "admin@example.com"

type fakeMailer struct {
	sent []string
	fail error
}

func (m *fakeMailer) SendOTP(email, code string) error {
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, code)
	return nil
}

func (m *fakeMailer) lastCode(t *testing.T) string {
	t.Helper()
	if len(m.sent) == 0 {
		t.Fatal("no OTP was delivered")
	}
	return m.sent[len(m.sent)-1]
}

func TestIssue_DeliversAndStoresCode(t *testing.T) {
	mailer := &fakeMailer{}
	a := NewOTPAuthority(testAdmin, 5*time.Minute, mailer)

	if err := a.Issue(testAdmin); err != nil {
		t.Fatalf("expected issue to succeed, got %v", err)
	}

	code := mailer.lastCode(t)
	if len(code) != 6 {
		t.Fatalf("expected a 6-digit code, got %q", code)
	}

	if err := a.Verify(testAdmin, code); err != nil {
		t.Fatalf("expected delivered code to verify, got %v", err)
	}
}

func TestIssue_RejectsUnknownSubject(t *testing.T) {
	a := NewOTPAuthority(testAdmin, 5*time.Minute, &fakeMailer{})

	if err := a.Issue("intruder@example.com"); !errors.Is(err, ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject, got %v", err)
	}
}

func TestIssue_FailsWhenAdminNotConfigured(t *testing.T) {
	a := NewOTPAuthority("", 5*time.Minute, &fakeMailer{})

	if err := a.Issue(testAdmin); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestIssue_DeliveryFailureStoresNothing(t *testing.T) {
	mailer := &fakeMailer{fail: errors.New("smtp down")}
	a := NewOTPAuthority(testAdmin, 5*time.Minute, mailer)

	if err := a.Issue(testAdmin); !errors.Is(err, ErrDeliveryFailed) {
		t.Fatalf("expected ErrDeliveryFailed, got %v", err)
	}

	// No entry should exist to guess against
	if err := a.Verify(testAdmin, "000000"); !errors.Is(err, ErrNoChallenge) {
		t.Fatalf("expected ErrNoChallenge, got %v", err)
	}
}

func TestIssue_ReplacesPreviousChallenge(t *testing.T) {
	mailer := &fakeMailer{}
	a := NewOTPAuthority(testAdmin, 5*time.Minute, mailer)

	if err := a.Issue(testAdmin); err != nil {
		t.Fatalf("first issue failed: %v", err)
	}
	oldCode := mailer.lastCode(t)

	if err := a.Issue(testAdmin); err != nil {
		t.Fatalf("second issue failed: %v", err)
	}
	newCode := mailer.lastCode(t)

	if oldCode != newCode {
		if err := a.Verify(testAdmin, oldCode); !errors.Is(err, ErrOTPMismatch) {
			t.Fatalf("expected old code to be rejected, got %v", err)
		}
	}
	if err := a.Verify(testAdmin, newCode); err != nil {
		t.Fatalf("expected new code to verify, got %v", err)
	}
}

func TestVerify_NoChallengeIssued(t *testing.T) {
	a := NewOTPAuthority(testAdmin, 5*time.Minute, &fakeMailer{})

	if err := a.Verify(testAdmin, "123456"); !errors.Is(err, ErrNoChallenge) {
		t.Fatalf("expected ErrNoChallenge, got %v", err)
	}
}

func TestVerify_RejectsUnknownSubject(t *testing.T) {
	mailer := &fakeMailer{}
	a := NewOTPAuthority(testAdmin, 5*time.Minute, mailer)

	if err := a.Issue(testAdmin); err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if err := a.Verify("intruder@example.com", mailer.lastCode(t)); !errors.Is(err, ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject, got %v", err)
	}
}

func TestVerify_SingleUseConsumption(t *testing.T) {
	mailer := &fakeMailer{}
	a := NewOTPAuthority(testAdmin, 5*time.Minute, mailer)

	if err := a.Issue(testAdmin); err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	code := mailer.lastCode(t)

	if err := a.Verify(testAdmin, code); err != nil {
		t.Fatalf("first verification failed: %v", err)
	}
	if err := a.Verify(testAdmin, code); !errors.Is(err, ErrOTPConsumed) {
		t.Fatalf("expected ErrOTPConsumed on reuse, got %v", err)
	}
}

func TestVerify_WrongCode(t *testing.T) {
	mailer := &fakeMailer{}
	a := NewOTPAuthority(testAdmin, 5*time.Minute, mailer)

	if err := a.Issue(testAdmin); err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if err := a.Verify(testAdmin, "not-the-code"); !errors.Is(err, ErrOTPMismatch) {
		t.Fatalf("expected ErrOTPMismatch, got %v", err)
	}

	// A wrong guess must not consume the live challenge
	if err := a.Verify(testAdmin, mailer.lastCode(t)); err != nil {
		t.Fatalf("expected correct code to still verify, got %v", err)
	}
}

func TestVerify_ExpiredCode(t *testing.T) {
	mailer := &fakeMailer{}
	a := NewOTPAuthority(testAdmin, 5*time.Minute, mailer)

	issuedAt := time.Now()
	a.now = func() time.Time { return issuedAt }

	if err := a.Issue(testAdmin); err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	code := mailer.lastCode(t)

	a.now = func() time.Time { return issuedAt.Add(5*time.Minute + time.Second) }
	if err := a.Verify(testAdmin, code); !errors.Is(err, ErrOTPExpired) {
		t.Fatalf("expected ErrOTPExpired, got %v", err)
	}
}

func TestVerify_JustInsideWindow(t *testing.T) {
	mailer := &fakeMailer{}
	a := NewOTPAuthority(testAdmin, 5*time.Minute, mailer)

	issuedAt := time.Now()
	a.now = func() time.Time { return issuedAt }

	if err := a.Issue(testAdmin); err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	code := mailer.lastCode(t)

	a.now = func() time.Time { return issuedAt.Add(5*time.Minute - time.Second) }
	if err := a.Verify(testAdmin, code); err != nil {
		t.Fatalf("expected code inside window to verify, got %v", err)
	}
}

func TestGenerateOTP_Format(t *testing.T) {
	code, err := GenerateOTP(6)
	if err != nil {
		t.Fatalf("GenerateOTP failed: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6 characters, got %d", len(code))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Fatalf("expected only digits, got %q", code)
		}
	}
}
