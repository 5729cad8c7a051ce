package utils

import (
	"strings"
	"testing"
)

func TestSanitizeEmail(t *testing.T) {
	email, err := SanitizeEmail("  Admin@Example.COM ")
	if err != nil {
		t.Fatalf("expected valid email, got %v", err)
	}
	if email != "admin@example.com" {
		t.Fatalf("expected normalized email, got %q", email)
	}

	for _, bad := range []string{"", "not-an-email", "missing@tld", "@example.com"} {
		if _, err := SanitizeEmail(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	got := SanitizeInput("  <script>alert(1)</script>  ")
	if strings.Contains(got, "<") || strings.Contains(got, ">") {
		t.Fatalf("expected angle brackets to be escaped, got %q", got)
	}
	if strings.HasPrefix(got, " ") || strings.HasSuffix(got, " ") {
		t.Fatalf("expected surrounding whitespace to be trimmed, got %q", got)
	}
}

func TestDeleteUploadedFile_RejectsBadURLs(t *testing.T) {
	for _, bad := range []string{"", "/etc/passwd", "/uploads/../secrets", "relative/path"} {
		if err := DeleteUploadedFile(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}
