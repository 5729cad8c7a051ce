package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/finsight/blog_backend/models"
	"github.com/finsight/blog_backend/utils"
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

func newAuthTestServer(adminEmail string, mailer utils.Mailer) (*echo.Echo, *AuthController) {
	otp := utils.NewOTPAuthority(adminEmail, 5*time.Minute, mailer)
	codec := utils.NewTokenCodec("controller-test-secret", 24*time.Hour)
	ac := NewAuthController(otp, codec, adminEmail, nil)

	e := echo.New()
	e.POST("/api/auth/send-otp", ac.SendOTP)
	e.POST("/api/auth/verify-otp", ac.VerifyOTP)
	e.GET("/api/auth/validate-token", ac.ValidateToken)
	return e, ac
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSendOTP_Success(t *testing.T) {
	mailer := &fakeMailer{}
	e, _ := newAuthTestServer(testAdmin, mailer)

	rec := postJSON(e, "/api/auth/send-otp", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one delivery, got %d", len(mailer.sent))
	}
}

func TestSendOTP_AdminNotConfigured(t *testing.T) {
	e, _ := newAuthTestServer("", &fakeMailer{})

	rec := postJSON(e, "/api/auth/send-otp", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ADMIN_EMAIL") {
		t.Fatalf("expected configuration message, got %s", rec.Body.String())
	}
}

func TestSendOTP_DeliveryFailure(t *testing.T) {
	mailer := &fakeMailer{fail: echo.ErrInternalServerError}
	e, _ := newAuthTestServer(testAdmin, mailer)

	rec := postJSON(e, "/api/auth/send-otp", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Failed to send OTP email") {
		t.Fatalf("expected delivery failure message, got %s", rec.Body.String())
	}
}

func TestVerifyOTP_FullFlow(t *testing.T) {
	mailer := &fakeMailer{}
	e, ac := newAuthTestServer(testAdmin, mailer)

	if rec := postJSON(e, "/api/auth/send-otp", ""); rec.Code != http.StatusOK {
		t.Fatalf("send-otp failed: %d", rec.Code)
	}
	code := mailer.sent[len(mailer.sent)-1]

	rec := postJSON(e, "/api/auth/verify-otp", `{"otp":"`+code+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a session token in the response")
	}

	email, err := ac.Codec.Validate(resp.Token)
	if err != nil {
		t.Fatalf("minted token failed validation: %v", err)
	}
	if email != testAdmin {
		t.Fatalf("expected token for %s, got %s", testAdmin, email)
	}

	// The code is single use
	rec = postJSON(e, "/api/auth/verify-otp", `{"otp":"`+code+`"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 on code reuse, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid or expired OTP") {
		t.Fatalf("expected uniform failure message, got %s", rec.Body.String())
	}
}

func TestVerifyOTP_WrongCodeUniformMessage(t *testing.T) {
	mailer := &fakeMailer{}
	e, _ := newAuthTestServer(testAdmin, mailer)

	if rec := postJSON(e, "/api/auth/send-otp", ""); rec.Code != http.StatusOK {
		t.Fatalf("send-otp failed: %d", rec.Code)
	}

	rec := postJSON(e, "/api/auth/verify-otp", `{"otp":"000000"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid or expired OTP") {
		t.Fatalf("expected uniform failure message, got %s", rec.Body.String())
	}
}

func TestVerifyOTP_NoChallengeUniformMessage(t *testing.T) {
	e, _ := newAuthTestServer(testAdmin, &fakeMailer{})

	rec := postJSON(e, "/api/auth/verify-otp", `{"otp":"123456"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid or expired OTP") {
		t.Fatalf("expected uniform failure message, got %s", rec.Body.String())
	}
}

func TestVerifyOTP_MissingCode(t *testing.T) {
	e, _ := newAuthTestServer(testAdmin, &fakeMailer{})

	rec := postJSON(e, "/api/auth/verify-otp", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "OTP is required") {
		t.Fatalf("expected missing-code message, got %s", rec.Body.String())
	}
}

func TestValidateTokenEndpoint(t *testing.T) {
	e, ac := newAuthTestServer(testAdmin, &fakeMailer{})

	token, err := ac.Codec.Mint(testAdmin)
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/validate-token", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp models.ValidateTokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Valid || resp.Email != testAdmin {
		t.Fatalf("expected valid token for %s, got %+v", testAdmin, resp)
	}

	// Without a token the endpoint reports invalid, it does not reject
	req = httptest.NewRequest(http.MethodGet, "/api/auth/validate-token", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Valid {
		t.Fatal("expected missing token to be reported invalid")
	}
}
