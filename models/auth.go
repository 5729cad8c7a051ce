// models/auth.go

package models

import "time"

// VerifyOTPRequest model for submitting the emailed code
type VerifyOTPRequest struct {
	OTP string `json:"otp" validate:"required"`
}

// AuthResponse is returned after a successful OTP verification
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ValidateTokenResponse reports whether a session token is still usable
type ValidateTokenResponse struct {
	Valid     bool       `json:"valid"`
	Email     string     `json:"email,omitempty"`
	Message   string     `json:"message,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
