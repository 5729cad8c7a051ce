package models

import (
	"time"
)

// EmailOTP represents one outstanding login challenge for the administrator
type EmailOTP struct {
	Email     string    `json:"email"`
	Code      string    `json:"-"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	Consumed  bool      `json:"consumed"`
}
