// utils/otp.go
package utils

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"math/big"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/finsight/blog_backend/models"
)

// OTPValidityWindow is how long an issued code stays usable
const OTPValidityWindow = 5 * time.Minute

var (
	ErrNotConfigured  = errors.New("admin email is not configured")
	ErrUnknownSubject = errors.New("subject is not the configured admin")
	ErrDeliveryFailed = errors.New("failed to deliver OTP")
	ErrNoChallenge    = errors.New("no OTP has been issued")
	ErrOTPExpired     = errors.New("OTP has expired")
	ErrOTPMismatch    = errors.New("OTP does not match")
	ErrOTPConsumed    = errors.New("OTP has already been used")
)

// Mailer delivers a one-time code to an address. How the message travels
// (SMTP, provider API) is up to the implementation.
type Mailer interface {
	SendOTP(email, code string) error
}

// OTPAuthority issues and verifies login codes for the single configured
// administrator. The store holds at most one live entry; issuing a new code
// replaces whatever was outstanding.
type OTPAuthority struct {
	mu         sync.Mutex
	entry      *models.EmailOTP
	adminEmail string
	validity   time.Duration
	mailer     Mailer
	now        func() time.Time
}

// NewOTPAuthority creates an OTP authority for the given admin address
func NewOTPAuthority(adminEmail string, validity time.Duration, mailer Mailer) *OTPAuthority {
	if validity <= 0 {
		validity = OTPValidityWindow
	}
	return &OTPAuthority{
		adminEmail: adminEmail,
		validity:   validity,
		mailer:     mailer,
		now:        time.Now,
	}
}

// Issue generates a fresh code for the subject, sends it through the mailer
// and stores it as the only live challenge. The entry is stored only after
// delivery succeeds, so a failed send leaves no code to guess against.
func (a *OTPAuthority) Issue(subjectEmail string) error {
	if a.adminEmail == "" {
		return ErrNotConfigured
	}
	if subjectEmail != a.adminEmail {
		return ErrUnknownSubject
	}

	code, err := GenerateOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	if err := a.mailer.SendOTP(subjectEmail, code); err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return ErrNotConfigured
		}
		log.Printf("OTP delivery to %s failed: %v", subjectEmail, err)
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	issuedAt := a.now()
	a.mu.Lock()
	a.entry = &models.EmailOTP{
		Email:     subjectEmail,
		Code:      code,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(a.validity),
		Consumed:  false,
	}
	a.mu.Unlock()

	return nil
}

// Verify checks a submitted code against the live challenge and consumes it
// on success. A consumed code can never verify again.
func (a *OTPAuthority) Verify(subjectEmail, submittedCode string) error {
	if a.adminEmail == "" {
		return ErrNotConfigured
	}
	if subjectEmail != a.adminEmail {
		return ErrUnknownSubject
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	entry := a.entry
	if entry == nil || entry.Email != subjectEmail {
		return ErrNoChallenge
	}
	if a.now().After(entry.ExpiresAt) {
		return ErrOTPExpired
	}
	if subtle.ConstantTimeCompare([]byte(submittedCode), []byte(entry.Code)) != 1 {
		return ErrOTPMismatch
	}
	if entry.Consumed {
		return ErrOTPConsumed
	}

	entry.Consumed = true
	return nil
}

// GenerateOTP generates a random numeric code of the specified length
func GenerateOTP(length int) (string, error) {
	const digits = "0123456789"
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		result[i] = digits[num.Int64()]
	}
	return string(result), nil
}

// ValidateOTPAttempts limits verification attempts per subject via Redis
func ValidateOTPAttempts(email string, redis *redis.Client) error {
	key := "otp_attempts:" + email
	attempts, err := redis.Incr(context.Background(), key).Result()
	if err != nil {
		return err
	}

	// Set expiry if first attempt
	if attempts == 1 {
		redis.Expire(context.Background(), key, 1*time.Hour)
	}

	// Limit to 5 attempts per hour
	if attempts > 5 {
		return errors.New("too many OTP attempts")
	}

	return nil
}
