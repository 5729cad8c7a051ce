// utils/auth.go
package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

// SessionValidityWindow is how long a minted session token stays valid
const SessionValidityWindow = 24 * time.Hour

var (
	ErrMissingToken   = errors.New("no token provided")
	ErrMalformedToken = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")
)

// JwtCustomClaims for session tokens
type JwtCustomClaims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// TokenCodec mints and validates the admin session token. Validation is a
// pure function of the token and the clock; no server-side session state.
type TokenCodec struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// NewTokenCodec creates a codec with the given signing secret and validity window
func NewTokenCodec(secret string, validity time.Duration) *TokenCodec {
	if validity <= 0 {
		validity = SessionValidityWindow
	}
	return &TokenCodec{
		secret:   []byte(secret),
		validity: validity,
		now:      time.Now,
	}
}

// Mint produces a signed token identifying the subject as of now
func (tc *TokenCodec) Mint(subjectEmail string) (string, error) {
	issuedAt := tc.now()
	claims := &JwtCustomClaims{
		Email: subjectEmail,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: issuedAt.Add(tc.validity).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tc.secret)
}

// Validate checks the token's signature and freshness and returns the
// subject email it was minted for.
func (tc *TokenCodec) Validate(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrMissingToken
	}

	claims := &JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return tc.secret, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return "", ErrTokenExpired
		}
		return "", ErrMalformedToken
	}
	if !token.Valid {
		return "", ErrMalformedToken
	}

	// Freshness relative to mint time, independent of the exp claim
	if claims.IssuedAt > 0 && tc.now().Sub(time.Unix(claims.IssuedAt, 0)) > tc.validity {
		return "", ErrTokenExpired
	}
	if claims.Email == "" {
		return "", ErrMalformedToken
	}

	return claims.Email, nil
}

// ExpiresAt reports when a previously validated token stops being accepted
func (tc *TokenCodec) ExpiresAt(tokenString string) (time.Time, error) {
	claims := &JwtCustomClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return tc.secret, nil
	})
	if err != nil {
		return time.Time{}, ErrMalformedToken
	}
	return time.Unix(claims.ExpiresAt, 0), nil
}

// ExtractBearerToken pulls the raw token out of an Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingToken
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", ErrMalformedToken
	}
	return strings.TrimPrefix(authHeader, "Bearer "), nil
}
