// controllers/auth_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/finsight/blog_backend/models"
	"github.com/finsight/blog_backend/utils"
)

// AuthController handles the passwordless admin login flow
type AuthController struct {
	OTP        *utils.OTPAuthority
	Codec      *utils.TokenCodec
	AdminEmail string
	Redis      *redis.Client
}

// NewAuthController creates a new auth controller
func NewAuthController(otp *utils.OTPAuthority, codec *utils.TokenCodec, adminEmail string, redisClient *redis.Client) *AuthController {
	return &AuthController{
		OTP:        otp,
		Codec:      codec,
		AdminEmail: adminEmail,
		Redis:      redisClient,
	}
}

// SendOTP issues a fresh login code and emails it to the configured admin
func (ac *AuthController) SendOTP(c echo.Context) error {
	if ac.AdminEmail == "" {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Admin email not configured. Please set ADMIN_EMAIL",
		})
	}

	err := ac.OTP.Issue(ac.AdminEmail)
	if err != nil {
		log.Printf("Failed to issue OTP: %v", err)
		if errors.Is(err, utils.ErrNotConfigured) {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Email configuration missing. Please set ADMIN_EMAIL and the SMTP variables",
			})
		}
		if errors.Is(err, utils.ErrDeliveryFailed) {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Failed to send OTP email",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to send OTP",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "OTP sent successfully",
	})
}

// VerifyOTP checks the submitted code and mints a session token on success.
// All verification failures look the same to the caller; the specific kind
// is only logged.
func (ac *AuthController) VerifyOTP(c echo.Context) error {
	var verifyReq models.VerifyOTPRequest
	if err := c.Bind(&verifyReq); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if verifyReq.OTP == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "OTP is required",
		})
	}

	if ac.AdminEmail == "" {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Admin email not configured. Please set ADMIN_EMAIL",
		})
	}

	// Bounded attempts per hour when Redis is available
	if ac.Redis != nil {
		if err := utils.ValidateOTPAttempts(ac.AdminEmail, ac.Redis); err != nil {
			log.Printf("OTP attempt limit hit for %s: %v", ac.AdminEmail, err)
			return c.JSON(http.StatusTooManyRequests, models.Response{
				Status:  http.StatusTooManyRequests,
				Message: "Too many attempts. Please try again later",
			})
		}
	}

	if err := ac.OTP.Verify(ac.AdminEmail, verifyReq.OTP); err != nil {
		if errors.Is(err, utils.ErrNotConfigured) {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Admin email not configured. Please set ADMIN_EMAIL",
			})
		}
		log.Printf("OTP verification failed: %v", err)
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid or expired OTP",
		})
	}

	token, err := ac.Codec.Mint(ac.AdminEmail)
	if err != nil {
		log.Printf("Failed to mint session token: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create session",
		})
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Message: "OTP verified successfully",
		Token:   token,
	})
}

// ValidateToken lets the dashboard check whether its session is still usable
func (ac *AuthController) ValidateToken(c echo.Context) error {
	token, err := utils.ExtractBearerToken(c.Request().Header.Get("Authorization"))
	if err != nil {
		return c.JSON(http.StatusOK, models.ValidateTokenResponse{
			Valid:   false,
			Message: "No token provided",
		})
	}

	email, err := ac.Codec.Validate(token)
	if err != nil {
		return c.JSON(http.StatusOK, models.ValidateTokenResponse{
			Valid:   false,
			Message: "Invalid or expired token",
		})
	}

	var expiresAt *time.Time
	if exp, err := ac.Codec.ExpiresAt(token); err == nil {
		expiresAt = &exp
	}

	return c.JSON(http.StatusOK, models.ValidateTokenResponse{
		Valid:     true,
		Email:     email,
		Message:   "Token is valid",
		ExpiresAt: expiresAt,
	})
}
