package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/finsight/blog_backend/controllers"
)

// RegisterAuthRoutes sets up the passwordless login endpoints
func RegisterAuthRoutes(e *echo.Echo, authController *controllers.AuthController) {
	e.POST("/api/auth/send-otp", authController.SendOTP)
	e.POST("/api/auth/verify-otp", authController.VerifyOTP)
	e.GET("/api/auth/validate-token", authController.ValidateToken)
}
