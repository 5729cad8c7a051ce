package main

import (
	"log"
	"mime"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/finsight/blog_backend/config"
	"github.com/finsight/blog_backend/controllers"
	"github.com/finsight/blog_backend/middleware"
	"github.com/finsight/blog_backend/routes"
	"github.com/finsight/blog_backend/utils"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// Ensure correct MIME type for SVG files
	_ = mime.AddExtensionType(".svg", "image/svg+xml")

	// Connect to Redis
	redisClient := config.ConnectRedis()

	// Connect to database
	client := config.ConnectDB()

	// Ensure uploads directories exist
	if err := utils.InitializeStorage(); err != nil {
		log.Fatal("Failed to initialize file storage:", err)
	}

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeaders())
	e.Use(httpsRedirect())

	// Auth core wiring
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		log.Println("Warning: ADMIN_EMAIL not set; admin login will be unavailable")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}
	codec := utils.NewTokenCodec(jwtSecret, utils.SessionValidityWindow)

	mailer, err := utils.NewEmailService()
	if err != nil {
		log.Printf("Warning: %v; OTP delivery will fail until SMTP is configured", err)
	}
	var otpMailer utils.Mailer
	if mailer != nil {
		otpMailer = mailer
	} else {
		otpMailer = unconfiguredMailer{}
	}
	otpAuthority := utils.NewOTPAuthority(adminEmail, utils.OTPValidityWindow, otpMailer)

	// Initialize controllers
	authController := controllers.NewAuthController(otpAuthority, codec, adminEmail, redisClient)
	blogController := controllers.NewBlogController(client)
	subscriberController := controllers.NewSubscriberController(client)
	contactController := controllers.NewContactController(client)
	assessmentController := controllers.NewAssessmentController(client)

	// Register routes
	routes.RegisterMainRoutes(e)
	routes.RegisterAuthRoutes(e, authController)
	routes.RegisterBlogRoutes(e, blogController, codec)
	routes.RegisterSubscriberRoutes(e, subscriberController, contactController, assessmentController, codec)
	routes.RegisterFileRoutes(e)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

// unconfiguredMailer stands in when SMTP settings are absent so the issue
// endpoint reports a configuration error instead of panicking
type unconfiguredMailer struct{}

func (unconfiguredMailer) SendOTP(email, code string) error {
	return utils.ErrNotConfigured
}

func httpsRedirect() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("X-Forwarded-Proto") == "http" {
				return c.Redirect(301, "https://"+c.Request().Host+c.Request().RequestURI)
			}
			return next(c)
		}
	}
}
