// middleware/admin_middleware.go
package middleware

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/finsight/blog_backend/models"
	"github.com/finsight/blog_backend/utils"
)

// RequireAdmin validates the bearer session token before any protected
// handler runs. Failures are reported uniformly; the specific reason is
// only logged server-side.
func RequireAdmin(codec *utils.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.ExtractBearerToken(c.Request().Header.Get("Authorization"))
			if err != nil {
				log.Printf("Auth rejected for %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
				return c.JSON(http.StatusUnauthorized, models.Response{
					Status:  http.StatusUnauthorized,
					Message: "Authentication required",
				})
			}

			email, err := codec.Validate(token)
			if err != nil {
				log.Printf("Auth rejected for %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
				return c.JSON(http.StatusUnauthorized, models.Response{
					Status:  http.StatusUnauthorized,
					Message: "Authentication required",
				})
			}

			c.Set("adminEmail", email)
			return next(c)
		}
	}
}

// ExtractAdminEmail returns the authenticated admin identity set by RequireAdmin
func ExtractAdminEmail(c echo.Context) string {
	if email, ok := c.Get("adminEmail").(string); ok {
		return email
	}
	return ""
}
