package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/finsight/blog_backend/controllers"
	"github.com/finsight/blog_backend/middleware"
	"github.com/finsight/blog_backend/utils"
)

// RegisterSubscriberRoutes sets up mailing list, contact and assessment
// endpoints. Submissions are public; reading and deleting are admin only.
func RegisterSubscriberRoutes(e *echo.Echo, subscriberController *controllers.SubscriberController,
	contactController *controllers.ContactController, assessmentController *controllers.AssessmentController,
	codec *utils.TokenCodec) {

	requireAdmin := middleware.RequireAdmin(codec)

	e.POST("/api/subscribers", subscriberController.Subscribe)
	e.GET("/api/subscribers", subscriberController.GetSubscribers, requireAdmin)
	e.DELETE("/api/subscribers/:id", subscriberController.DeleteSubscriber, requireAdmin)

	e.POST("/api/contact", contactController.SubmitMessage)
	e.GET("/api/contact", contactController.GetMessages, requireAdmin)

	e.POST("/api/assessment", assessmentController.SubmitRequest)
	e.GET("/api/assessment", assessmentController.GetRequests, requireAdmin)
}
