package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/finsight/blog_backend/controllers"
	"github.com/finsight/blog_backend/middleware"
	"github.com/finsight/blog_backend/utils"
)

// RegisterBlogRoutes sets up public and admin blog endpoints. Public reads
// are registered outside the protected group; everything else goes through
// the admin token check.
func RegisterBlogRoutes(e *echo.Echo, blogController *controllers.BlogController, codec *utils.TokenCodec) {
	// Public routes (no auth required)
	e.GET("/api/blog/posts/public", blogController.GetPublicPosts)
	e.GET("/api/blog/posts/:slug/public", blogController.GetPublicPostBySlug)
	e.GET("/api/blog/category/:category", blogController.GetPostsByCategory)

	// Protected routes (admin only)
	admin := e.Group("/api/blog")
	admin.Use(middleware.RequireAdmin(codec))
	admin.GET("/posts", blogController.GetAllPosts)
	admin.GET("/posts/:slug", blogController.GetPostBySlug)
	admin.POST("/posts", blogController.CreatePost)
	admin.PUT("/posts/:id", blogController.UpdatePost)
	admin.DELETE("/posts/:id", blogController.DeletePost)
	admin.POST("/upload", blogController.UploadAttachments)
	admin.DELETE("/posts/:postId/attachments/:attachmentId", blogController.DeleteAttachment)
}
