// controllers/contact_controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/finsight/blog_backend/config"
	"github.com/finsight/blog_backend/models"
	"github.com/finsight/blog_backend/utils"
)

// ContactController handles contact form submissions
type ContactController struct {
	DB *mongo.Client
}

// NewContactController creates a new contact controller
func NewContactController(db *mongo.Client) *ContactController {
	return &ContactController{DB: db}
}

// SubmitMessage stores a contact form submission (public)
func (cc *ContactController) SubmitMessage(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.Name == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Name and message are required",
		})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "A valid email address is required",
		})
	}

	message := models.ContactMessage{
		ID:        primitive.NewObjectID(),
		Name:      utils.SanitizeInput(req.Name),
		Email:     email,
		Subject:   utils.SanitizeInput(req.Subject),
		Message:   utils.SanitizeInput(req.Message),
		CreatedAt: time.Now(),
	}

	collection := config.GetCollection(cc.DB, "contactMessages")
	if _, err := collection.InsertOne(ctx, message); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error saving message",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Message sent successfully",
	})
}

// GetMessages lists contact messages, newest first (admin)
func (cc *ContactController) GetMessages(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(cc.DB, "contactMessages")

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error fetching messages",
		})
	}
	defer cursor.Close(ctx)

	messages := []models.ContactMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error decoding messages",
		})
	}

	return c.JSON(http.StatusOK, messages)
}
