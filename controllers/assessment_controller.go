// controllers/assessment_controller.go
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

// AssessmentController handles financial assessment requests
type AssessmentController struct {
	DB *mongo.Client
}

// NewAssessmentController creates a new assessment controller
func NewAssessmentController(db *mongo.Client) *AssessmentController {
	return &AssessmentController{DB: db}
}

// SubmitRequest stores an assessment request (public)
func (ac *AssessmentController) SubmitRequest(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.AssessmentSubmission
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Name is required",
		})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "A valid email address is required",
		})
	}

	assessment := models.AssessmentRequest{
		ID:        primitive.NewObjectID(),
		Name:      utils.SanitizeInput(req.Name),
		Email:     email,
		Company:   utils.SanitizeInput(req.Company),
		Details:   utils.SanitizeInput(req.Details),
		CreatedAt: time.Now(),
	}

	collection := config.GetCollection(ac.DB, "assessmentRequests")
	if _, err := collection.InsertOne(ctx, assessment); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error saving assessment request",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Assessment request submitted successfully",
	})
}

// GetRequests lists assessment requests, newest first (admin)
func (ac *AssessmentController) GetRequests(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(ac.DB, "assessmentRequests")

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error fetching assessment requests",
		})
	}
	defer cursor.Close(ctx)

	requests := []models.AssessmentRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error decoding assessment requests",
		})
	}

	return c.JSON(http.StatusOK, requests)
}
