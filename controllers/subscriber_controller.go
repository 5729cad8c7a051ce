// controllers/subscriber_controller.go
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

// SubscriberController handles the mailing list
type SubscriberController struct {
	DB *mongo.Client
}

// NewSubscriberController creates a new subscriber controller
func NewSubscriberController(db *mongo.Client) *SubscriberController {
	return &SubscriberController{DB: db}
}

// Subscribe adds an email to the mailing list (public)
func (sc *SubscriberController) Subscribe(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "A valid email address is required",
		})
	}

	subscriber := models.Subscriber{
		ID:           primitive.NewObjectID(),
		Email:        email,
		SubscribedAt: time.Now(),
	}

	collection := config.GetCollection(sc.DB, "subscribers")
	_, err = collection.InsertOne(ctx, subscriber)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Already on the list; don't treat it as an error
			return c.JSON(http.StatusOK, models.Response{
				Status:  http.StatusOK,
				Message: "Already subscribed",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error saving subscription",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Subscribed successfully",
	})
}

// GetSubscribers lists all mailing-list members (admin)
func (sc *SubscriberController) GetSubscribers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(sc.DB, "subscribers")

	findOptions := options.Find().SetSort(bson.D{{Key: "subscribedAt", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error fetching subscribers",
		})
	}
	defer cursor.Close(ctx)

	subscribers := []models.Subscriber{}
	if err := cursor.All(ctx, &subscribers); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error decoding subscribers",
		})
	}

	return c.JSON(http.StatusOK, subscribers)
}

// DeleteSubscriber removes a mailing-list member (admin)
func (sc *SubscriberController) DeleteSubscriber(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	subscriberID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid subscriber ID",
		})
	}

	collection := config.GetCollection(sc.DB, "subscribers")
	result, err := collection.DeleteOne(ctx, bson.M{"_id": subscriberID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Error deleting subscriber",
		})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Subscriber not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Subscriber removed successfully",
	})
}
