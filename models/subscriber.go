package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber represents a mailing-list member
type Subscriber struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	SubscribedAt time.Time          `json:"subscribedAt" bson:"subscribedAt"`
}

// SubscribeRequest model for joining the mailing list
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}
