package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssessmentRequest represents a financial assessment request from a visitor
type AssessmentRequest struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Company   string             `json:"company,omitempty" bson:"company,omitempty"`
	Details   string             `json:"details,omitempty" bson:"details,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// AssessmentSubmission model for submitting an assessment request
type AssessmentSubmission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company,omitempty"`
	Details string `json:"details,omitempty"`
}
