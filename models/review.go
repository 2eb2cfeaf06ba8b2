package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a customer rating for a product.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Product   primitive.ObjectID `bson:"product" json:"product"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// AddReviewRequest is the payload for posting a review.
type AddReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// RatingSummary is the aggregated rating for a product.
type RatingSummary struct {
	AverageRating float64 `bson:"averageRating" json:"averageRating"`
	TotalReviews  int64   `bson:"totalReviews" json:"totalReviews"`
}
