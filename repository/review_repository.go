package repository

import (
	"context"
	"fmt"
	"time"

	"ecommerce-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewRepository defines data access for product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindAll(ctx context.Context) ([]models.Review, error)
	FindByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error)
	AverageRating(ctx context.Context, productID primitive.ObjectID) (*models.RatingSummary, error)
}

// MongoReviewRepository implements ReviewRepository on the reviews collection.
type MongoReviewRepository struct {
	collection *mongo.Collection
}

// NewMongoReviewRepository creates a review repository.
func NewMongoReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{collection: db.Collection("reviews")}
}

func (r *MongoReviewRepository) Create(ctx context.Context, review *models.Review) error {
	review.CreatedAt = time.Now().UTC()
	res, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}
	return nil
}

func (r *MongoReviewRepository) FindAll(ctx context.Context) ([]models.Review, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoReviewRepository) FindByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	return r.find(ctx, bson.M{"product": productID})
}

func (r *MongoReviewRepository) find(ctx context.Context, filter bson.M) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

// AverageRating aggregates the mean rating and review count for a product.
func (r *MongoReviewRepository) AverageRating(ctx context.Context, productID primitive.ObjectID) (*models.RatingSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"product": productID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"averageRating": bson.M{"$avg": "$rating"},
			"totalReviews":  bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.RatingSummary
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode rating summary: %w", err)
	}
	if len(results) == 0 {
		return &models.RatingSummary{}, nil
	}
	return &results[0], nil
}
