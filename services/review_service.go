package services

import (
	"context"
	"errors"
	"net/http"

	"ecommerce-backend/models"
	"ecommerce-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ReviewService handles product reviews and rating aggregation.
type ReviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewReviewService creates a ReviewService.
func NewReviewService(reviews repository.ReviewRepository, products repository.ProductRepository, logger *zap.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, logger: logger}
}

// Add posts a review for a product by an authenticated user.
func (s *ReviewService) Add(ctx context.Context, productID, userID primitive.ObjectID, req *models.AddReviewRequest) (*models.Review, *ServiceError) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Product not found")
		}
		s.logger.Error("Failed to fetch product for review", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	review := &models.Review{
		Product: productID,
		User:    userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		s.logger.Error("Failed to create review", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return review, nil
}

// ListAll returns every review.
func (s *ReviewService) ListAll(ctx context.Context) ([]models.Review, *ServiceError) {
	reviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list reviews", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return reviews, nil
}

// ListByProduct returns the reviews of one product.
func (s *ReviewService) ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, *ServiceError) {
	reviews, err := s.reviews.FindByProduct(ctx, productID)
	if err != nil {
		s.logger.Error("Failed to list product reviews", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return reviews, nil
}

// Rating returns the aggregated rating of one product. A product with no
// reviews gets a zero summary.
func (s *ReviewService) Rating(ctx context.Context, productID primitive.ObjectID) (*models.RatingSummary, *ServiceError) {
	summary, err := s.reviews.AverageRating(ctx, productID)
	if err != nil {
		s.logger.Error("Failed to aggregate rating", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return summary, nil
}
