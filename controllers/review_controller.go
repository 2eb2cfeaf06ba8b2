package controllers

import (
	"net/http"

	"ecommerce-backend/models"
	"ecommerce-backend/services"

	"github.com/gin-gonic/gin"
)

// ReviewController exposes product review endpoints.
type ReviewController struct {
	reviews *services.ReviewService
}

// NewReviewController creates a ReviewController.
func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// Add handles POST /user/product/:id/review.
func (rc *ReviewController) Add(c *gin.Context) {
	productID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	var req models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Rating must be between 1 and 5."})
		return
	}

	review, svcErr := rc.reviews.Add(c.Request.Context(), productID, userID, &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Review added successfully!",
		"review":  review,
	})
}

// ListAll handles GET /user/reviews.
func (rc *ReviewController) ListAll(c *gin.Context) {
	reviews, svcErr := rc.reviews.ListAll(c.Request.Context())
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews})
}

// ListByProduct handles GET /user/product/:id/reviews.
func (rc *ReviewController) ListByProduct(c *gin.Context) {
	productID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	reviews, svcErr := rc.reviews.ListByProduct(c.Request.Context(), productID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews})
}

// Rating handles GET /user/product/:id/rating.
func (rc *ReviewController) Rating(c *gin.Context) {
	productID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	summary, svcErr := rc.reviews.Rating(c.Request.Context(), productID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "rating": summary})
}
