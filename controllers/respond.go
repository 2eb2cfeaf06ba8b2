package controllers

import (
	"net/http"
	"strconv"

	"ecommerce-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// respondError writes a service error as the standard failure envelope.
func respondError(c *gin.Context, err *services.ServiceError) {
	c.JSON(err.StatusCode, gin.H{"success": false, "message": err.Message})
}

// objectIDParam parses a path parameter as an ObjectID; on failure it writes
// a 400 and returns false.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid ID format."})
		return primitive.NilObjectID, false
	}
	return id, true
}

// queryInt reads an integer query parameter with a fallback.
func queryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// pageParams reads the standard page/limit pagination parameters.
func pageParams(c *gin.Context) (page, limit int) {
	return queryInt(c, "page", 1), queryInt(c, "limit", 10)
}
