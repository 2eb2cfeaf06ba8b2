package controllers

import (
	"net/http"

	"ecommerce-backend/middleware"
	"ecommerce-backend/models"
	"ecommerce-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryBoyController exposes delivery-boy management and the agent's own
// auth and profile endpoints.
type DeliveryBoyController struct {
	deliveryBoys *services.DeliveryBoyService
}

// NewDeliveryBoyController creates a DeliveryBoyController.
func NewDeliveryBoyController(deliveryBoys *services.DeliveryBoyService) *DeliveryBoyController {
	return &DeliveryBoyController{deliveryBoys: deliveryBoys}
}

// Add handles POST /delivery/addDeliveryBoy.
func (dc *DeliveryBoyController) Add(c *gin.Context) {
	var req models.AddDeliveryBoyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	boy, svcErr := dc.deliveryBoys.Add(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Delivery boy added successfully!",
		"deliveryBoy": boy,
	})
}

// List handles GET /delivery/getAllDeliveryBoys.
func (dc *DeliveryBoyController) List(c *gin.Context) {
	page, limit := pageParams(c)
	boys, pagination, svcErr := dc.deliveryBoys.List(c.Request.Context(), c.Query("search"), c.Query("branch"), c.Query("sortOrder"), page, limit)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"deliveryBoys": boys,
		"pagination":   pagination,
	})
}

// Get handles GET /delivery/getDeliveryBoy/:id.
func (dc *DeliveryBoyController) Get(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	boy, svcErr := dc.deliveryBoys.Get(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deliveryBoy": boy})
}

// Update handles PUT /delivery/updateDeliveryBoy/:id.
func (dc *DeliveryBoyController) Update(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req models.UpdateDeliveryBoyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	boy, svcErr := dc.deliveryBoys.Update(c.Request.Context(), id, &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Delivery boy updated successfully!",
		"deliveryBoy": boy,
	})
}

// Delete handles DELETE /delivery/deleteDeliveryBoy/:id.
func (dc *DeliveryBoyController) Delete(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if svcErr := dc.deliveryBoys.Delete(c.Request.Context(), id); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Delivery boy deleted successfully!"})
}

// Login handles POST /deliveryBoy/login.
func (dc *DeliveryBoyController) Login(c *gin.Context) {
	var req models.DeliveryBoyLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	boy, token, svcErr := dc.deliveryBoys.Login(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Login successful!",
		"token":       token,
		"deliveryBoy": boy,
	})
}

func contextUserID(c *gin.Context) (primitive.ObjectID, bool) {
	raw := c.GetString(middleware.ContextUserID)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token."})
		return primitive.NilObjectID, false
	}
	return id, true
}

// Profile handles GET /deliveryBoy/profile.
func (dc *DeliveryBoyController) Profile(c *gin.Context) {
	id, ok := contextUserID(c)
	if !ok {
		return
	}
	boy, svcErr := dc.deliveryBoys.Get(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deliveryBoy": boy})
}

// UpdateProfile handles PUT /deliveryBoy/profile.
func (dc *DeliveryBoyController) UpdateProfile(c *gin.Context) {
	id, ok := contextUserID(c)
	if !ok {
		return
	}
	var req models.UpdateDeliveryBoyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	boy, svcErr := dc.deliveryBoys.Update(c.Request.Context(), id, &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Profile updated successfully!",
		"deliveryBoy": boy,
	})
}
