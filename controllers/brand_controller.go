package controllers

import (
	"net/http"

	"ecommerce-backend/models"
	"ecommerce-backend/services"

	"github.com/gin-gonic/gin"
)

// BrandController exposes brand tile and banner endpoints.
type BrandController struct {
	brands *services.BrandService
}

// NewBrandController creates a BrandController.
func NewBrandController(brands *services.BrandService) *BrandController {
	return &BrandController{brands: brands}
}

// Create handles POST /brand/addBrand.
func (bc *BrandController) Create(c *gin.Context) {
	var req models.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	brand, svcErr := bc.brands.Create(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Brand added successfully!",
		"brand":   brand,
	})
}

// List handles GET /brand/getAllBrands.
func (bc *BrandController) List(c *gin.Context) {
	brands, svcErr := bc.brands.List(c.Request.Context())
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "brands": brands})
}

// Get handles GET /brand/getBrand/:id.
func (bc *BrandController) Get(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	brand, svcErr := bc.brands.Get(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "brand": brand})
}

// Update handles PUT /brand/updateBrand/:id.
func (bc *BrandController) Update(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req models.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	brand, svcErr := bc.brands.Update(c.Request.Context(), id, &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Brand updated successfully!",
		"brand":   brand,
	})
}

// Delete handles DELETE /brand/deleteBrand/:id.
func (bc *BrandController) Delete(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if svcErr := bc.brands.Delete(c.Request.Context(), id); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Brand deleted successfully!"})
}

// Banners handles GET /user/banners.
func (bc *BrandController) Banners(c *gin.Context) {
	banners, svcErr := bc.brands.Banners(c.Request.Context())
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "banners": banners})
}
