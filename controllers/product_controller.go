package controllers

import (
	"net/http"

	"ecommerce-backend/models"
	"ecommerce-backend/services"

	"github.com/gin-gonic/gin"
)

// ProductController exposes the super-admin catalog and stock endpoints.
type ProductController struct {
	products  *services.ProductService
	allocator services.Allocator
	cache     *CatalogCache
}

// NewProductController creates a ProductController.
func NewProductController(products *services.ProductService, allocator services.Allocator, cache *CatalogCache) *ProductController {
	return &ProductController{products: products, allocator: allocator, cache: cache}
}

// CreateProduct handles POST /product/addProduct.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	product, svcErr := pc.products.CreateProduct(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Product created successfully!",
		"product": product,
	})
}

// ListProducts handles GET /product/getAllProducts.
func (pc *ProductController) ListProducts(c *gin.Context) {
	page, limit := pageParams(c)
	items, pagination, svcErr := pc.products.ListProducts(c.Request.Context(), c.Query("search"), c.Query("sortOrder"), page, limit)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"products":   items,
		"pagination": pagination,
	})
}

// GetProduct handles GET /product/getProductById/:id.
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	product, svcErr := pc.products.GetProduct(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// UpdateProduct handles PUT /product/updateProduct/:id.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	product, svcErr := pc.products.UpdateProduct(c.Request.Context(), id, &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated successfully!",
		"product": product,
	})
}

// DeleteProduct handles DELETE /product/deleteProduct/:id.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if svcErr := pc.products.DeleteProduct(c.Request.Context(), id); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	pc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully!"})
}

// AddQuantity handles PATCH /product/addQuantity/:id.
func (pc *ProductController) AddQuantity(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req models.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantity must be a positive number."})
		return
	}

	newQty, svcErr := pc.products.AddQuantity(c.Request.Context(), id, req.Quantity)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":                  true,
		"message":                  "Product quantity updated successfully!",
		"availableProductQuantity": newQty,
	})
}

// RemoveQuantity handles PATCH /product/removeQuantity/:id.
func (pc *ProductController) RemoveQuantity(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req models.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantity must be a positive number."})
		return
	}

	newQty, message, svcErr := pc.products.RemoveQuantity(c.Request.Context(), id, req.Quantity)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":                  true,
		"message":                  message,
		"availableProductQuantity": newQty,
	})
}

// AvailableQuantity handles GET /product/availableQuantity/:id.
func (pc *ProductController) AvailableQuantity(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	qty, svcErr := pc.products.AvailableQuantity(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "availableProductQuantity": qty})
}

// BranchQuantity handles GET /product/branchQuantity/:branchId/:productId.
func (pc *ProductController) BranchQuantity(c *gin.Context) {
	branchID, ok := objectIDParam(c, "branchId")
	if !ok {
		return
	}
	productID, ok := objectIDParam(c, "productId")
	if !ok {
		return
	}
	qty, svcErr := pc.products.BranchQuantity(c.Request.Context(), branchID, productID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "quantity": qty})
}

// AssignToBranch handles POST /assignToBranch: it distributes central stock
// across branches in one batch.
func (pc *ProductController) AssignToBranch(c *gin.Context) {
	var entries []models.AssignToBranchEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Request body must be a non-empty array."})
		return
	}

	if svcErr := pc.allocator.AllocateToBranches(c.Request.Context(), entries); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Quantity updated successfully!"})
}

// Branches handles GET /product/getBranches.
func (pc *ProductController) Branches(c *gin.Context) {
	branches, svcErr := pc.products.Branches(c.Request.Context())
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "branches": branches})
}

// Brands handles GET /product/getBrands.
func (pc *ProductController) Brands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "brands": pc.products.Brands()})
}

// Sizes handles GET /product/getSizes.
func (pc *ProductController) Sizes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "sizes": pc.products.Sizes()})
}
