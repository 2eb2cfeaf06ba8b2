package controllers

import (
	"net/http"

	"ecommerce-backend/services"

	"github.com/gin-gonic/gin"
)

// UserProductController exposes the customer-facing catalog endpoints.
type UserProductController struct {
	catalog *services.CatalogService
	cache   *CatalogCache
}

// NewUserProductController creates a UserProductController.
func NewUserProductController(catalog *services.CatalogService, cache *CatalogCache) *UserProductController {
	return &UserProductController{catalog: catalog, cache: cache}
}

// ListByBrand handles GET /user/products/:brand. List reads are served from
// the Redis cache when fresh.
func (uc *UserProductController) ListByBrand(c *gin.Context) {
	brand := c.Param("brand")
	page, limit := pageParams(c)

	if cached, ok := uc.cache.GetList(c.Request.Context(), brand, page, limit); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	items, pagination, svcErr := uc.catalog.ListByBrand(c.Request.Context(), brand, page, limit)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	response := gin.H{
		"success":    true,
		"products":   items,
		"pagination": pagination,
	}
	uc.cache.SetListAsync(brand, page, limit, response)
	c.JSON(http.StatusOK, response)
}

// ProductDetail handles GET /user/product/:id.
func (uc *UserProductController) ProductDetail(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	detail, svcErr := uc.catalog.ProductDetail(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": detail})
}

// BuyItWith handles GET /user/product/:id/buyItWith.
func (uc *UserProductController) BuyItWith(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	page, limit := pageParams(c)
	items, pagination, svcErr := uc.catalog.BuyItWith(c.Request.Context(), id, page, limit)
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

// RelatedProducts handles GET /user/product/:id/related.
func (uc *UserProductController) RelatedProducts(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	page, limit := pageParams(c)
	items, pagination, svcErr := uc.catalog.RelatedProducts(c.Request.Context(), id, page, limit)
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
