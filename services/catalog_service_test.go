package services_test

import (
	"context"
	"net/http"
	"testing"

	"ecommerce-backend/models"
	"ecommerce-backend/services"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func seedProduct(repo *mockProductRepo, brand, size string, available int) *models.Product {
	p := &models.Product{
		Brand:                    brand,
		ProductName:              "Seeded",
		Size:                     size,
		ProductDescription:       "about",
		Image:                    []string{"a.jpg", "b.jpg"},
		AvailableProductQuantity: available,
	}
	_ = repo.Create(context.Background(), p)
	return p
}

func TestProductDetail_HidesLeftStockWhenPlentiful(t *testing.T) {
	repo := newMockProductRepo()
	p := seedProduct(repo, "whisper", "Regular", 21)
	svc := services.NewCatalogService(repo, zap.NewNop())

	detail, err := svc.ProductDetail(context.Background(), p.ID)

	assert.Nil(t, err)
	assert.Nil(t, detail.LeftStock)
	assert.Equal(t, "a.jpg", detail.Image)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, detail.RelatedImages)
	assert.Equal(t, "about", detail.AboutThisItem)
}

func TestProductDetail_ShowsLeftStockAtBoundary(t *testing.T) {
	repo := newMockProductRepo()
	p := seedProduct(repo, "whisper", "Regular", 20)
	svc := services.NewCatalogService(repo, zap.NewNop())

	detail, err := svc.ProductDetail(context.Background(), p.ID)

	assert.Nil(t, err)
	if assert.NotNil(t, detail.LeftStock) {
		assert.Equal(t, 20, *detail.LeftStock)
	}
}

func TestProductDetail_NotFound(t *testing.T) {
	svc := services.NewCatalogService(newMockProductRepo(), zap.NewNop())

	_, err := svc.ProductDetail(context.Background(), primitive.NewObjectID())

	assert.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
}

func TestListByBrand_RejectsUnknownBrand(t *testing.T) {
	svc := services.NewCatalogService(newMockProductRepo(), zap.NewNop())

	_, _, err := svc.ListByBrand(context.Background(), "unknown", 1, 10)

	assert.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "Invalid brand name.", err.Message)
}

func TestListByBrand_ReturnsOnlyThatBrand(t *testing.T) {
	repo := newMockProductRepo()
	seedProduct(repo, "Sofy", "Regular", 100)
	seedProduct(repo, "Sofy", "Large", 100)
	seedProduct(repo, "always", "Regular", 100)
	svc := services.NewCatalogService(repo, zap.NewNop())

	items, pagination, err := svc.ListByBrand(context.Background(), "Sofy", 1, 10)

	assert.Nil(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(2), pagination.Total)
	for _, item := range items {
		assert.Equal(t, "Sofy", item.Brand)
	}
}

func TestBuyItWith_SameBrandExcludingSelf(t *testing.T) {
	repo := newMockProductRepo()
	p := seedProduct(repo, "Stayfree", "Regular", 100)
	other := seedProduct(repo, "Stayfree", "Large", 100)
	seedProduct(repo, "Sofy", "Regular", 100)
	svc := services.NewCatalogService(repo, zap.NewNop())

	items, _, err := svc.BuyItWith(context.Background(), p.ID, 1, 10)

	assert.Nil(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, other.ID, items[0].ID)
}

func TestRelatedProducts_SameSizeExcludingSelf(t *testing.T) {
	repo := newMockProductRepo()
	p := seedProduct(repo, "Stayfree", "Overnight", 100)
	other := seedProduct(repo, "natracare", "Overnight", 100)
	seedProduct(repo, "Stayfree", "Regular", 100)
	svc := services.NewCatalogService(repo, zap.NewNop())

	items, _, err := svc.RelatedProducts(context.Background(), p.ID, 1, 10)

	assert.Nil(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, other.ID, items[0].ID)
	assert.Equal(t, "Overnight", items[0].Size)
}
