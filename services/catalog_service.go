package services

import (
	"context"
	"errors"
	"net/http"

	"ecommerce-backend/models"
	"ecommerce-backend/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CatalogService serves the customer-facing product views: brand listings,
// the product detail page, and the buy-it-with and related-products
// carousels.
type CatalogService struct {
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(products repository.ProductRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{products: products, logger: logger}
}

// ListByBrand returns the paginated customer listing for one brand.
func (s *CatalogService) ListByBrand(ctx context.Context, brand string, page, limit int) ([]models.CustomerProduct, models.Pagination, *ServiceError) {
	if !models.IsValidBrand(brand) {
		return nil, models.Pagination{}, NewServiceError(http.StatusBadRequest, "Invalid brand name.")
	}

	products, total, err := s.products.FindByBrandPaginated(ctx, brand, page, limit)
	if err != nil {
		s.logger.Error("Failed to list products by brand", zap.Error(err), zap.String("brand", brand))
		return nil, models.Pagination{}, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	items := make([]models.CustomerProduct, 0, len(products))
	for _, p := range products {
		items = append(items, models.CustomerProduct{
			ID:                 p.ID,
			Image:              p.FirstImage(),
			ProductName:        p.ProductName,
			Price:              p.Price,
			QuantityInEachPack: p.QuantityInEachPack,
			Brand:              p.Brand,
		})
	}
	return items, models.NewPagination(total, page, limit), nil
}

// ProductDetail returns the product page payload. The remaining stock is
// exposed only once it has dropped to models.LeftStockVisibleAt or below.
func (s *CatalogService) ProductDetail(ctx context.Context, id primitive.ObjectID) (*models.CustomerProductDetail, *ServiceError) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Product not found")
		}
		s.logger.Error("Failed to fetch product detail", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	detail := &models.CustomerProductDetail{
		ID:                 product.ID,
		Image:              product.FirstImage(),
		ProductName:        product.ProductName,
		QuantityInEachPack: product.QuantityInEachPack,
		Price:              product.Price,
		AboutThisItem:      product.ProductDescription,
		RelatedImages:      product.Image,
	}
	if product.AvailableProductQuantity <= models.LeftStockVisibleAt {
		left := product.AvailableProductQuantity
		detail.LeftStock = &left
	}
	return detail, nil
}

// BuyItWith returns other products of the same brand.
func (s *CatalogService) BuyItWith(ctx context.Context, id primitive.ObjectID, page, limit int) ([]models.RelatedProduct, models.Pagination, *ServiceError) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.Pagination{}, NewServiceError(http.StatusNotFound, "Product not found")
		}
		s.logger.Error("Failed to fetch product for buy-it-with", zap.Error(err))
		return nil, models.Pagination{}, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return s.similar(ctx, id, bson.M{"brand": product.Brand}, page, limit)
}

// RelatedProducts returns other products of the same size.
func (s *CatalogService) RelatedProducts(ctx context.Context, id primitive.ObjectID, page, limit int) ([]models.RelatedProduct, models.Pagination, *ServiceError) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.Pagination{}, NewServiceError(http.StatusNotFound, "Product not found")
		}
		s.logger.Error("Failed to fetch product for related products", zap.Error(err))
		return nil, models.Pagination{}, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return s.similar(ctx, id, bson.M{"size": product.Size}, page, limit)
}

func (s *CatalogService) similar(ctx context.Context, exclude primitive.ObjectID, filter bson.M, page, limit int) ([]models.RelatedProduct, models.Pagination, *ServiceError) {
	products, total, err := s.products.FindSimilar(ctx, exclude, filter, page, limit)
	if err != nil {
		s.logger.Error("Failed to fetch similar products", zap.Error(err))
		return nil, models.Pagination{}, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	items := make([]models.RelatedProduct, 0, len(products))
	for _, p := range products {
		items = append(items, models.RelatedProduct{
			ID:                 p.ID,
			Image:              p.FirstImage(),
			ProductName:        p.ProductName,
			QuantityInEachPack: p.QuantityInEachPack,
			Price:              p.Price,
			Size:               p.Size,
		})
	}
	return items, models.NewPagination(total, page, limit), nil
}
