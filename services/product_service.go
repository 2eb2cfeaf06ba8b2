package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ecommerce-backend/models"
	"ecommerce-backend/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ProductService handles the super-admin catalog: product CRUD, stock intake
// and removal, and the dropdown lookups.
type ProductService struct {
	products repository.ProductRepository
	branches repository.BranchRepository
	branchPr repository.BranchProductRepository
	logger   *zap.Logger
}

// NewProductService creates a ProductService.
func NewProductService(products repository.ProductRepository, branches repository.BranchRepository, branchPr repository.BranchProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, branches: branches, branchPr: branchPr, logger: logger}
}

// titleCase capitalizes the first letter of every word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func invalidBrandError() *ServiceError {
	return NewServiceError(http.StatusBadRequest,
		"Invalid brand value. Allowed values are: "+strings.Join(models.ValidBrands, ", "))
}

func invalidSizeError() *ServiceError {
	return NewServiceError(http.StatusBadRequest,
		"Invalid size value. Allowed values are: "+strings.Join(models.ValidSizes, ", "))
}

// CreateProduct validates the brand and size enums, assigns the next
// sequential PR#### code and stores the product.
func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError) {
	if !models.IsValidBrand(req.Brand) {
		return nil, invalidBrandError()
	}
	if !models.IsValidSize(req.Size) {
		return nil, invalidSizeError()
	}

	code, err := s.products.NextProductCode(ctx)
	if err != nil {
		s.logger.Error("Failed to generate product code", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	product := &models.Product{
		ProductCode:              code,
		Brand:                    req.Brand,
		ProductName:              titleCase(req.ProductName),
		ProductSubType:           req.ProductSubType,
		ProductDescription:       req.ProductDescription,
		Size:                     req.Size,
		Price:                    req.Price,
		QuantityInEachPack:       req.QuantityInEachPack,
		AvailableProductQuantity: req.AvailableProductQuantity,
		Image:                    req.Image,
	}

	if err := s.products.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	s.logger.Info("Product created",
		zap.String("product_code", product.ProductCode),
		zap.String("product_name", product.ProductName))
	return product, nil
}

// ListProducts returns the paginated admin listing.
func (s *ProductService) ListProducts(ctx context.Context, search, sortOrder string, page, limit int) ([]models.ProductListItem, models.Pagination, *ServiceError) {
	products, total, err := s.products.Search(ctx, repository.ProductSearch{
		Search:    search,
		SortOrder: sortOrder,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, models.Pagination{}, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	items := make([]models.ProductListItem, 0, len(products))
	for _, p := range products {
		items = append(items, models.ProductListItem{
			ID:                       p.ID,
			Image:                    p.FirstImage(),
			ProductName:              p.ProductName,
			AvailableProductQuantity: p.AvailableProductQuantity,
			IsDeleted:                p.IsDeleted,
		})
	}
	return items, models.NewPagination(total, page, limit), nil
}

// GetProduct returns a product by id.
func (s *ProductService) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, *ServiceError) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Product not found")
		}
		s.logger.Error("Failed to fetch product", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Error fetching product")
	}
	return product, nil
}

// UpdateProduct applies the non-empty fields of req. Brand and size are
// re-validated when supplied. ExistingImages plus Image replace the image
// list when either is present.
func (s *ProductService) UpdateProduct(ctx context.Context, id primitive.ObjectID, req *models.UpdateProductRequest) (*models.Product, *ServiceError) {
	updates := bson.M{}
	if req.Brand != "" {
		if !models.IsValidBrand(req.Brand) {
			return nil, invalidBrandError()
		}
		updates["brand"] = req.Brand
	}
	if req.Size != "" {
		if !models.IsValidSize(req.Size) {
			return nil, invalidSizeError()
		}
		updates["size"] = req.Size
	}
	if req.ProductName != "" {
		updates["productName"] = titleCase(req.ProductName)
	}
	if req.ProductSubType != "" {
		updates["productSubType"] = req.ProductSubType
	}
	if req.ProductDescription != "" {
		updates["productDescription"] = req.ProductDescription
	}
	if req.Price > 0 {
		updates["price"] = req.Price
	}
	if req.QuantityInEachPack > 0 {
		updates["quantityInEachPack"] = req.QuantityInEachPack
	}
	if len(req.ExistingImages) > 0 || len(req.Image) > 0 {
		updates["image"] = append(append([]string{}, req.ExistingImages...), req.Image...)
	}

	if len(updates) > 0 {
		if err := s.products.Update(ctx, id, updates); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, NewServiceError(http.StatusNotFound, "Product not found")
			}
			s.logger.Error("Failed to update product", zap.Error(err))
			return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
		}
	}

	return s.GetProduct(ctx, id)
}

// DeleteProduct soft-deletes a product.
func (s *ProductService) DeleteProduct(ctx context.Context, id primitive.ObjectID) *ServiceError {
	if err := s.products.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewServiceError(http.StatusNotFound, "Product not found")
		}
		s.logger.Error("Failed to delete product", zap.Error(err))
		return NewServiceError(http.StatusInternalServerError, "Error deleting product")
	}
	return nil
}

// AddQuantity is the stock intake path: it adds units to the central ledger
// and returns the new quantity.
func (s *ProductService) AddQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (int, *ServiceError) {
	if quantity <= 0 {
		return 0, NewServiceError(http.StatusBadRequest, "Quantity must be a positive number.")
	}
	newQty, err := s.products.IncrementQuantity(ctx, id, quantity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, NewServiceError(http.StatusNotFound, "Product not found.")
		}
		s.logger.Error("Failed to add product quantity", zap.Error(err))
		return 0, NewServiceError(http.StatusInternalServerError, "Internal server error while updating product quantity.")
	}
	return newQty, nil
}

// RemoveQuantity subtracts units from the central ledger. The removal fails
// when it would overdraw the stock; the message reports what is available.
func (s *ProductService) RemoveQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (int, string, *ServiceError) {
	if quantity <= 0 {
		return 0, "", NewServiceError(http.StatusBadRequest, "Quantity must be a positive number.")
	}
	newQty, err := s.products.DecrementQuantity(ctx, id, quantity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, "", NewServiceError(http.StatusNotFound, "Product not found.")
		}
		if errors.Is(err, repository.ErrInsufficientStock) {
			available, availErr := s.products.AvailableQuantity(ctx, id)
			if availErr != nil {
				available = 0
			}
			return 0, "", NewServiceError(http.StatusBadRequest,
				fmt.Sprintf("Cannot remove %d items. Only %d available.", quantity, available))
		}
		s.logger.Error("Failed to remove product quantity", zap.Error(err))
		return 0, "", NewServiceError(http.StatusInternalServerError, "Internal server error while updating product quantity.")
	}

	message := "Product quantity updated successfully!"
	if newQty == 0 {
		message += " Product is now out of stock."
	}
	return newQty, message, nil
}

// AvailableQuantity reads the central stock counter.
func (s *ProductService) AvailableQuantity(ctx context.Context, id primitive.ObjectID) (int, *ServiceError) {
	qty, err := s.products.AvailableQuantity(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, NewServiceError(http.StatusNotFound, "Product not found")
		}
		s.logger.Error("Failed to read available quantity", zap.Error(err))
		return 0, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return qty, nil
}

// BranchQuantity reads the stock allocated to one branch for one product.
func (s *ProductService) BranchQuantity(ctx context.Context, branchID, productID primitive.ObjectID) (int, *ServiceError) {
	qty, err := s.branchPr.Quantity(ctx, branchID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, NewServiceError(http.StatusNotFound, "Product not found.")
		}
		s.logger.Error("Failed to read branch quantity", zap.Error(err))
		return 0, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return qty, nil
}

// Branches lists the branch dropdown options.
func (s *ProductService) Branches(ctx context.Context) ([]models.BranchOption, *ServiceError) {
	branches, err := s.branches.Options(ctx)
	if err != nil {
		s.logger.Error("Failed to list branches", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return branches, nil
}

// Brands returns the closed brand set.
func (s *ProductService) Brands() []string { return models.ValidBrands }

// Sizes returns the closed size set.
func (s *ProductService) Sizes() []string { return models.ValidSizes }
