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

// BrandService manages the storefront brand tiles and banners.
type BrandService struct {
	brands  repository.BrandRepository
	banners repository.BannerRepository
	logger  *zap.Logger
}

// NewBrandService creates a BrandService.
func NewBrandService(brands repository.BrandRepository, banners repository.BannerRepository, logger *zap.Logger) *BrandService {
	return &BrandService{brands: brands, banners: banners, logger: logger}
}

// Create adds a brand tile.
func (s *BrandService) Create(ctx context.Context, req *models.CreateBrandRequest) (*models.Brand, *ServiceError) {
	brand := &models.Brand{
		BrandName: req.BrandName,
		Image:     req.Image,
	}
	if err := s.brands.Create(ctx, brand); err != nil {
		s.logger.Error("Failed to create brand", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return brand, nil
}

// List returns all brand tiles.
func (s *BrandService) List(ctx context.Context) ([]models.Brand, *ServiceError) {
	brands, err := s.brands.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list brands", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return brands, nil
}

// Get returns one brand tile.
func (s *BrandService) Get(ctx context.Context, id primitive.ObjectID) (*models.Brand, *ServiceError) {
	brand, err := s.brands.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Brand not found")
		}
		s.logger.Error("Failed to fetch brand", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return brand, nil
}

// Update edits a brand tile; empty fields are left untouched.
func (s *BrandService) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateBrandRequest) (*models.Brand, *ServiceError) {
	updates := bson.M{}
	if req.BrandName != "" {
		updates["brandName"] = req.BrandName
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}
	if len(updates) > 0 {
		if err := s.brands.Update(ctx, id, updates); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, NewServiceError(http.StatusNotFound, "Brand not found")
			}
			s.logger.Error("Failed to update brand", zap.Error(err))
			return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
		}
	}
	return s.Get(ctx, id)
}

// Delete removes a brand tile.
func (s *BrandService) Delete(ctx context.Context, id primitive.ObjectID) *ServiceError {
	if err := s.brands.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewServiceError(http.StatusNotFound, "Brand not found")
		}
		s.logger.Error("Failed to delete brand", zap.Error(err))
		return NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return nil
}

// Banners returns the storefront banners.
func (s *BrandService) Banners(ctx context.Context) ([]models.Banner, *ServiceError) {
	banners, err := s.banners.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list banners", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return banners, nil
}
