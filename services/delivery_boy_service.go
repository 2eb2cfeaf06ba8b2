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

// RoleDeliveryBoy is the JWT role claim for delivery agents.
const RoleDeliveryBoy = "deliveryBoy"

// DeliveryBoyService manages delivery agents: branch-admin CRUD plus the
// agent's own login and profile.
type DeliveryBoyService struct {
	deliveryBoys repository.DeliveryBoyRepository
	branches     repository.BranchRepository
	jwtSecret    []byte
	logger       *zap.Logger
}

// NewDeliveryBoyService creates a DeliveryBoyService.
func NewDeliveryBoyService(deliveryBoys repository.DeliveryBoyRepository, branches repository.BranchRepository, jwtSecret []byte, logger *zap.Logger) *DeliveryBoyService {
	return &DeliveryBoyService{deliveryBoys: deliveryBoys, branches: branches, jwtSecret: jwtSecret, logger: logger}
}

// Add registers a new delivery boy after checking for duplicate contact
// details and that the branch exists.
func (s *DeliveryBoyService) Add(ctx context.Context, req *models.AddDeliveryBoyRequest) (*models.DeliveryBoy, *ServiceError) {
	dup, err := s.deliveryBoys.FindDuplicate(ctx, req.Email, req.PhoneNumber, req.UserID, nil)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("Failed to check delivery boy duplicates", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	if dup != nil {
		return nil, NewServiceError(http.StatusConflict, "A delivery boy with the same email, phone number or user ID already exists.")
	}

	if _, err := s.branches.FindByName(ctx, req.Branch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusBadRequest, "Branch not found.")
		}
		s.logger.Error("Failed to look up branch", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	image := req.Image
	if image == "" {
		image = models.DefaultProfileImage
	}

	boy := &models.DeliveryBoy{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		UserID:      req.UserID,
		Password:    hash,
		Address:     req.Address,
		Branch:      req.Branch,
		Image:       image,
		IsActive:    true,
	}
	if err := s.deliveryBoys.Create(ctx, boy); err != nil {
		s.logger.Error("Failed to create delivery boy", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	s.logger.Info("Delivery boy added", zap.String("user_id", boy.UserID), zap.String("branch", boy.Branch))
	return boy, nil
}

// List returns the paginated delivery-boy listing.
func (s *DeliveryBoyService) List(ctx context.Context, search, branch, sortOrder string, page, limit int) ([]models.DeliveryBoy, models.Pagination, *ServiceError) {
	boys, total, err := s.deliveryBoys.Search(ctx, repository.DeliveryBoySearch{
		Search:    search,
		Branch:    branch,
		SortOrder: sortOrder,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		s.logger.Error("Failed to list delivery boys", zap.Error(err))
		return nil, models.Pagination{}, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return boys, models.NewPagination(total, page, limit), nil
}

// Get returns one delivery boy.
func (s *DeliveryBoyService) Get(ctx context.Context, id primitive.ObjectID) (*models.DeliveryBoy, *ServiceError) {
	boy, err := s.deliveryBoys.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Delivery boy not found.")
		}
		s.logger.Error("Failed to fetch delivery boy", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return boy, nil
}

// Update applies the non-empty fields of req, re-checking duplicates when
// contact details change and re-hashing the password when supplied.
func (s *DeliveryBoyService) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateDeliveryBoyRequest) (*models.DeliveryBoy, *ServiceError) {
	if req.Email != "" || req.PhoneNumber != "" || req.UserID != "" {
		dup, err := s.deliveryBoys.FindDuplicate(ctx, req.Email, req.PhoneNumber, req.UserID, &id)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("Failed to check delivery boy duplicates", zap.Error(err))
			return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
		}
		if dup != nil {
			return nil, NewServiceError(http.StatusConflict, "A delivery boy with the same email, phone number or user ID already exists.")
		}
	}

	updates := bson.M{}
	if req.FullName != "" {
		updates["fullName"] = req.FullName
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.PhoneNumber != "" {
		updates["phoneNumber"] = req.PhoneNumber
	}
	if req.UserID != "" {
		updates["userId"] = req.UserID
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}
	if req.Branch != "" {
		if _, err := s.branches.FindByName(ctx, req.Branch); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, NewServiceError(http.StatusBadRequest, "Branch not found.")
			}
			s.logger.Error("Failed to look up branch", zap.Error(err))
			return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
		}
		updates["branch"] = req.Branch
	}
	if req.Password != "" {
		hash, err := HashPassword(req.Password)
		if err != nil {
			s.logger.Error("Failed to hash password", zap.Error(err))
			return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
		}
		updates["password"] = hash
	}

	if len(updates) > 0 {
		if err := s.deliveryBoys.Update(ctx, id, updates); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, NewServiceError(http.StatusNotFound, "Delivery boy not found.")
			}
			s.logger.Error("Failed to update delivery boy", zap.Error(err))
			return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
		}
	}
	return s.Get(ctx, id)
}

// Delete soft-deletes a delivery boy.
func (s *DeliveryBoyService) Delete(ctx context.Context, id primitive.ObjectID) *ServiceError {
	if err := s.deliveryBoys.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewServiceError(http.StatusNotFound, "Delivery boy not found.")
		}
		s.logger.Error("Failed to delete delivery boy", zap.Error(err))
		return NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return nil
}

// Login verifies the userId/password pair and issues a long-lived token.
func (s *DeliveryBoyService) Login(ctx context.Context, req *models.DeliveryBoyLoginRequest) (*models.DeliveryBoy, string, *ServiceError) {
	boy, err := s.deliveryBoys.FindByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", NewServiceError(http.StatusUnauthorized, "Invalid user ID or password.")
		}
		s.logger.Error("Failed to fetch delivery boy for login", zap.Error(err))
		return nil, "", NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	if boy.IsDeleted || !boy.IsActive {
		return nil, "", NewServiceError(http.StatusUnauthorized, "Invalid user ID or password.")
	}
	if !CheckPassword(boy.Password, req.Password) {
		return nil, "", NewServiceError(http.StatusUnauthorized, "Invalid user ID or password.")
	}

	token, err := GenerateToken(s.jwtSecret, boy.ID.Hex(), RoleDeliveryBoy, DeliveryBoyTokenTTL)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return nil, "", NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	s.logger.Info("Delivery boy logged in", zap.String("user_id", boy.UserID))
	return boy, token, nil
}
