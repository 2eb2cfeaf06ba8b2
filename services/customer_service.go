package services

import (
	"context"
	"errors"
	"net/http"

	"ecommerce-backend/models"
	"ecommerce-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CustomerService serves the branch-admin customer views. Customers belong to
// a branch when their address matches one of the branch's service pincodes.
type CustomerService struct {
	users    repository.UserRepository
	orders   repository.OrderRepository
	products repository.ProductRepository
	admins   repository.BranchAdminRepository
	branches repository.BranchRepository
	logger   *zap.Logger
}

// NewCustomerService creates a CustomerService.
func NewCustomerService(users repository.UserRepository, orders repository.OrderRepository, products repository.ProductRepository, admins repository.BranchAdminRepository, branches repository.BranchRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{users: users, orders: orders, products: products, admins: admins, branches: branches, logger: logger}
}

func (s *CustomerService) branchPincodes(ctx context.Context, adminID primitive.ObjectID) ([]string, *ServiceError) {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Admin not found.")
		}
		s.logger.Error("Failed to fetch admin", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	pincodes, err := s.branches.ServicePincodes(ctx, admin.Branch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Branch not found.")
		}
		s.logger.Error("Failed to fetch branch pincodes", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return pincodes, nil
}

// ListForAdmin returns customers whose addresses match the admin's branch
// service pincodes.
func (s *CustomerService) ListForAdmin(ctx context.Context, adminID primitive.ObjectID, search, sortOrder string, page, limit int) ([]models.CustomerListItem, models.Pagination, *ServiceError) {
	pincodes, svcErr := s.branchPincodes(ctx, adminID)
	if svcErr != nil {
		return nil, models.Pagination{}, svcErr
	}
	if len(pincodes) == 0 {
		return []models.CustomerListItem{}, models.NewPagination(0, page, limit), nil
	}

	users, total, err := s.users.SearchByPincodes(ctx, repository.CustomerSearch{
		Pincodes:  pincodes,
		Search:    search,
		SortOrder: sortOrder,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		s.logger.Error("Failed to list customers", zap.Error(err))
		return nil, models.Pagination{}, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	items := make([]models.CustomerListItem, 0, len(users))
	for _, u := range users {
		image := u.Image
		if image == "" {
			image = models.DefaultProfileImage
		}
		items = append(items, models.CustomerListItem{
			ID:          u.ID,
			Image:       image,
			FullName:    u.FullName,
			PhoneNumber: u.PhoneNumber,
			FullAddress: u.Address,
		})
	}
	return items, models.NewPagination(total, page, limit), nil
}

// Detail returns one customer with the product lines of their placed orders.
func (s *CustomerService) Detail(ctx context.Context, userID primitive.ObjectID) (*models.CustomerDetail, []models.CustomerOrderLine, *ServiceError) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, NewServiceError(http.StatusNotFound, "Customer not found.")
		}
		s.logger.Error("Failed to fetch customer", zap.Error(err))
		return nil, nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	image := user.Image
	if image == "" {
		image = models.DefaultProfileImage
	}
	detail := &models.CustomerDetail{
		Image:       image,
		FullName:    user.FullName,
		PhoneNumber: user.PhoneNumber,
		Gender:      user.Gender,
		Address:     user.Address,
	}

	orders, err := s.orders.FindPlacedByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to fetch customer orders", zap.Error(err))
		return nil, nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	lines := make([]models.CustomerOrderLine, 0)
	for _, order := range orders {
		date := order.OrderDate.Format("02/01/2006")
		for _, item := range order.Items {
			name := ""
			if product, err := s.products.FindByID(ctx, item.Product); err == nil {
				name = product.ProductName
			}
			lines = append(lines, models.CustomerOrderLine{
				Date:        date,
				ProductName: name,
				Quantity:    item.Quantity,
				Price:       item.Price,
				TotalPrice:  item.Price * float64(item.Quantity),
			})
		}
	}
	return detail, lines, nil
}
