package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"ecommerce-backend/models"
	"ecommerce-backend/repository"
	"ecommerce-backend/services"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ---- mock user repository ----

type mockUserRepo struct {
	users []*models.User
}

func (m *mockUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) SearchByPincodes(_ context.Context, p repository.CustomerSearch) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range m.users {
		for _, pin := range p.Pincodes {
			if strings.Contains(u.Address, pin) {
				out = append(out, *u)
				break
			}
		}
	}
	return out, int64(len(out)), nil
}

// ---- mock order repository ----

type mockOrderRepo struct {
	orders []models.Order
}

func (m *mockOrderRepo) FindPlacedByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		if o.User == userID && o.Status == models.OrderStatusPlaced {
			out = append(out, o)
		}
	}
	return out, nil
}

func newCustomerService(users *mockUserRepo, orders *mockOrderRepo, products *mockProductRepo, admins *mockAdminRepo, branches *mockBranchRepo) *services.CustomerService {
	return services.NewCustomerService(users, orders, products, admins, branches, zap.NewNop())
}

func TestListForAdmin_ScopesByBranchPincodes(t *testing.T) {
	branch := &models.Branch{ID: primitive.NewObjectID(), BranchName: "Central", ServicePinCode: []string{"110001", "110002"}}
	branches := &mockBranchRepo{branches: map[string]*models.Branch{"Central": branch}}

	admins := newMockAdminRepo()
	admin := &models.BranchAdmin{Email: "admin@example.com", Branch: branch.ID}
	assert.NoError(t, admins.Create(context.Background(), admin))

	users := &mockUserRepo{users: []*models.User{
		{ID: primitive.NewObjectID(), FullName: "In Range", PhoneNumber: "9000000001", Address: "12 Park St, Delhi 110001"},
		{ID: primitive.NewObjectID(), FullName: "Also In Range", PhoneNumber: "9000000002", Address: "4 Mall Rd, Delhi 110002"},
		{ID: primitive.NewObjectID(), FullName: "Out Of Range", PhoneNumber: "9000000003", Address: "8 Beach Rd, Mumbai 400001"},
	}}

	svc := newCustomerService(users, &mockOrderRepo{}, newMockProductRepo(), admins, branches)

	customers, pagination, err := svc.ListForAdmin(context.Background(), admin.ID, "", "", 1, 10)

	assert.Nil(t, err)
	assert.Len(t, customers, 2)
	assert.Equal(t, int64(2), pagination.Total)
	for _, c := range customers {
		assert.NotEqual(t, "Out Of Range", c.FullName)
	}
}

func TestListForAdmin_NoPincodesMeansNoCustomers(t *testing.T) {
	branch := &models.Branch{ID: primitive.NewObjectID(), BranchName: "Empty"}
	branches := &mockBranchRepo{branches: map[string]*models.Branch{"Empty": branch}}

	admins := newMockAdminRepo()
	admin := &models.BranchAdmin{Email: "admin@example.com", Branch: branch.ID}
	assert.NoError(t, admins.Create(context.Background(), admin))

	users := &mockUserRepo{users: []*models.User{
		{ID: primitive.NewObjectID(), FullName: "Anyone", Address: "Delhi 110001"},
	}}

	svc := newCustomerService(users, &mockOrderRepo{}, newMockProductRepo(), admins, branches)

	customers, _, err := svc.ListForAdmin(context.Background(), admin.ID, "", "", 1, 10)

	assert.Nil(t, err)
	assert.Empty(t, customers)
}

func TestDetail_BuildsOrderLines(t *testing.T) {
	productRepo := newMockProductRepo()
	product := &models.Product{ProductName: "Ultra Soft Regular", Price: 120}
	assert.NoError(t, productRepo.Create(context.Background(), product))

	user := &models.User{ID: primitive.NewObjectID(), FullName: "Asha", PhoneNumber: "9000000001", Gender: "female", Address: "Delhi 110001"}
	users := &mockUserRepo{users: []*models.User{user}}

	orderDate := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	orders := &mockOrderRepo{orders: []models.Order{
		{
			User:      user.ID,
			Status:    models.OrderStatusPlaced,
			OrderDate: orderDate,
			Items:     []models.OrderItem{{Product: product.ID, Quantity: 3, Price: 120}},
		},
		{
			User:   user.ID,
			Status: "Cancelled",
			Items:  []models.OrderItem{{Product: product.ID, Quantity: 1, Price: 120}},
		},
	}}

	svc := newCustomerService(users, orders, productRepo, newMockAdminRepo(), &mockBranchRepo{})

	detail, lines, err := svc.Detail(context.Background(), user.ID)

	assert.Nil(t, err)
	assert.Equal(t, "Asha", detail.FullName)
	assert.Len(t, lines, 1)
	assert.Equal(t, "15/03/2026", lines[0].Date)
	assert.Equal(t, "Ultra Soft Regular", lines[0].ProductName)
	assert.Equal(t, float64(360), lines[0].TotalPrice)
}
