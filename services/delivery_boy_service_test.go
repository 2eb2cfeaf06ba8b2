package services_test

import (
	"context"
	"net/http"
	"testing"

	"ecommerce-backend/models"
	"ecommerce-backend/repository"
	"ecommerce-backend/services"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ---- mock delivery boy repository ----

type mockDeliveryBoyRepo struct {
	boys []*models.DeliveryBoy
}

func (m *mockDeliveryBoyRepo) Create(_ context.Context, d *models.DeliveryBoy) error {
	d.ID = primitive.NewObjectID()
	m.boys = append(m.boys, d)
	return nil
}

func (m *mockDeliveryBoyRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.DeliveryBoy, error) {
	for _, b := range m.boys {
		if b.ID == id && !b.IsDeleted {
			return b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockDeliveryBoyRepo) FindByUserID(_ context.Context, userID string) (*models.DeliveryBoy, error) {
	for _, b := range m.boys {
		if b.UserID == userID {
			return b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockDeliveryBoyRepo) FindDuplicate(_ context.Context, email, phone, userID string, exclude *primitive.ObjectID) (*models.DeliveryBoy, error) {
	for _, b := range m.boys {
		if exclude != nil && b.ID == *exclude {
			continue
		}
		if (email != "" && b.Email == email) || (phone != "" && b.PhoneNumber == phone) || (userID != "" && b.UserID == userID) {
			return b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockDeliveryBoyRepo) Search(_ context.Context, _ repository.DeliveryBoySearch) ([]models.DeliveryBoy, int64, error) {
	var out []models.DeliveryBoy
	for _, b := range m.boys {
		if !b.IsDeleted {
			out = append(out, *b)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockDeliveryBoyRepo) Update(_ context.Context, id primitive.ObjectID, updates bson.M) error {
	b, err := m.FindByID(context.Background(), id)
	if err != nil {
		return err
	}
	if v, ok := updates["fullName"]; ok {
		b.FullName = v.(string)
	}
	if v, ok := updates["password"]; ok {
		b.Password = v.(string)
	}
	return nil
}

func (m *mockDeliveryBoyRepo) SoftDelete(_ context.Context, id primitive.ObjectID) error {
	b, err := m.FindByID(context.Background(), id)
	if err != nil {
		return err
	}
	b.IsDeleted = true
	return nil
}

func newDeliveryBoyService() (*services.DeliveryBoyService, *mockDeliveryBoyRepo) {
	repo := &mockDeliveryBoyRepo{}
	branches := &mockBranchRepo{branches: map[string]*models.Branch{
		"Central": {ID: primitive.NewObjectID(), BranchName: "Central"},
	}}
	return services.NewDeliveryBoyService(repo, branches, []byte("test-secret"), zap.NewNop()), repo
}

func addRequest() *models.AddDeliveryBoyRequest {
	return &models.AddDeliveryBoyRequest{
		FullName:    "Ravi Kumar",
		Email:       "ravi@example.com",
		PhoneNumber: "9876543210",
		UserID:      "DB001",
		Password:    "secure-password",
		Address:     "221B Baker Street, Delhi",
		Branch:      "Central",
	}
}

func TestAddDeliveryBoy_DefaultsImageAndHashesPassword(t *testing.T) {
	svc, repo := newDeliveryBoyService()

	boy, err := svc.Add(context.Background(), addRequest())

	assert.Nil(t, err)
	assert.Equal(t, models.DefaultProfileImage, boy.Image)
	assert.True(t, boy.IsActive)
	assert.NotEqual(t, "secure-password", repo.boys[0].Password)
	assert.True(t, services.CheckPassword(repo.boys[0].Password, "secure-password"))
}

func TestAddDeliveryBoy_DuplicateUserID(t *testing.T) {
	svc, _ := newDeliveryBoyService()
	_, err := svc.Add(context.Background(), addRequest())
	assert.Nil(t, err)

	dup := addRequest()
	dup.Email = "other@example.com"
	dup.PhoneNumber = "9876543211"

	_, err = svc.Add(context.Background(), dup)

	assert.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, err.StatusCode)
}

func TestAddDeliveryBoy_UnknownBranch(t *testing.T) {
	svc, _ := newDeliveryBoyService()

	req := addRequest()
	req.Branch = "Nowhere"

	_, err := svc.Add(context.Background(), req)

	assert.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "Branch not found.", err.Message)
}

func TestDeliveryBoyLogin_IssuesToken(t *testing.T) {
	svc, repo := newDeliveryBoyService()
	_, err := svc.Add(context.Background(), addRequest())
	assert.Nil(t, err)

	boy, token, svcErr := svc.Login(context.Background(), &models.DeliveryBoyLoginRequest{
		UserID:   "DB001",
		Password: "secure-password",
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, repo.boys[0].ID, boy.ID)

	claims, parseErr := services.ParseToken([]byte("test-secret"), token)
	assert.NoError(t, parseErr)
	assert.Equal(t, services.RoleDeliveryBoy, claims["role"])
}

func TestDeliveryBoyLogin_WrongPassword(t *testing.T) {
	svc, _ := newDeliveryBoyService()
	_, err := svc.Add(context.Background(), addRequest())
	assert.Nil(t, err)

	_, _, svcErr := svc.Login(context.Background(), &models.DeliveryBoyLoginRequest{
		UserID:   "DB001",
		Password: "wrong",
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusUnauthorized, svcErr.StatusCode)
}

func TestDeliveryBoyLogin_SoftDeletedAccount(t *testing.T) {
	svc, repo := newDeliveryBoyService()
	_, err := svc.Add(context.Background(), addRequest())
	assert.Nil(t, err)

	repo.boys[0].IsDeleted = true

	_, _, svcErr := svc.Login(context.Background(), &models.DeliveryBoyLoginRequest{
		UserID:   "DB001",
		Password: "secure-password",
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusUnauthorized, svcErr.StatusCode)
}

func TestDeleteDeliveryBoy_ThenGetFails(t *testing.T) {
	svc, repo := newDeliveryBoyService()
	_, err := svc.Add(context.Background(), addRequest())
	assert.Nil(t, err)

	assert.Nil(t, svc.Delete(context.Background(), repo.boys[0].ID))

	_, getErr := svc.Get(context.Background(), repo.boys[0].ID)
	assert.NotNil(t, getErr)
	assert.Equal(t, http.StatusNotFound, getErr.StatusCode)
}
