package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"ecommerce-backend/models"
	"ecommerce-backend/repository"
	"ecommerce-backend/services"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ---- mock branch admin repository ----

type mockAdminRepo struct {
	admins map[string]*models.BranchAdmin
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{admins: make(map[string]*models.BranchAdmin)}
}

func (m *mockAdminRepo) Create(_ context.Context, a *models.BranchAdmin) error {
	a.ID = primitive.NewObjectID()
	m.admins[a.Email] = a
	return nil
}

func (m *mockAdminRepo) FindByEmail(_ context.Context, email string) (*models.BranchAdmin, error) {
	a, ok := m.admins[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (m *mockAdminRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.BranchAdmin, error) {
	for _, a := range m.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockAdminRepo) Update(_ context.Context, id primitive.ObjectID, updates bson.M) error {
	admin, err := m.FindByID(context.Background(), id)
	if err != nil {
		return err
	}
	if v, ok := updates["otp"]; ok {
		admin.OTP = v.(string)
	}
	if v, ok := updates["otpExpires"]; ok {
		admin.OTPExpires = v.(time.Time)
	}
	if v, ok := updates["isVerified"]; ok {
		admin.IsVerified = v.(bool)
	}
	if v, ok := updates["password"]; ok {
		admin.Password = v.(string)
	}
	if v, ok := updates["fullName"]; ok {
		admin.FullName = v.(string)
	}
	return nil
}

type capturingDeliverer struct {
	email string
	otp   string
}

func (d *capturingDeliverer) Deliver(_ context.Context, email, otp string) error {
	d.email = email
	d.otp = otp
	return nil
}

func newAdminService(t *testing.T) (*services.BranchAdminService, *mockAdminRepo, *capturingDeliverer) {
	t.Helper()
	repo := newMockAdminRepo()
	branches := &mockBranchRepo{branches: map[string]*models.Branch{
		"Central": {ID: primitive.NewObjectID(), BranchName: "Central", ServicePinCode: []string{"110001"}},
	}}
	deliverer := &capturingDeliverer{}
	svc := services.NewBranchAdminService(repo, branches, deliverer, []byte("test-secret"), zap.NewNop())
	return svc, repo, deliverer
}

func registerAdmin(t *testing.T, svc *services.BranchAdminService) *models.BranchAdmin {
	t.Helper()
	admin, err := svc.Register(context.Background(), &models.RegisterBranchAdminRequest{
		FullName:      "Asha Verma",
		ContactNumber: "9876543210",
		Email:         "asha@example.com",
		Password:      "strong-password",
		Branch:        "Central",
	})
	assert.Nil(t, err)
	return admin
}

func TestRegister_HashesPasswordAndResolvesBranch(t *testing.T) {
	svc, repo, _ := newAdminService(t)

	admin := registerAdmin(t, svc)

	stored := repo.admins["asha@example.com"]
	assert.NotEqual(t, "strong-password", stored.Password)
	assert.True(t, services.CheckPassword(stored.Password, "strong-password"))
	assert.False(t, admin.Branch.IsZero())
}

func TestRegister_UnknownBranch(t *testing.T) {
	svc, _, _ := newAdminService(t)

	_, err := svc.Register(context.Background(), &models.RegisterBranchAdminRequest{
		FullName:      "Asha Verma",
		ContactNumber: "9876543210",
		Email:         "asha@example.com",
		Password:      "strong-password",
		Branch:        "Nowhere",
	})

	assert.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newAdminService(t)
	registerAdmin(t, svc)

	_, err := svc.Register(context.Background(), &models.RegisterBranchAdminRequest{
		FullName:      "Someone Else",
		ContactNumber: "9876543211",
		Email:         "asha@example.com",
		Password:      "another-password",
		Branch:        "Central",
	})

	assert.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, err.StatusCode)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newAdminService(t)
	registerAdmin(t, svc)

	_, _, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})

	assert.NotNil(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.StatusCode)
}

func TestLogin_IssuesValidToken(t *testing.T) {
	svc, repo, _ := newAdminService(t)
	registerAdmin(t, svc)

	_, token, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "asha@example.com",
		Password: "strong-password",
	})

	assert.Nil(t, err)
	claims, parseErr := services.ParseToken([]byte("test-secret"), token)
	assert.NoError(t, parseErr)
	assert.Equal(t, services.RoleBranchAdmin, claims["role"])
	assert.Equal(t, repo.admins["asha@example.com"].ID.Hex(), claims["user_id"])
}

func TestForgotPassword_IssuesSixDigitOTP(t *testing.T) {
	svc, repo, deliverer := newAdminService(t)
	registerAdmin(t, svc)

	err := svc.ForgotPassword(context.Background(), "asha@example.com")

	assert.Nil(t, err)
	stored := repo.admins["asha@example.com"]
	assert.Len(t, stored.OTP, 6)
	assert.Equal(t, stored.OTP, deliverer.otp)
	assert.Equal(t, "asha@example.com", deliverer.email)
	assert.False(t, stored.IsVerified)
	assert.True(t, stored.OTPExpires.After(time.Now().UTC()))
}

func TestResetPassword_RequiresVerification(t *testing.T) {
	svc, _, _ := newAdminService(t)
	registerAdmin(t, svc)
	assert.Nil(t, svc.ForgotPassword(context.Background(), "asha@example.com"))

	err := svc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		Email:           "asha@example.com",
		NewPassword:     "brand-new-password",
		ConfirmPassword: "brand-new-password",
	})

	assert.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestOTPFlow_VerifyThenReset(t *testing.T) {
	svc, repo, deliverer := newAdminService(t)
	registerAdmin(t, svc)
	assert.Nil(t, svc.ForgotPassword(context.Background(), "asha@example.com"))

	assert.Nil(t, svc.VerifyOTP(context.Background(), "asha@example.com", deliverer.otp))

	err := svc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		Email:           "asha@example.com",
		NewPassword:     "brand-new-password",
		ConfirmPassword: "brand-new-password",
	})
	assert.Nil(t, err)

	stored := repo.admins["asha@example.com"]
	assert.True(t, services.CheckPassword(stored.Password, "brand-new-password"))

	// the verification was consumed
	assert.False(t, stored.IsVerified)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	svc, _, _ := newAdminService(t)
	registerAdmin(t, svc)
	assert.Nil(t, svc.ForgotPassword(context.Background(), "asha@example.com"))

	err := svc.VerifyOTP(context.Background(), "asha@example.com", "000000x")

	assert.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "Invalid OTP.", err.Message)
}

func TestVerifyOTP_Expired(t *testing.T) {
	svc, repo, deliverer := newAdminService(t)
	registerAdmin(t, svc)
	assert.Nil(t, svc.ForgotPassword(context.Background(), "asha@example.com"))

	repo.admins["asha@example.com"].OTPExpires = time.Now().UTC().Add(-time.Minute)

	err := svc.VerifyOTP(context.Background(), "asha@example.com", deliverer.otp)

	assert.NotNil(t, err)
	assert.Equal(t, "OTP has expired.", err.Message)
}

func TestResetPassword_MismatchedConfirmation(t *testing.T) {
	svc, _, _ := newAdminService(t)
	registerAdmin(t, svc)

	err := svc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		Email:           "asha@example.com",
		NewPassword:     "first-password",
		ConfirmPassword: "second-password",
	})

	assert.NotNil(t, err)
	assert.Equal(t, "Passwords do not match.", err.Message)
}
