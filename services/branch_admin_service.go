package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"ecommerce-backend/models"
	"ecommerce-backend/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// RoleBranchAdmin is the JWT role claim for branch administrators.
const RoleBranchAdmin = "branchAdmin"

// otpTTL is how long a forgot-password OTP stays valid.
const otpTTL = 10 * time.Minute

// OTPDeliverer hands a generated OTP to the admin out of band. The default
// implementation only logs; mail and SMS transports can replace it.
type OTPDeliverer interface {
	Deliver(ctx context.Context, email, otp string) error
}

// LogOTPDeliverer logs OTP issuance instead of sending anything.
type LogOTPDeliverer struct {
	Logger *zap.Logger
}

func (d *LogOTPDeliverer) Deliver(_ context.Context, email, _ string) error {
	d.Logger.Info("OTP issued", zap.String("email", email))
	return nil
}

// BranchAdminService handles branch-admin registration, login, the
// forgot-password OTP flow and profile management.
type BranchAdminService struct {
	admins    repository.BranchAdminRepository
	branches  repository.BranchRepository
	otp       OTPDeliverer
	jwtSecret []byte
	logger    *zap.Logger
}

// NewBranchAdminService creates a BranchAdminService.
func NewBranchAdminService(admins repository.BranchAdminRepository, branches repository.BranchRepository, otp OTPDeliverer, jwtSecret []byte, logger *zap.Logger) *BranchAdminService {
	return &BranchAdminService{admins: admins, branches: branches, otp: otp, jwtSecret: jwtSecret, logger: logger}
}

// Register creates a branch admin bound to an existing branch.
func (s *BranchAdminService) Register(ctx context.Context, req *models.RegisterBranchAdminRequest) (*models.BranchAdmin, *ServiceError) {
	existing, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("Failed to check existing admin", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	if existing != nil {
		return nil, NewServiceError(http.StatusConflict, "An admin with this email already exists.")
	}

	branch, err := s.branches.FindByName(ctx, req.Branch)
	if err != nil {
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

	image := req.ProfileImage
	if image == "" {
		image = models.DefaultProfileImage
	}

	admin := &models.BranchAdmin{
		FullName:      req.FullName,
		Email:         req.Email,
		Password:      hash,
		ContactNumber: req.ContactNumber,
		ProfileImage:  image,
		Branch:        branch.ID,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		s.logger.Error("Failed to create branch admin", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	s.logger.Info("Branch admin registered", zap.String("email", admin.Email))
	return admin, nil
}

// Login verifies credentials and issues a 24-hour token.
func (s *BranchAdminService) Login(ctx context.Context, req *models.LoginRequest) (*models.BranchAdmin, string, *ServiceError) {
	admin, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", NewServiceError(http.StatusUnauthorized, "Invalid email or password.")
		}
		s.logger.Error("Failed to fetch admin for login", zap.Error(err))
		return nil, "", NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	if !CheckPassword(admin.Password, req.Password) {
		return nil, "", NewServiceError(http.StatusUnauthorized, "Invalid email or password.")
	}

	token, err := GenerateToken(s.jwtSecret, admin.ID.Hex(), RoleBranchAdmin, AdminTokenTTL)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return nil, "", NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	s.logger.Info("Branch admin logged in", zap.String("email", admin.Email))
	return admin, token, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// ForgotPassword issues a fresh OTP and resets the verification flag.
func (s *BranchAdminService) ForgotPassword(ctx context.Context, email string) *ServiceError {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewServiceError(http.StatusNotFound, "No admin found with this email.")
		}
		s.logger.Error("Failed to fetch admin for OTP", zap.Error(err))
		return NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	otp, err := generateOTP()
	if err != nil {
		s.logger.Error("Failed to generate OTP", zap.Error(err))
		return NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	updates := bson.M{
		"otp":        otp,
		"otpExpires": time.Now().UTC().Add(otpTTL),
		"isVerified": false,
	}
	if err := s.admins.Update(ctx, admin.ID, updates); err != nil {
		s.logger.Error("Failed to store OTP", zap.Error(err))
		return NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	if err := s.otp.Deliver(ctx, admin.Email, otp); err != nil {
		s.logger.Error("Failed to deliver OTP", zap.Error(err))
		return NewServiceError(http.StatusInternalServerError, "Failed to send OTP.")
	}
	return nil
}

// VerifyOTP checks a pending OTP and marks the admin as verified.
func (s *BranchAdminService) VerifyOTP(ctx context.Context, email, otp string) *ServiceError {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewServiceError(http.StatusNotFound, "No admin found with this email.")
		}
		s.logger.Error("Failed to fetch admin for OTP verification", zap.Error(err))
		return NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	if admin.OTP == "" || admin.OTP != otp {
		return NewServiceError(http.StatusBadRequest, "Invalid OTP.")
	}
	if time.Now().UTC().After(admin.OTPExpires) {
		return NewServiceError(http.StatusBadRequest, "OTP has expired.")
	}

	if err := s.admins.Update(ctx, admin.ID, bson.M{"isVerified": true}); err != nil {
		s.logger.Error("Failed to mark admin verified", zap.Error(err))
		return NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return nil
}

// ResetPassword replaces the password once the OTP has been verified. It
// consumes the verification so the OTP flow cannot be replayed.
func (s *BranchAdminService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) *ServiceError {
	if req.NewPassword != req.ConfirmPassword {
		return NewServiceError(http.StatusBadRequest, "Passwords do not match.")
	}

	admin, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewServiceError(http.StatusNotFound, "No admin found with this email.")
		}
		s.logger.Error("Failed to fetch admin for password reset", zap.Error(err))
		return NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	if !admin.IsVerified {
		return NewServiceError(http.StatusBadRequest, "OTP verification required before resetting the password.")
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	updates := bson.M{
		"password":   hash,
		"otp":        "",
		"isVerified": false,
	}
	if err := s.admins.Update(ctx, admin.ID, updates); err != nil {
		s.logger.Error("Failed to reset password", zap.Error(err))
		return NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	s.logger.Info("Branch admin password reset", zap.String("email", admin.Email))
	return nil
}

// Profile returns the admin's profile with its branch resolved.
func (s *BranchAdminService) Profile(ctx context.Context, id primitive.ObjectID) (*models.BranchAdminProfile, *ServiceError) {
	admin, err := s.admins.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Admin not found.")
		}
		s.logger.Error("Failed to fetch admin profile", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}

	profile := &models.BranchAdminProfile{
		FullName:      admin.FullName,
		Email:         admin.Email,
		ContactNumber: admin.ContactNumber,
		ProfileImage:  admin.ProfileImage,
	}
	if branch, err := s.branches.FindByID(ctx, admin.Branch); err == nil {
		profile.Branch = &models.BranchOption{ID: branch.ID, BranchName: branch.BranchName}
	}
	return profile, nil
}

// UpdateProfile applies profile edits; a password change requires matching
// confirmation.
func (s *BranchAdminService) UpdateProfile(ctx context.Context, id primitive.ObjectID, req *models.UpdateBranchAdminRequest) (*models.BranchAdminProfile, *ServiceError) {
	updates := bson.M{}
	if req.FullName != "" {
		updates["fullName"] = req.FullName
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.ContactNumber != "" {
		updates["contactNumber"] = req.ContactNumber
	}
	if req.ProfileImage != "" {
		updates["profileImage"] = req.ProfileImage
	}
	if req.NewPassword != "" {
		if req.NewPassword != req.ConfirmNewPassword {
			return nil, NewServiceError(http.StatusBadRequest, "Passwords do not match.")
		}
		hash, err := HashPassword(req.NewPassword)
		if err != nil {
			s.logger.Error("Failed to hash password", zap.Error(err))
			return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
		}
		updates["password"] = hash
	}

	if len(updates) > 0 {
		if err := s.admins.Update(ctx, id, updates); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, NewServiceError(http.StatusNotFound, "Admin not found.")
			}
			s.logger.Error("Failed to update admin profile", zap.Error(err))
			return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
		}
	}
	return s.Profile(ctx, id)
}

// Branch returns the admin's branch record.
func (s *BranchAdminService) Branch(ctx context.Context, adminID primitive.ObjectID) (*models.Branch, *ServiceError) {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Admin not found.")
		}
		s.logger.Error("Failed to fetch admin", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	branch, err := s.branches.FindByID(ctx, admin.Branch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewServiceError(http.StatusNotFound, "Branch not found.")
		}
		s.logger.Error("Failed to fetch branch", zap.Error(err))
		return nil, NewServiceError(http.StatusInternalServerError, "Internal Server Error")
	}
	return branch, nil
}
