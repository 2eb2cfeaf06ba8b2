package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BranchAdmin manages one branch. Password holds the bcrypt hash. OTP fields
// drive the forgot-password flow: an OTP is issued, verified (setting
// IsVerified), and consumed by the subsequent password reset.
type BranchAdmin struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName      string             `bson:"fullName" json:"fullName"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password" json:"-"`
	ContactNumber string             `bson:"contactNumber" json:"contactNumber"`
	ProfileImage  string             `bson:"profileImage" json:"profileImage"`
	Branch        primitive.ObjectID `bson:"branch" json:"branch"`
	OTP           string             `bson:"otp,omitempty" json:"-"`
	OTPExpires    time.Time          `bson:"otpExpires,omitempty" json:"-"`
	IsVerified    bool               `bson:"isVerified" json:"-"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RegisterBranchAdminRequest is the branch-admin registration payload.
type RegisterBranchAdminRequest struct {
	FullName      string `json:"fullName" binding:"required"`
	ContactNumber string `json:"contactNumber" binding:"required,min=10"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	Branch        string `json:"branch" binding:"required"`
	ProfileImage  string `json:"profileImage"`
}

// LoginRequest is the email + password login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest starts the OTP flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest checks an issued OTP.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// ResetPasswordRequest completes the OTP flow.
type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// UpdateBranchAdminRequest updates profile fields; empty values are ignored.
type UpdateBranchAdminRequest struct {
	FullName           string `json:"fullName"`
	Email              string `json:"email" binding:"omitempty,email"`
	ContactNumber      string `json:"contactNumber"`
	ProfileImage       string `json:"profileImage"`
	NewPassword        string `json:"newPassword" binding:"omitempty,min=8"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

// BranchAdminProfile is the profile payload returned to the client.
type BranchAdminProfile struct {
	FullName      string        `json:"fullName"`
	Email         string        `json:"email"`
	ContactNumber string        `json:"contactNumber"`
	ProfileImage  string        `json:"profileImage"`
	Branch        *BranchOption `json:"branch,omitempty"`
}
