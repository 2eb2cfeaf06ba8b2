package controllers

import (
	"net/http"

	"ecommerce-backend/models"
	"ecommerce-backend/services"

	"github.com/gin-gonic/gin"
)

// tokenCookieMaxAge matches the admin token lifetime.
const tokenCookieMaxAge = 24 * 60 * 60

// BranchAdminController exposes branch-admin auth and profile endpoints.
type BranchAdminController struct {
	admins *services.BranchAdminService
}

// NewBranchAdminController creates a BranchAdminController.
func NewBranchAdminController(admins *services.BranchAdminService) *BranchAdminController {
	return &BranchAdminController{admins: admins}
}

// Register handles POST /branchAdmin/register.
func (bc *BranchAdminController) Register(c *gin.Context) {
	var req models.RegisterBranchAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	admin, svcErr := bc.admins.Register(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Branch admin registered successfully!",
		"admin":   admin,
	})
}

// Login handles POST /branchAdmin/login. The token is returned in the body
// and also set as an HTTP-only cookie for browser clients.
func (bc *BranchAdminController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	admin, token, svcErr := bc.admins.Login(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.SetCookie("token", token, tokenCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful!",
		"token":   token,
		"admin": gin.H{
			"fullName": admin.FullName,
			"email":    admin.Email,
		},
	})
}

// Logout handles POST /branchAdmin/logout.
func (bc *BranchAdminController) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully!"})
}

// ForgotPassword handles POST /branchAdmin/forgotPassword.
func (bc *BranchAdminController) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if svcErr := bc.admins.ForgotPassword(c.Request.Context(), req.Email); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent successfully!"})
}

// VerifyOTP handles POST /branchAdmin/verifyOtp.
func (bc *BranchAdminController) VerifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if svcErr := bc.admins.VerifyOTP(c.Request.Context(), req.Email, req.OTP); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP verified successfully!"})
}

// ResetPassword handles POST /branchAdmin/resetPassword.
func (bc *BranchAdminController) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if svcErr := bc.admins.ResetPassword(c.Request.Context(), &req); svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successfully!"})
}

// Profile handles GET /branchAdmin/profile.
func (bc *BranchAdminController) Profile(c *gin.Context) {
	id, ok := contextUserID(c)
	if !ok {
		return
	}
	profile, svcErr := bc.admins.Profile(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// UpdateProfile handles PUT /branchAdmin/profile.
func (bc *BranchAdminController) UpdateProfile(c *gin.Context) {
	id, ok := contextUserID(c)
	if !ok {
		return
	}
	var req models.UpdateBranchAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	profile, svcErr := bc.admins.UpdateProfile(c.Request.Context(), id, &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully!",
		"profile": profile,
	})
}
