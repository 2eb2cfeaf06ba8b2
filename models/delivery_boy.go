package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultProfileImage is used when no profile picture has been set.
const DefaultProfileImage = "https://static.vecteezy.com/system/resources/previews/020/911/740/non_2x/user-profile-icon-profile-avatar-user-icon-male-icon-face-icon-profile-icon-free-png.png"

// DeliveryBoy is a delivery agent attached to a branch. Password holds the
// bcrypt hash.
type DeliveryBoy struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName    string             `bson:"fullName" json:"fullName"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	UserID      string             `bson:"userId" json:"userId"`
	Password    string             `bson:"password" json:"-"`
	Address     string             `bson:"address" json:"address"`
	Branch      string             `bson:"branch" json:"branch"`
	Image       string             `bson:"image" json:"image"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	IsDeleted   bool               `bson:"isDeleted" json:"isDeleted"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AddDeliveryBoyRequest is the payload for creating a delivery boy.
type AddDeliveryBoyRequest struct {
	FullName    string `json:"fullName" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required,len=10,numeric"`
	UserID      string `json:"userId" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	Address     string `json:"address" binding:"required,min=10"`
	Branch      string `json:"branch" binding:"required"`
	Image       string `json:"image"`
}

// UpdateDeliveryBoyRequest is the payload for updating a delivery boy.
// Empty fields are left untouched.
type UpdateDeliveryBoyRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,len=10,numeric"`
	UserID      string `json:"userId"`
	Password    string `json:"password" binding:"omitempty,min=8"`
	Address     string `json:"address"`
	Branch      string `json:"branch"`
	Image       string `json:"image"`
}

// DeliveryBoyLoginRequest is the delivery-boy login payload.
type DeliveryBoyLoginRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Password string `json:"password" binding:"required"`
}
