package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an end customer. Customers sign up by phone number; the remaining
// profile fields are optional.
type User struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	PhoneNumber string              `bson:"phoneNumber" json:"phoneNumber"`
	FullName    string              `bson:"fullName" json:"fullName"`
	Image       string              `bson:"image" json:"image"`
	Gender      string              `bson:"gender,omitempty" json:"gender,omitempty"`
	Email       string              `bson:"email" json:"email"`
	Address     string              `bson:"address" json:"address"`
	BranchInfo  *primitive.ObjectID `bson:"branchInfo,omitempty" json:"branchInfo,omitempty"`
	IsDeleted   bool                `bson:"isDeleted" json:"isDeleted"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// CustomerListItem is one row of the branch-scoped customer listing.
type CustomerListItem struct {
	ID          primitive.ObjectID `json:"_id"`
	Image       string             `json:"image"`
	FullName    string             `json:"fullName"`
	PhoneNumber string             `json:"phoneNumber"`
	FullAddress string             `json:"fullAddress"`
}

// CustomerDetail is the branch-admin view of a single customer.
type CustomerDetail struct {
	Image       string `json:"image"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
}

// CustomerOrderLine is one product line of a customer's placed orders.
type CustomerOrderLine struct {
	Date        string  `json:"date"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	TotalPrice  float64 `json:"totalPrice"`
}
