package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand is a storefront brand tile. BrandName matches the product brand enum
// so products can be listed per brand.
type Brand struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BrandName string             `bson:"brandName" json:"brandName"`
	Image     string             `bson:"image" json:"image"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateBrandRequest is the payload for creating a brand.
type CreateBrandRequest struct {
	BrandName string `json:"brandName" binding:"required"`
	Image     string `json:"image" binding:"required"`
}

// UpdateBrandRequest updates a brand; empty fields are ignored.
type UpdateBrandRequest struct {
	BrandName string `json:"brandName"`
	Image     string `json:"image"`
}

// Banner is a storefront banner image.
type Banner struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Image     string             `bson:"image" json:"image"`
	Title     string             `bson:"title,omitempty" json:"title,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
