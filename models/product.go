package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LowStockThreshold is the central-stock level below which a low stock
// notification is raised after an allocation.
const LowStockThreshold = 50

// LeftStockVisibleAt is the level at or below which the customer-facing
// product detail exposes the remaining quantity.
const LeftStockVisibleAt = 20

// ValidBrands is the closed set of brands a product may carry.
var ValidBrands = []string{"whisper", "Stayfree", "Sofy", "always", "natracare"}

// ValidSizes is the closed set of product sizes.
var ValidSizes = []string{"Regular", "Large", "Extra Large", "Overnight"}

// IsValidBrand reports whether brand belongs to the allowed set.
func IsValidBrand(brand string) bool {
	for _, b := range ValidBrands {
		if b == brand {
			return true
		}
	}
	return false
}

// IsValidSize reports whether size belongs to the allowed set.
func IsValidSize(size string) bool {
	for _, s := range ValidSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Product is a catalog entry and the central stock ledger record.
// AvailableProductQuantity is the warehouse-level counter decremented by
// branch allocations and incremented by stock intake.
type Product struct {
	ID                       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductCode              string             `bson:"productCode" json:"productCode"`
	Brand                    string             `bson:"brand" json:"brand"`
	ProductName              string             `bson:"productName" json:"productName"`
	ProductSubType           string             `bson:"productSubType,omitempty" json:"productSubType,omitempty"`
	ProductDescription       string             `bson:"productDescription,omitempty" json:"productDescription,omitempty"`
	Size                     string             `bson:"size" json:"size"`
	Price                    float64            `bson:"price" json:"price"`
	QuantityInEachPack       int                `bson:"quantityInEachPack" json:"quantityInEachPack"`
	AvailableProductQuantity int                `bson:"availableProductQuantity" json:"availableProductQuantity"`
	Image                    []string           `bson:"image" json:"image"`
	IsDeleted                bool               `bson:"isDeleted" json:"isDeleted"`
	CreatedAt                time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt                time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FirstImage returns the primary image, or an empty string when none exists.
func (p *Product) FirstImage() string {
	if len(p.Image) > 0 {
		return p.Image[0]
	}
	return ""
}

// CreateProductRequest is the payload for creating a product.
type CreateProductRequest struct {
	Brand                    string   `json:"brand" binding:"required"`
	ProductName              string   `json:"productName" binding:"required"`
	ProductSubType           string   `json:"productSubType"`
	ProductDescription       string   `json:"productDescription"`
	Size                     string   `json:"size" binding:"required"`
	Price                    float64  `json:"price" binding:"required,gt=0"`
	QuantityInEachPack       int      `json:"quantityInEachPack" binding:"required,gt=0"`
	AvailableProductQuantity int      `json:"availableProductQuantity" binding:"gte=0"`
	Image                    []string `json:"image"`
}

// UpdateProductRequest is the payload for updating a product. Zero-valued
// fields are left untouched.
type UpdateProductRequest struct {
	Brand              string   `json:"brand"`
	ProductName        string   `json:"productName"`
	ProductSubType     string   `json:"productSubType"`
	ProductDescription string   `json:"productDescription"`
	Size               string   `json:"size"`
	Price              float64  `json:"price" binding:"omitempty,gt=0"`
	QuantityInEachPack int      `json:"quantityInEachPack" binding:"omitempty,gt=0"`
	ExistingImages     []string `json:"existingImages"`
	Image              []string `json:"image"`
}

// QuantityRequest adjusts the central stock of a product (intake or removal).
type QuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// AssignToBranchEntry is one element of the allocation request wire format.
// ProductID is repeated per entry but the product is taken from the first
// entry and applies to the whole batch.
type AssignToBranchEntry struct {
	BranchID      string `json:"branchId" binding:"required"`
	ProductID     string `json:"productId" binding:"required"`
	QuantityToAdd int    `json:"quantityToAdd" binding:"required,gt=0"`
}

// ProductListItem is the shape of one row in the admin product listing.
type ProductListItem struct {
	ID                       primitive.ObjectID `json:"id"`
	Image                    string             `json:"image"`
	ProductName              string             `json:"productName"`
	AvailableProductQuantity int                `json:"availableProductQuantity"`
	IsDeleted                bool               `json:"isDeleted"`
}

// CustomerProduct is the customer-facing listing row.
type CustomerProduct struct {
	ID                 primitive.ObjectID `json:"_id"`
	Image              string             `json:"image"`
	ProductName        string             `json:"productName"`
	Price              float64            `json:"price"`
	QuantityInEachPack int                `json:"quantityInEachPack"`
	Brand              string             `json:"brand"`
}

// CustomerProductDetail is the customer-facing product page payload.
// LeftStock is only populated when stock has dropped to LeftStockVisibleAt
// or below.
type CustomerProductDetail struct {
	ID                 primitive.ObjectID `json:"_id"`
	Image              string             `json:"image"`
	ProductName        string             `json:"productName"`
	QuantityInEachPack int                `json:"quantityInEachPack"`
	Price              float64            `json:"price"`
	AboutThisItem      string             `json:"aboutThisItem"`
	RelatedImages      []string           `json:"relatedImages"`
	LeftStock          *int               `json:"leftStock,omitempty"`
}

// RelatedProduct is a row in the buy-it-with / related-products carousels.
type RelatedProduct struct {
	ID                 primitive.ObjectID `json:"_id"`
	Image              string             `json:"image"`
	ProductName        string             `json:"productName"`
	QuantityInEachPack int                `json:"quantityInEachPack"`
	Price              float64            `json:"price"`
	Size               string             `json:"size"`
}
