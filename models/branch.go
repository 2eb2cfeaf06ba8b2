package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Branch is a physical outlet that receives allocated stock and serves the
// customers whose addresses fall inside its service pincodes.
type Branch struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BranchName     string             `bson:"branchName" json:"branchName"`
	FullAddress    string             `bson:"fullAddress,omitempty" json:"fullAddress,omitempty"`
	ServicePinCode []string           `bson:"servicePinCode,omitempty" json:"servicePinCode,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BranchOption is the dropdown projection of a branch.
type BranchOption struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	BranchName string             `bson:"branchName" json:"branchName"`
}

// BranchProduct is the per-(branch, product) allocation row. Quantity is the
// stock currently assigned to the branch; it is only ever incremented by the
// allocation flow.
type BranchProduct struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Branch    primitive.ObjectID `bson:"branch" json:"branch"`
	Product   primitive.ObjectID `bson:"product" json:"product"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
