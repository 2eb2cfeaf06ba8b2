package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecommerce-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BranchProductRepository defines data access for per-branch allocations.
type BranchProductRepository interface {
	UpsertAllocation(ctx context.Context, branchID, productID primitive.ObjectID, delta int) (int, error)
	Quantity(ctx context.Context, branchID, productID primitive.ObjectID) (int, error)
}

// MongoBranchProductRepository implements BranchProductRepository on the
// branch_products collection, keyed by (branch, product).
type MongoBranchProductRepository struct {
	collection *mongo.Collection
}

// NewMongoBranchProductRepository creates a branch allocation repository.
func NewMongoBranchProductRepository(db *mongo.Database) *MongoBranchProductRepository {
	return &MongoBranchProductRepository{collection: db.Collection("branch_products")}
}

// UpsertAllocation atomically increments the allocation for (branch, product),
// creating the row on first allocation. Returns the resulting quantity.
func (r *MongoBranchProductRepository) UpsertAllocation(ctx context.Context, branchID, productID primitive.ObjectID, delta int) (int, error) {
	filter := bson.M{"branch": branchID, "product": productID}
	now := time.Now().UTC()
	update := bson.M{
		"$inc":         bson.M{"quantity": delta},
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var row models.BranchProduct
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&row); err != nil {
		return 0, fmt.Errorf("upsert branch allocation: %w", err)
	}
	return row.Quantity, nil
}

// Quantity returns the stock currently allocated to a branch for a product.
func (r *MongoBranchProductRepository) Quantity(ctx context.Context, branchID, productID primitive.ObjectID) (int, error) {
	filter := bson.M{"branch": branchID, "product": productID}
	opts := options.FindOne().SetProjection(bson.M{"quantity": 1})

	var row models.BranchProduct
	err := r.collection.FindOne(ctx, filter, opts).Decode(&row)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("find branch allocation: %w", err)
	}
	return row.Quantity, nil
}
