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
)

// BranchAdminRepository defines data access for branch admins.
type BranchAdminRepository interface {
	Create(ctx context.Context, a *models.BranchAdmin) error
	FindByEmail(ctx context.Context, email string) (*models.BranchAdmin, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.BranchAdmin, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
}

// MongoBranchAdminRepository implements BranchAdminRepository on the
// branch_admins collection.
type MongoBranchAdminRepository struct {
	collection *mongo.Collection
}

// NewMongoBranchAdminRepository creates a branch-admin repository.
func NewMongoBranchAdminRepository(db *mongo.Database) *MongoBranchAdminRepository {
	return &MongoBranchAdminRepository{collection: db.Collection("branch_admins")}
}

func (r *MongoBranchAdminRepository) Create(ctx context.Context, a *models.BranchAdmin) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	res, err := r.collection.InsertOne(ctx, a)
	if err != nil {
		return fmt.Errorf("insert branch admin: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

func (r *MongoBranchAdminRepository) FindByEmail(ctx context.Context, email string) (*models.BranchAdmin, error) {
	var a models.BranchAdmin
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find branch admin by email: %w", err)
	}
	return &a, nil
}

func (r *MongoBranchAdminRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BranchAdmin, error) {
	var a models.BranchAdmin
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find branch admin: %w", err)
	}
	return &a, nil
}

// Update applies updates. Passing a nil value for a field inside $unset-style
// maps is not supported; callers set empty values explicitly.
func (r *MongoBranchAdminRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	updates["updatedAt"] = time.Now().UTC()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("update branch admin: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
