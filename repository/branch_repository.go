package repository

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BranchRepository defines data access for branches.
type BranchRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Branch, error)
	FindByName(ctx context.Context, name string) (*models.Branch, error)
	Options(ctx context.Context) ([]models.BranchOption, error)
	ServicePincodes(ctx context.Context, id primitive.ObjectID) ([]string, error)
}

// MongoBranchRepository implements BranchRepository on the branches
// collection.
type MongoBranchRepository struct {
	collection *mongo.Collection
}

// NewMongoBranchRepository creates a branch repository.
func NewMongoBranchRepository(db *mongo.Database) *MongoBranchRepository {
	return &MongoBranchRepository{collection: db.Collection("branches")}
}

func (r *MongoBranchRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Branch, error) {
	var branch models.Branch
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&branch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find branch: %w", err)
	}
	return &branch, nil
}

func (r *MongoBranchRepository) FindByName(ctx context.Context, name string) (*models.Branch, error) {
	var branch models.Branch
	err := r.collection.FindOne(ctx, bson.M{"branchName": name}).Decode(&branch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find branch by name: %w", err)
	}
	return &branch, nil
}

// Options lists every branch as a name-only dropdown entry.
func (r *MongoBranchRepository) Options(ctx context.Context) ([]models.BranchOption, error) {
	opts := options.Find().SetProjection(bson.M{"branchName": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer cursor.Close(ctx)

	var branches []models.BranchOption
	if err := cursor.All(ctx, &branches); err != nil {
		return nil, fmt.Errorf("decode branches: %w", err)
	}
	return branches, nil
}

// ServicePincodes returns the pincodes served by a branch.
func (r *MongoBranchRepository) ServicePincodes(ctx context.Context, id primitive.ObjectID) ([]string, error) {
	opts := options.FindOne().SetProjection(bson.M{"servicePinCode": 1})
	var branch models.Branch
	err := r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&branch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find branch pincodes: %w", err)
	}
	return branch.ServicePinCode, nil
}
