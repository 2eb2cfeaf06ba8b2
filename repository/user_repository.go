package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"ecommerce-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CustomerSearch holds the branch-scoped customer listing parameters.
type CustomerSearch struct {
	Pincodes  []string
	Search    string
	SortOrder string // "asc", "desc" or empty (newest first)
	Page      int
	Limit     int
}

// UserRepository defines data access for customers.
type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	SearchByPincodes(ctx context.Context, p CustomerSearch) ([]models.User, int64, error)
}

// MongoUserRepository implements UserRepository on the users collection.
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a user repository.
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// SearchByPincodes lists customers whose address mentions one of the branch's
// service pincodes, with optional name/email/phone search.
func (r *MongoUserRepository) SearchByPincodes(ctx context.Context, p CustomerSearch) ([]models.User, int64, error) {
	if len(p.Pincodes) == 0 {
		return nil, 0, nil
	}

	quoted := make([]string, len(p.Pincodes))
	for i, pin := range p.Pincodes {
		quoted[i] = regexp.QuoteMeta(pin)
	}
	filter := bson.M{
		"isDeleted": false,
		"address":   bson.M{"$regex": "(" + strings.Join(quoted, "|") + ")", "$options": "i"},
	}

	if s := strings.TrimSpace(p.Search); s != "" {
		or := bson.A{
			bson.M{"fullName": bson.M{"$regex": s, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": s, "$options": "i"}},
			bson.M{"phoneNumber": bson.M{"$regex": s, "$options": "i"}},
		}
		filter["$or"] = or
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	opts := options.Find().
		SetProjection(bson.M{"fullName": 1, "image": 1, "phoneNumber": 1, "address": 1}).
		SetSkip(int64((p.Page - 1) * p.Limit)).
		SetLimit(int64(p.Limit))
	switch p.SortOrder {
	case "asc":
		opts.SetSort(bson.D{{Key: "fullName", Value: 1}})
	case "desc":
		opts.SetSort(bson.D{{Key: "fullName", Value: -1}})
	default:
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find customers: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, fmt.Errorf("decode customers: %w", err)
	}
	return users, total, nil
}
