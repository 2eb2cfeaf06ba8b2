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

// DeliveryBoySearch holds the delivery-boy listing parameters.
type DeliveryBoySearch struct {
	Search    string
	Branch    string
	SortOrder string // "asc", "desc" or empty (newest first)
	Page      int
	Limit     int
}

// DeliveryBoyRepository defines data access for delivery boys.
type DeliveryBoyRepository interface {
	Create(ctx context.Context, d *models.DeliveryBoy) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.DeliveryBoy, error)
	FindByUserID(ctx context.Context, userID string) (*models.DeliveryBoy, error)
	FindDuplicate(ctx context.Context, email, phone, userID string, exclude *primitive.ObjectID) (*models.DeliveryBoy, error)
	Search(ctx context.Context, p DeliveryBoySearch) ([]models.DeliveryBoy, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
}

// MongoDeliveryBoyRepository implements DeliveryBoyRepository on the
// delivery_boys collection.
type MongoDeliveryBoyRepository struct {
	collection *mongo.Collection
}

// NewMongoDeliveryBoyRepository creates a delivery-boy repository.
func NewMongoDeliveryBoyRepository(db *mongo.Database) *MongoDeliveryBoyRepository {
	return &MongoDeliveryBoyRepository{collection: db.Collection("delivery_boys")}
}

func (r *MongoDeliveryBoyRepository) Create(ctx context.Context, d *models.DeliveryBoy) error {
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	res, err := r.collection.InsertOne(ctx, d)
	if err != nil {
		return fmt.Errorf("insert delivery boy: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		d.ID = oid
	}
	return nil
}

func (r *MongoDeliveryBoyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.DeliveryBoy, error) {
	var d models.DeliveryBoy
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find delivery boy: %w", err)
	}
	return &d, nil
}

func (r *MongoDeliveryBoyRepository) FindByUserID(ctx context.Context, userID string) (*models.DeliveryBoy, error) {
	var d models.DeliveryBoy
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "isDeleted": false}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find delivery boy by userId: %w", err)
	}
	return &d, nil
}

// FindDuplicate looks up another delivery boy sharing any of the unique
// fields. Blank fields are skipped; exclude removes the record being updated.
func (r *MongoDeliveryBoyRepository) FindDuplicate(ctx context.Context, email, phone, userID string, exclude *primitive.ObjectID) (*models.DeliveryBoy, error) {
	var or bson.A
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if phone != "" {
		or = append(or, bson.M{"phoneNumber": phone})
	}
	if userID != "" {
		or = append(or, bson.M{"userId": userID})
	}
	if len(or) == 0 {
		return nil, ErrNotFound
	}

	filter := bson.M{"$or": or}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}

	var d models.DeliveryBoy
	err := r.collection.FindOne(ctx, filter).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find duplicate delivery boy: %w", err)
	}
	return &d, nil
}

func (r *MongoDeliveryBoyRepository) Search(ctx context.Context, p DeliveryBoySearch) ([]models.DeliveryBoy, int64, error) {
	filter := bson.M{
		"isDeleted": false,
		"$or": bson.A{
			bson.M{"fullName": bson.M{"$regex": p.Search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": p.Search, "$options": "i"}},
			bson.M{"userId": bson.M{"$regex": p.Search, "$options": "i"}},
		},
	}
	if p.Branch != "" {
		filter["branch"] = p.Branch
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count delivery boys: %w", err)
	}

	opts := options.Find().
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
		return nil, 0, fmt.Errorf("find delivery boys: %w", err)
	}
	defer cursor.Close(ctx)

	var boys []models.DeliveryBoy
	if err := cursor.All(ctx, &boys); err != nil {
		return nil, 0, fmt.Errorf("decode delivery boys: %w", err)
	}
	return boys, total, nil
}

func (r *MongoDeliveryBoyRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	updates["updatedAt"] = time.Now().UTC()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("update delivery boy: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoDeliveryBoyRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	return r.Update(ctx, id, bson.M{"isDeleted": true})
}
