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

// BrandRepository defines data access for storefront brands.
type BrandRepository interface {
	Create(ctx context.Context, brand *models.Brand) error
	FindAll(ctx context.Context) ([]models.Brand, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Brand, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MongoBrandRepository implements BrandRepository on the brands collection.
type MongoBrandRepository struct {
	collection *mongo.Collection
}

// NewMongoBrandRepository creates a brand repository.
func NewMongoBrandRepository(db *mongo.Database) *MongoBrandRepository {
	return &MongoBrandRepository{collection: db.Collection("brands")}
}

func (r *MongoBrandRepository) Create(ctx context.Context, brand *models.Brand) error {
	now := time.Now().UTC()
	brand.CreatedAt = now
	brand.UpdatedAt = now
	res, err := r.collection.InsertOne(ctx, brand)
	if err != nil {
		return fmt.Errorf("insert brand: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		brand.ID = oid
	}
	return nil
}

func (r *MongoBrandRepository) FindAll(ctx context.Context) ([]models.Brand, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find brands: %w", err)
	}
	defer cursor.Close(ctx)

	var brands []models.Brand
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, fmt.Errorf("decode brands: %w", err)
	}
	return brands, nil
}

func (r *MongoBrandRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Brand, error) {
	var brand models.Brand
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&brand)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find brand: %w", err)
	}
	return &brand, nil
}

func (r *MongoBrandRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	updates["updatedAt"] = time.Now().UTC()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("update brand: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBrandRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// BannerRepository defines read access for storefront banners.
type BannerRepository interface {
	FindAll(ctx context.Context) ([]models.Banner, error)
}

// MongoBannerRepository implements BannerRepository on the banners
// collection.
type MongoBannerRepository struct {
	collection *mongo.Collection
}

// NewMongoBannerRepository creates a banner repository.
func NewMongoBannerRepository(db *mongo.Database) *MongoBannerRepository {
	return &MongoBannerRepository{collection: db.Collection("banners")}
}

func (r *MongoBannerRepository) FindAll(ctx context.Context) ([]models.Banner, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find banners: %w", err)
	}
	defer cursor.Close(ctx)

	var banners []models.Banner
	if err := cursor.All(ctx, &banners); err != nil {
		return nil, fmt.Errorf("decode banners: %w", err)
	}
	return banners, nil
}
