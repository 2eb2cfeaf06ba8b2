package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"ecommerce-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductSearch holds the admin product listing parameters.
type ProductSearch struct {
	Search    string
	SortOrder string // "asc", "desc" or empty
	Page      int
	Limit     int
}

// ProductRepository defines data access for products, including the central
// stock ledger operations.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	NextProductCode(ctx context.Context) (string, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Search(ctx context.Context, p ProductSearch) ([]models.Product, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error

	// Stock ledger
	AllocationView(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	AvailableQuantity(ctx context.Context, id primitive.ObjectID) (int, error)
	IncrementQuantity(ctx context.Context, id primitive.ObjectID, amount int) (int, error)
	DecrementQuantity(ctx context.Context, id primitive.ObjectID, amount int) (int, error)

	// Customer catalog
	FindByBrand(ctx context.Context, brand string) ([]models.Product, error)
	FindByBrandPaginated(ctx context.Context, brand string, page, limit int) ([]models.Product, int64, error)
	FindSimilar(ctx context.Context, exclude primitive.ObjectID, filter bson.M, page, limit int) ([]models.Product, int64, error)
}

// MongoProductRepository implements ProductRepository on the products
// collection.
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a product repository.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{collection: db.Collection("products")}
}

func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	res, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

var productCodePattern = regexp.MustCompile(`^PR\d{4}$`)

// NextProductCode derives the next sequential PR#### code from the highest
// existing one.
func (r *MongoProductRepository) NextProductCode(ctx context.Context) (string, error) {
	filter := bson.M{"productCode": bson.M{"$regex": "^PR\\d{4}$"}}
	opts := options.FindOne().
		SetSort(bson.D{{Key: "productCode", Value: -1}}).
		SetProjection(bson.M{"productCode": 1})

	var last struct {
		ProductCode string `bson:"productCode"`
	}
	err := r.collection.FindOne(ctx, filter, opts).Decode(&last)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "PR0001", nil
		}
		return "", fmt.Errorf("find last product code: %w", err)
	}
	if !productCodePattern.MatchString(last.ProductCode) {
		return "PR0001", nil
	}
	n, err := strconv.Atoi(last.ProductCode[2:])
	if err != nil {
		return "", fmt.Errorf("parse product code %q: %w", last.ProductCode, err)
	}
	return fmt.Sprintf("PR%04d", n+1), nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

// Search lists non-deleted products with case-insensitive matching over
// brand, name and sub-type.
func (r *MongoProductRepository) Search(ctx context.Context, p ProductSearch) ([]models.Product, int64, error) {
	filter := bson.M{
		"isDeleted": false,
		"$or": bson.A{
			bson.M{"brand": bson.M{"$regex": p.Search, "$options": "i"}},
			bson.M{"productName": bson.M{"$regex": p.Search, "$options": "i"}},
			bson.M{"productSubType": bson.M{"$regex": p.Search, "$options": "i"}},
		},
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	opts := options.Find().
		SetProjection(bson.M{"image": 1, "productName": 1, "availableProductQuantity": 1, "isDeleted": 1}).
		SetSkip(int64((p.Page - 1) * p.Limit)).
		SetLimit(int64(p.Limit))
	switch p.SortOrder {
	case "asc":
		opts.SetSort(bson.D{{Key: "productName", Value: 1}})
	case "desc":
		opts.SetSort(bson.D{{Key: "productName", Value: -1}})
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("decode products: %w", err)
	}
	return products, total, nil
}

func (r *MongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	updates["updatedAt"] = time.Now().UTC()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete flags a product as deleted without removing the document.
func (r *MongoProductRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	return r.Update(ctx, id, bson.M{"isDeleted": true})
}

// AllocationView loads only the fields the allocation flow needs.
func (r *MongoProductRepository) AllocationView(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	opts := options.FindOne().SetProjection(bson.M{"productName": 1, "availableProductQuantity": 1})
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

func (r *MongoProductRepository) AvailableQuantity(ctx context.Context, id primitive.ObjectID) (int, error) {
	opts := options.FindOne().SetProjection(bson.M{"availableProductQuantity": 1})
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("find product: %w", err)
	}
	return product.AvailableProductQuantity, nil
}

// IncrementQuantity adds stock back to the central ledger (intake path) and
// returns the new quantity.
func (r *MongoProductRepository) IncrementQuantity(ctx context.Context, id primitive.ObjectID, amount int) (int, error) {
	update := bson.M{
		"$inc": bson.M{"availableProductQuantity": amount},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("increment quantity: %w", err)
	}
	return product.AvailableProductQuantity, nil
}

// DecrementQuantity removes stock from the central ledger. The filter only
// matches while enough stock remains, so concurrent decrements cannot jointly
// overdraw the counter.
func (r *MongoProductRepository) DecrementQuantity(ctx context.Context, id primitive.ObjectID, amount int) (int, error) {
	filter := bson.M{
		"_id":                      id,
		"availableProductQuantity": bson.M{"$gte": amount},
	}
	update := bson.M{
		"$inc": bson.M{"availableProductQuantity": -amount},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&product)
	if err == nil {
		return product.AvailableProductQuantity, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, fmt.Errorf("decrement quantity: %w", err)
	}

	// No match: either the product is gone or the stock is short.
	if _, findErr := r.AvailableQuantity(ctx, id); findErr != nil {
		return 0, findErr
	}
	return 0, ErrInsufficientStock
}

// FindByBrand lists the customer-facing fields of all products of one brand.
func (r *MongoProductRepository) FindByBrand(ctx context.Context, brand string) ([]models.Product, error) {
	filter := bson.M{"isDeleted": false}
	if brand != "" {
		filter["brand"] = brand
	}
	opts := options.Find().SetProjection(bson.M{
		"image": 1, "productName": 1, "price": 1, "quantityInEachPack": 1, "brand": 1,
	})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find products by brand: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// FindByBrandPaginated lists full product documents of one brand, paginated.
func (r *MongoProductRepository) FindByBrandPaginated(ctx context.Context, brand string, page, limit int) ([]models.Product, int64, error) {
	filter := bson.M{"brand": brand, "isDeleted": false}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count products by brand: %w", err)
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find products by brand: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("decode products: %w", err)
	}
	return products, total, nil
}

// FindSimilar lists paginated products matching filter, excluding the product
// the customer is looking at. Used for buy-it-with (same brand) and related
// products (same size).
func (r *MongoProductRepository) FindSimilar(ctx context.Context, exclude primitive.ObjectID, filter bson.M, page, limit int) ([]models.Product, int64, error) {
	full := bson.M{"_id": bson.M{"$ne": exclude}, "isDeleted": false}
	for k, v := range filter {
		full[k] = v
	}

	total, err := r.collection.CountDocuments(ctx, full)
	if err != nil {
		return nil, 0, fmt.Errorf("count similar products: %w", err)
	}

	opts := options.Find().
		SetProjection(bson.M{"image": 1, "productName": 1, "quantityInEachPack": 1, "price": 1, "size": 1}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, full, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find similar products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("decode products: %w", err)
	}
	return products, total, nil
}
