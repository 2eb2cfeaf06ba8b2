package repository

import (
	"context"
	"fmt"

	"ecommerce-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepository defines read access to customer orders.
type OrderRepository interface {
	FindPlacedByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
}

// MongoOrderRepository implements OrderRepository on the orders collection.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates an order repository.
func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{collection: db.Collection("orders")}
}

// FindPlacedByUser lists a customer's orders in "Order Placed" status,
// newest first.
func (r *MongoOrderRepository) FindPlacedByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	filter := bson.M{"user": userID, "status": models.OrderStatusPlaced}
	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}
