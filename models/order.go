package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses used by the branch-admin customer view.
const OrderStatusPlaced = "Order Placed"

// OrderItem is one product line inside an order.
type OrderItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Price    float64            `bson:"price" json:"price"`
}

// Order is a customer order. Checkout itself is out of scope; orders are read
// by the branch-admin customer detail view.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Items     []OrderItem        `bson:"items" json:"items"`
	Status    string             `bson:"status" json:"status"`
	OrderDate time.Time          `bson:"orderDate" json:"orderDate"`
}
