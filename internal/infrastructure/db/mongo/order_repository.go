package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

const orderCollection = "orders"

type OrderRepository struct {
	coll      *mongo.Collection
	customers *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		coll:      db.Collection(orderCollection),
		customers: db.Collection(customerCollection),
	}
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	r.attachCustomer(ctx, &o)
	return &o, nil
}

func (r *OrderRepository) List(ctx context.Context, filter ports.OrderFilter, page ports.Page) ([]*domain.Order, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		query["items.product_name"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Offset()).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []*domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, fmt.Errorf("decode orders: %w", err)
	}
	for _, o := range orders {
		r.attachCustomer(ctx, o)
	}
	return orders, total, nil
}

func (r *OrderRepository) Update(ctx context.Context, o *domain.Order) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": o.ID}, o)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// attachCustomer denormalises the customer onto the order for admin views.
// A missing customer is not an error; the order still stands.
func (r *OrderRepository) attachCustomer(ctx context.Context, o *domain.Order) {
	if o.CustomerID == "" {
		return
	}
	var c domain.Customer
	if err := r.customers.FindOne(ctx, bson.M{"_id": o.CustomerID}).Decode(&c); err == nil {
		o.Customer = &c
	}
}
