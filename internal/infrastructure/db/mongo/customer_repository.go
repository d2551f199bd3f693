package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

const customerCollection = "customers"

type CustomerRepository struct {
	coll      *mongo.Collection
	orders    *mongo.Collection
	inquiries *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{
		coll:      db.Collection(customerCollection),
		orders:    db.Collection(orderCollection),
		inquiries: db.Collection(inquiryCollection),
	}
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &c, nil
}

// FindOrCreateByEmail upserts the customer keyed on email. Existing records
// only gain fields they are missing; a contact form never overwrites data an
// order already captured.
func (r *CustomerRepository) FindOrCreateByEmail(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	existing, err := r.FindByEmail(ctx, c.Email)
	if err == nil {
		return existing, nil
	}
	if err != domain.ErrCustomerNotFound {
		return nil, err
	}

	c.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost a race with a concurrent submission; the winner's
			// record is just as good.
			return r.FindByEmail(ctx, c.Email)
		}
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepository) List(ctx context.Context, filter ports.CustomerFilter, page ports.Page) ([]*domain.Customer, int64, error) {
	query := bson.M{}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"email": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"first_name": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"last_name": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"company": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	sortField := "created_at"
	switch filter.SortBy {
	case "email", "first_name", "last_name":
		sortField = filter.SortBy
	}
	sortDir := -1
	if filter.SortOrder == "asc" {
		sortDir = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: sortDir}}).
		SetSkip(page.Offset()).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []*domain.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, 0, fmt.Errorf("decode customers: %w", err)
	}

	for _, c := range customers {
		if c.OrderCount, err = r.orders.CountDocuments(ctx, bson.M{"customer_id": c.ID}); err != nil {
			return nil, 0, fmt.Errorf("count customer orders: %w", err)
		}
		if c.InquiryCount, err = r.inquiries.CountDocuments(ctx, bson.M{"customer_id": c.ID}); err != nil {
			return nil, 0, fmt.Errorf("count customer inquiries: %w", err)
		}
	}
	return customers, total, nil
}
