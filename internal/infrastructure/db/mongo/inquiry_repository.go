package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

const inquiryCollection = "inquiries"

type InquiryRepository struct {
	coll      *mongo.Collection
	projects  *mongo.Collection
	customers *mongo.Collection
	client    *mongo.Client
}

func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{
		coll:      db.Collection(inquiryCollection),
		projects:  db.Collection(projectCollection),
		customers: db.Collection(customerCollection),
		client:    db.Client(),
	}
}

func (r *InquiryRepository) Create(ctx context.Context, i *domain.ContactInquiry) (*domain.ContactInquiry, error) {
	if i.ID == "" {
		i.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, i); err != nil {
		return nil, fmt.Errorf("insert inquiry: %w", err)
	}
	return i, nil
}

func (r *InquiryRepository) FindByID(ctx context.Context, id string) (*domain.ContactInquiry, error) {
	var i domain.ContactInquiry
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&i); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("find inquiry: %w", err)
	}
	r.attachCustomer(ctx, &i)
	return &i, nil
}

func (r *InquiryRepository) List(ctx context.Context, filter ports.InquiryFilter, page ports.Page) ([]*domain.ContactInquiry, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	if filter.TeamStoreID != "" {
		query["team_store_id"] = filter.TeamStoreID
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count inquiries: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Offset()).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	var inquiries []*domain.ContactInquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, 0, fmt.Errorf("decode inquiries: %w", err)
	}
	for _, i := range inquiries {
		r.attachCustomer(ctx, i)
	}
	return inquiries, total, nil
}

func (r *InquiryRepository) Update(ctx context.Context, i *domain.ContactInquiry) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": i.ID}, i)
	if err != nil {
		return fmt.Errorf("update inquiry: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrInquiryNotFound
	}
	return nil
}

// ConvertToProject inserts the project and flips the inquiry to CONVERTED in
// one transaction. The status filter on the update makes the conversion a
// compare-and-swap: a concurrent convert loses and rolls back.
func (r *InquiryRepository) ConvertToProject(ctx context.Context, inquiryID string, p *domain.Project) (*domain.Project, error) {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}

	session, err := r.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		res, err := r.coll.UpdateOne(sc,
			bson.M{"_id": inquiryID, "status": bson.M{"$ne": domain.InquiryConverted}},
			bson.M{"$set": bson.M{"status": domain.InquiryConverted, "updated_at": time.Now().UTC()}},
		)
		if err != nil {
			return nil, fmt.Errorf("mark inquiry converted: %w", err)
		}
		if res.MatchedCount == 0 {
			// Either the inquiry is gone or someone converted it first.
			n, err := r.coll.CountDocuments(sc, bson.M{"_id": inquiryID})
			if err != nil {
				return nil, err
			}
			if n == 0 {
				return nil, domain.ErrInquiryNotFound
			}
			return nil, domain.ErrInquiryAlreadyConverted
		}

		if _, err := r.projects.InsertOne(sc, p); err != nil {
			return nil, fmt.Errorf("insert project: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *InquiryRepository) attachCustomer(ctx context.Context, i *domain.ContactInquiry) {
	if i.CustomerID == "" {
		return
	}
	var c domain.Customer
	if err := r.customers.FindOne(ctx, bson.M{"_id": i.CustomerID}).Decode(&c); err == nil {
		i.Customer = &c
	}
}
