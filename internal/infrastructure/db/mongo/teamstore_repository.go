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

const teamStoreCollection = "team_stores"

type TeamStoreRepository struct {
	coll      *mongo.Collection
	inquiries *mongo.Collection
}

func NewTeamStoreRepository(db *mongo.Database) *TeamStoreRepository {
	return &TeamStoreRepository{
		coll:      db.Collection(teamStoreCollection),
		inquiries: db.Collection(inquiryCollection),
	}
}

func (r *TeamStoreRepository) Create(ctx context.Context, s *domain.TeamStore) (*domain.TeamStore, error) {
	if s.ID == "" {
		s.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("insert team store: %w", err)
	}
	return s, nil
}

func (r *TeamStoreRepository) FindByID(ctx context.Context, id string) (*domain.TeamStore, error) {
	var s domain.TeamStore
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTeamStoreNotFound
		}
		return nil, fmt.Errorf("find team store: %w", err)
	}
	return &s, nil
}

func (r *TeamStoreRepository) FindBySlug(ctx context.Context, slug string) (*domain.TeamStore, error) {
	var s domain.TeamStore
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTeamStoreNotFound
		}
		return nil, fmt.Errorf("find team store: %w", err)
	}
	return &s, nil
}

func (r *TeamStoreRepository) List(ctx context.Context, filter ports.TeamStoreFilter, page ports.Page) ([]*domain.TeamStore, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count team stores: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Offset()).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list team stores: %w", err)
	}
	defer cursor.Close(ctx)

	var stores []*domain.TeamStore
	if err := cursor.All(ctx, &stores); err != nil {
		return nil, 0, fmt.Errorf("decode team stores: %w", err)
	}

	for _, s := range stores {
		if s.InquiryCount, err = r.inquiries.CountDocuments(ctx, bson.M{"team_store_id": s.ID}); err != nil {
			return nil, 0, fmt.Errorf("count store inquiries: %w", err)
		}
	}
	return stores, total, nil
}

func (r *TeamStoreRepository) Update(ctx context.Context, s *domain.TeamStore) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("update team store: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTeamStoreNotFound
	}
	return nil
}
