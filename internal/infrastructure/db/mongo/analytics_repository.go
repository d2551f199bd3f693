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

// revenueStatuses are the order states that count toward revenue. Pending
// and cancelled orders never do.
var revenueStatuses = bson.A{domain.OrderShipped, domain.OrderDelivered}

// AnalyticsRepository runs the aggregate queries behind the admin dashboard
// and the CSV reports.
type AnalyticsRepository struct {
	orders    *mongo.Collection
	customers *mongo.Collection
	products  *mongo.Collection
	projects  *mongo.Collection
	inquiries *mongo.Collection
}

func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{
		orders:    db.Collection(orderCollection),
		customers: db.Collection(customerCollection),
		products:  db.Collection(productCollection),
		projects:  db.Collection(projectCollection),
		inquiries: db.Collection(inquiryCollection),
	}
}

func inRange(r ports.DateRange) bson.M {
	return bson.M{"created_at": bson.M{"$gte": r.Start, "$lte": r.End}}
}

func (a *AnalyticsRepository) Summary(ctx context.Context, r ports.DateRange) (*ports.AnalyticsSummary, error) {
	s := &ports.AnalyticsSummary{}
	var err error

	if s.TotalOrders, err = a.orders.CountDocuments(ctx, inRange(r)); err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	if s.TotalCustomers, err = a.customers.CountDocuments(ctx, inRange(r)); err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}
	if s.TotalProducts, err = a.products.CountDocuments(ctx, bson.M{"is_active": true}); err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	if s.TotalProjects, err = a.projects.CountDocuments(ctx, inRange(r)); err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	if s.TotalInquiries, err = a.inquiries.CountDocuments(ctx, inRange(r)); err != nil {
		return nil, fmt.Errorf("count inquiries: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"created_at": bson.M{"$gte": r.Start, "$lte": r.End},
			"status":     bson.M{"$in": revenueStatuses},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"revenue": bson.M{"$sum": "$total_amount"},
		}}},
	}
	cursor, err := a.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode revenue: %w", err)
	}
	if len(rows) > 0 {
		s.TotalRevenue = rows[0].Revenue
	}
	return s, nil
}

func (a *AnalyticsRepository) OrderStatusCounts(ctx context.Context, r ports.DateRange) ([]ports.StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: inRange(r)}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}
	cursor, err := a.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate order statuses: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status domain.OrderStatus `bson:"_id"`
		Count  int64              `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode order statuses: %w", err)
	}

	counts := make([]ports.StatusCount, len(rows))
	for i, row := range rows {
		counts[i] = ports.StatusCount{Status: row.Status, Count: row.Count}
	}
	return counts, nil
}

func (a *AnalyticsRepository) TopProducts(ctx context.Context, r ports.DateRange, limit int) ([]ports.ProductSales, error) {
	if limit <= 0 {
		limit = 10
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"created_at": bson.M{"$gte": r.Start, "$lte": r.End},
			"status":     bson.M{"$in": revenueStatuses},
		}}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$items.product_id",
			"product_name": bson.M{"$first": "$items.product_name"},
			"price":        bson.M{"$first": "$items.price"},
			"units_sold":   bson.M{"$sum": "$items.quantity"},
			"revenue":      bson.M{"$sum": bson.M{"$multiply": bson.A{"$items.quantity", "$items.price"}}},
			"order_count":  bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"revenue": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cursor, err := a.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate top products: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ProductID   string  `bson:"_id"`
		ProductName string  `bson:"product_name"`
		Price       float64 `bson:"price"`
		UnitsSold   int64   `bson:"units_sold"`
		Revenue     float64 `bson:"revenue"`
		OrderCount  int64   `bson:"order_count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode top products: %w", err)
	}

	sales := make([]ports.ProductSales, len(rows))
	for i, row := range rows {
		sales[i] = ports.ProductSales{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			Price:        row.Price,
			UnitsSold:    row.UnitsSold,
			TotalRevenue: row.Revenue,
			OrderCount:   row.OrderCount,
		}
		// Category comes from the live product record when it still exists.
		var p domain.Product
		if err := a.products.FindOne(ctx, bson.M{"_id": row.ProductID}).Decode(&p); err == nil && p.CategoryID != "" {
			var c domain.Category
			if err := a.products.Database().Collection(categoryCollection).
				FindOne(ctx, bson.M{"_id": p.CategoryID}).Decode(&c); err == nil {
				sales[i].CategoryName = c.Name
			}
		}
	}
	return sales, nil
}

func (a *AnalyticsRepository) RecentOrders(ctx context.Context, r ports.DateRange, limit int) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = 10
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	return a.findOrders(ctx, inRange(r), opts)
}

func (a *AnalyticsRepository) RevenueOrders(ctx context.Context, r ports.DateRange) ([]*domain.Order, error) {
	query := bson.M{
		"created_at": bson.M{"$gte": r.Start, "$lte": r.End},
		"status":     bson.M{"$in": revenueStatuses},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	return a.findOrders(ctx, query, opts)
}

func (a *AnalyticsRepository) findOrders(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*domain.Order, error) {
	cursor, err := a.orders.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []*domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	for _, o := range orders {
		if o.CustomerID == "" {
			continue
		}
		var c domain.Customer
		if err := a.customers.FindOne(ctx, bson.M{"_id": o.CustomerID}).Decode(&c); err == nil {
			o.Customer = &c
		}
	}
	return orders, nil
}

func (a *AnalyticsRepository) CustomersInRange(ctx context.Context, r ports.DateRange) ([]*domain.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := a.customers.Find(ctx, inRange(r), opts)
	if err != nil {
		return nil, fmt.Errorf("find customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []*domain.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	for _, c := range customers {
		if c.OrderCount, err = a.orders.CountDocuments(ctx, bson.M{"customer_id": c.ID}); err != nil {
			return nil, fmt.Errorf("count customer orders: %w", err)
		}
		if c.InquiryCount, err = a.inquiries.CountDocuments(ctx, bson.M{"customer_id": c.ID}); err != nil {
			return nil, fmt.Errorf("count customer inquiries: %w", err)
		}
	}
	return customers, nil
}

func (a *AnalyticsRepository) ProjectsInRange(ctx context.Context, r ports.DateRange) ([]*domain.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := a.projects.Find(ctx, inRange(r), opts)
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []*domain.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	for _, p := range projects {
		if p.CustomerID == "" {
			continue
		}
		var c domain.Customer
		if err := a.customers.FindOne(ctx, bson.M{"_id": p.CustomerID}).Decode(&c); err == nil {
			p.Customer = &c
		}
	}
	return projects, nil
}

func (a *AnalyticsRepository) InquiriesInRange(ctx context.Context, r ports.DateRange) ([]*domain.ContactInquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := a.inquiries.Find(ctx, inRange(r), opts)
	if err != nil {
		return nil, fmt.Errorf("find inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	var inquiries []*domain.ContactInquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("decode inquiries: %w", err)
	}
	return inquiries, nil
}
