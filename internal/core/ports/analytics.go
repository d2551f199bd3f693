package ports

import (
	"context"
	"errors"
	"time"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
)

// DateRange bounds analytics queries (inclusive on both ends).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// AnalyticsSummary is the dashboard headline block.
type AnalyticsSummary struct {
	TotalOrders    int64   `json:"total_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalCustomers int64   `json:"total_customers"`
	TotalProducts  int64   `json:"total_products"`
	TotalProjects  int64   `json:"total_projects"`
	TotalInquiries int64   `json:"total_inquiries"`
}

// StatusCount is one bucket of the order-status breakdown.
type StatusCount struct {
	Status domain.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

// ProductSales aggregates sold quantity and revenue per product.
type ProductSales struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	CategoryName string  `json:"category_name,omitempty"`
	Price        float64 `json:"price"`
	UnitsSold    int64   `json:"units_sold"`
	TotalRevenue float64 `json:"total_revenue"`
	OrderCount   int64   `json:"order_count"`
}

// AnalyticsRepository exposes the aggregate queries behind the admin
// dashboard and CSV reports. Revenue only counts SHIPPED and DELIVERED
// orders.
type AnalyticsRepository interface {
	Summary(ctx context.Context, r DateRange) (*AnalyticsSummary, error)
	OrderStatusCounts(ctx context.Context, r DateRange) ([]StatusCount, error)
	TopProducts(ctx context.Context, r DateRange, limit int) ([]ProductSales, error)
	RecentOrders(ctx context.Context, r DateRange, limit int) ([]*domain.Order, error)

	// Report row sources.
	RevenueOrders(ctx context.Context, r DateRange) ([]*domain.Order, error)
	CustomersInRange(ctx context.Context, r DateRange) ([]*domain.Customer, error)
	ProjectsInRange(ctx context.Context, r DateRange) ([]*domain.Project, error)
	InquiriesInRange(ctx context.Context, r DateRange) ([]*domain.ContactInquiry, error)
}

// AnalyticsOverview is the full dashboard payload.
type AnalyticsOverview struct {
	Summary           *AnalyticsSummary `json:"summary"`
	OrderStatusCounts []StatusCount     `json:"order_status_counts"`
	TopProducts       []ProductSales    `json:"top_products"`
	RecentOrders      []*domain.Order   `json:"recent_orders"`
}

// ErrUnknownReportType is returned by Export for report types outside the
// known set.
var ErrUnknownReportType = errors.New("unknown report type")

// ReportType selects which CSV report to generate.
type ReportType string

const (
	ReportRevenue   ReportType = "revenue"
	ReportCustomers ReportType = "customers"
	ReportProducts  ReportType = "products"
	ReportProjects  ReportType = "projects"
	ReportInquiries ReportType = "inquiries"
)

// Report is a generated CSV attachment.
type Report struct {
	Filename string
	CSV      []byte
}

// AnalyticsService exposes dashboard aggregation and CSV export.
type AnalyticsService interface {
	Overview(ctx context.Context, r DateRange) (*AnalyticsOverview, error)
	Export(ctx context.Context, reportType ReportType, r DateRange) (*Report, error)
}
