package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/burningbushdesign/storefront-api/internal/api/metrics"
	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

const (
	topProductsLimit  = 5
	recentOrdersLimit = 10
)

// AnalyticsService implements the admin dashboard aggregation and CSV
// report export.
type AnalyticsService struct {
	repo ports.AnalyticsRepository
}

func NewAnalyticsService(repo ports.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

func (s *AnalyticsService) Overview(ctx context.Context, r ports.DateRange) (*ports.AnalyticsOverview, error) {
	summary, err := s.repo.Summary(ctx, r)
	if err != nil {
		return nil, err
	}
	statusCounts, err := s.repo.OrderStatusCounts(ctx, r)
	if err != nil {
		return nil, err
	}
	topProducts, err := s.repo.TopProducts(ctx, r, topProductsLimit)
	if err != nil {
		return nil, err
	}
	recentOrders, err := s.repo.RecentOrders(ctx, r, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	return &ports.AnalyticsOverview{
		Summary:           summary,
		OrderStatusCounts: statusCounts,
		TopProducts:       topProducts,
		RecentOrders:      recentOrders,
	}, nil
}

// Export builds a CSV report over the date range. The filename embeds the
// range so downloads are self-describing.
func (s *AnalyticsService) Export(ctx context.Context, reportType ports.ReportType, r ports.DateRange) (*ports.Report, error) {
	var (
		header []string
		rows   [][]string
		name   string
		err    error
	)

	switch reportType {
	case ports.ReportRevenue:
		name = "revenue_report"
		header = []string{"Order ID", "Customer Name", "Customer Email", "Date", "Items", "Total", "Payment Status"}
		rows, err = s.revenueRows(ctx, r)
	case ports.ReportCustomers:
		name = "customer_report"
		header = []string{"Customer ID", "First Name", "Last Name", "Email", "Phone", "Company", "Registration Date", "Total Orders", "Total Inquiries"}
		rows, err = s.customerRows(ctx, r)
	case ports.ReportProducts:
		name = "product_sales_report"
		header = []string{"Product ID", "Product Name", "Category", "Price", "Units Sold", "Total Revenue", "Order Count"}
		rows, err = s.productRows(ctx, r)
	case ports.ReportProjects:
		name = "project_report"
		header = []string{"Project ID", "Project Name", "Customer Name", "Customer Email", "Status", "Priority", "Category", "Budget", "Deadline", "Created Date"}
		rows, err = s.projectRows(ctx, r)
	case ports.ReportInquiries:
		name = "inquiry_report"
		header = []string{"Inquiry ID", "Customer Name", "Customer Email", "Project Type", "Status", "Priority", "Follow Up Date", "Created Date"}
		rows, err = s.inquiryRows(ctx, r)
	default:
		return nil, fmt.Errorf("%w: %q", ports.ErrUnknownReportType, reportType)
	}
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}

	metrics.ReportsGeneratedTotal.WithLabelValues(string(reportType)).Inc()

	start, end := r.Start.Format("2006-01-02"), r.End.Format("2006-01-02")
	return &ports.Report{
		Filename: fmt.Sprintf("%s_%s_to_%s.csv", name, start, end),
		CSV:      buf.Bytes(),
	}, nil
}

func (s *AnalyticsService) revenueRows(ctx context.Context, r ports.DateRange) ([][]string, error) {
	orders, err := s.repo.RevenueOrders(ctx, r)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		var items bytes.Buffer
		for i, item := range o.Items {
			if i > 0 {
				items.WriteString("; ")
			}
			fmt.Fprintf(&items, "%s (%dx)", item.ProductName, item.Quantity)
		}
		rows = append(rows, []string{
			o.ID,
			customerName(o.Customer),
			customerEmail(o.Customer),
			o.CreatedAt.Format("2006-01-02"),
			items.String(),
			formatAmount(o.TotalAmount),
			o.PaymentStatus,
		})
	}
	return rows, nil
}

func (s *AnalyticsService) customerRows(ctx context.Context, r ports.DateRange) ([][]string, error) {
	customers, err := s.repo.CustomersInRange(ctx, r)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			c.ID,
			c.FirstName,
			c.LastName,
			c.Email,
			c.Phone,
			c.Company,
			c.CreatedAt.Format("2006-01-02"),
			strconv.FormatInt(c.OrderCount, 10),
			strconv.FormatInt(c.InquiryCount, 10),
		})
	}
	return rows, nil
}

func (s *AnalyticsService) productRows(ctx context.Context, r ports.DateRange) ([][]string, error) {
	sales, err := s.repo.TopProducts(ctx, r, 0) // 0 = no limit
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(sales))
	for _, p := range sales {
		category := p.CategoryName
		if category == "" {
			category = "Uncategorized"
		}
		rows = append(rows, []string{
			p.ProductID,
			p.ProductName,
			category,
			formatAmount(p.Price),
			strconv.FormatInt(p.UnitsSold, 10),
			formatAmount(p.TotalRevenue),
			strconv.FormatInt(p.OrderCount, 10),
		})
	}
	return rows, nil
}

func (s *AnalyticsService) projectRows(ctx context.Context, r ports.DateRange) ([][]string, error) {
	projects, err := s.repo.ProjectsInRange(ctx, r)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		deadline := "Not set"
		if p.DueDate != nil {
			deadline = p.DueDate.Format("2006-01-02")
		}
		rows = append(rows, []string{
			p.ID,
			p.Title,
			customerName(p.Customer),
			customerEmail(p.Customer),
			string(p.Status),
			string(p.Priority),
			p.ProjectType,
			formatAmount(p.Budget),
			deadline,
			p.CreatedAt.Format("2006-01-02"),
		})
	}
	return rows, nil
}

func (s *AnalyticsService) inquiryRows(ctx context.Context, r ports.DateRange) ([][]string, error) {
	inquiries, err := s.repo.InquiriesInRange(ctx, r)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(inquiries))
	for _, i := range inquiries {
		projectType := i.ProjectType
		if projectType == "" {
			projectType = "Not specified"
		}
		followUp := "Not set"
		if i.FollowUpDate != nil {
			followUp = i.FollowUpDate.Format("2006-01-02")
		}
		email := i.Email
		if i.Customer != nil {
			email = i.Customer.Email
		}
		rows = append(rows, []string{
			i.ID,
			customerName(i.Customer),
			email,
			projectType,
			string(i.Status),
			string(i.Priority),
			followUp,
			i.CreatedAt.Format("2006-01-02"),
		})
	}
	return rows, nil
}

func customerName(c *domain.Customer) string {
	if c == nil {
		return "No Customer"
	}
	return c.FirstName + " " + c.LastName
}

func customerEmail(c *domain.Customer) string {
	if c == nil {
		return ""
	}
	return c.Email
}

func formatAmount(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}
