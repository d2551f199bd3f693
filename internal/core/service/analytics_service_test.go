package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/burningbushdesign/storefront-api/internal/core/domain"
	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

type stubAnalyticsRepo struct {
	revenueOrders []*domain.Order
	customers     []*domain.Customer
}

func (s *stubAnalyticsRepo) Summary(_ context.Context, _ ports.DateRange) (*ports.AnalyticsSummary, error) {
	return &ports.AnalyticsSummary{TotalOrders: int64(len(s.revenueOrders))}, nil
}

func (s *stubAnalyticsRepo) OrderStatusCounts(_ context.Context, _ ports.DateRange) ([]ports.StatusCount, error) {
	return []ports.StatusCount{{Status: domain.OrderDelivered, Count: 1}}, nil
}

func (s *stubAnalyticsRepo) TopProducts(_ context.Context, _ ports.DateRange, _ int) ([]ports.ProductSales, error) {
	return nil, nil
}

func (s *stubAnalyticsRepo) RecentOrders(_ context.Context, _ ports.DateRange, _ int) ([]*domain.Order, error) {
	return s.revenueOrders, nil
}

func (s *stubAnalyticsRepo) RevenueOrders(_ context.Context, _ ports.DateRange) ([]*domain.Order, error) {
	return s.revenueOrders, nil
}

func (s *stubAnalyticsRepo) CustomersInRange(_ context.Context, _ ports.DateRange) ([]*domain.Customer, error) {
	return s.customers, nil
}

func (s *stubAnalyticsRepo) ProjectsInRange(_ context.Context, _ ports.DateRange) ([]*domain.Project, error) {
	return nil, nil
}

func (s *stubAnalyticsRepo) InquiriesInRange(_ context.Context, _ ports.DateRange) ([]*domain.ContactInquiry, error) {
	return nil, nil
}

func testRange() ports.DateRange {
	return ports.DateRange{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC),
	}
}

func TestExport_RevenueReport(t *testing.T) {
	repo := &stubAnalyticsRepo{
		revenueOrders: []*domain.Order{
			{
				ID: "o-1",
				Customer: &domain.Customer{
					FirstName: "Sam",
					LastName:  "Lee",
					Email:     "sam@example.com",
				},
				Items: []domain.OrderItem{
					{ProductName: "Custom Cap", Quantity: 3, Price: 25},
					{ProductName: "Club Tee", Quantity: 1, Price: 30},
				},
				TotalAmount:   105,
				PaymentStatus: "paid",
				CreatedAt:     time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
			},
		},
	}
	svc := NewAnalyticsService(repo)

	report, err := svc.Export(context.Background(), ports.ReportRevenue, testRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Filename != "revenue_report_2025-01-01_to_2025-01-31.csv" {
		t.Errorf("filename = %q", report.Filename)
	}

	records, err := csv.NewReader(bytes.NewReader(report.CSV)).ReadAll()
	if err != nil {
		t.Fatalf("report is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("record count = %d, want header + 1 row", len(records))
	}
	if records[0][0] != "Order ID" {
		t.Errorf("header = %v", records[0])
	}
	row := records[1]
	if row[1] != "Sam Lee" || row[2] != "sam@example.com" {
		t.Errorf("customer columns = %q %q", row[1], row[2])
	}
	if row[4] != "Custom Cap (3x); Club Tee (1x)" {
		t.Errorf("items column = %q", row[4])
	}
	if row[5] != "$105.00" {
		t.Errorf("total column = %q", row[5])
	}
}

func TestExport_CustomerReport(t *testing.T) {
	repo := &stubAnalyticsRepo{
		customers: []*domain.Customer{
			{
				ID:           "c-1",
				Email:        "sam@example.com",
				FirstName:    "Sam",
				LastName:     "Lee",
				OrderCount:   4,
				InquiryCount: 2,
				CreatedAt:    time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	svc := NewAnalyticsService(repo)

	report, err := svc.Export(context.Background(), ports.ReportCustomers, testRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(report.CSV)).ReadAll()
	if err != nil {
		t.Fatalf("report is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("record count = %d, want header + 1 row", len(records))
	}
	row := records[1]
	if row[3] != "sam@example.com" || row[7] != "4" || row[8] != "2" {
		t.Errorf("row = %v", row)
	}
}

func TestExport_UnknownReportType(t *testing.T) {
	svc := NewAnalyticsService(&stubAnalyticsRepo{})
	_, err := svc.Export(context.Background(), ports.ReportType("payroll"), testRange())
	if !errors.Is(err, ports.ErrUnknownReportType) {
		t.Fatalf("err = %v, want ErrUnknownReportType", err)
	}
}

func TestOverview_ComposesRepoCalls(t *testing.T) {
	repo := &stubAnalyticsRepo{revenueOrders: []*domain.Order{{ID: "o-1"}}}
	svc := NewAnalyticsService(repo)

	overview, err := svc.Overview(context.Background(), testRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.Summary == nil || overview.Summary.TotalOrders != 1 {
		t.Errorf("summary = %+v", overview.Summary)
	}
	if len(overview.OrderStatusCounts) != 1 {
		t.Errorf("status counts = %v", overview.OrderStatusCounts)
	}
	if len(overview.RecentOrders) != 1 {
		t.Errorf("recent orders = %v", overview.RecentOrders)
	}
}
