package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/burningbushdesign/storefront-api/internal/core/ports"
)

// AnalyticsHandler serves the admin dashboard aggregates and CSV exports.
type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// dateRangeFromQuery reads ?start= and ?end= (YYYY-MM-DD). Defaults to the
// trailing 30 days; end is pushed to the end of its day so the range is
// inclusive.
func dateRangeFromQuery(c echo.Context) (ports.DateRange, error) {
	now := time.Now().UTC()
	r := ports.DateRange{Start: now.AddDate(0, 0, -30), End: now}

	if s := c.QueryParam("start"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return ports.DateRange{}, fmt.Errorf("invalid start date %q", s)
		}
		r.Start = t
	}
	if s := c.QueryParam("end"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return ports.DateRange{}, fmt.Errorf("invalid end date %q", s)
		}
		r.End = t.Add(24*time.Hour - time.Nanosecond)
	}
	return r, nil
}

// Overview handles GET /admin/analytics.
//
// @Summary      Dashboard overview
// @Tags         admin
// @Produce      json
// @Param        start  query  string  false  "Range start (YYYY-MM-DD)"
// @Param        end    query  string  false  "Range end (YYYY-MM-DD)"
// @Success      200  {object}  ports.AnalyticsOverview
// @Router       /admin/analytics [get]
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	r, err := dateRangeFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	overview, err := h.service.Overview(c.Request().Context(), r)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// Export handles GET /admin/reports/:type, streaming a CSV attachment.
func (h *AnalyticsHandler) Export(c echo.Context) error {
	r, err := dateRangeFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	reportType := ports.ReportType(c.Param("type"))
	report, err := h.service.Export(c.Request().Context(), reportType, r)
	if err != nil {
		if errors.Is(err, ports.ErrUnknownReportType) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.Filename))
	return c.Blob(http.StatusOK, "text/csv", report.CSV)
}
