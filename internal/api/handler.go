package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/salesreport/internal/domain/dto"
	"github.com/guttosm/salesreport/internal/middleware"
	"github.com/guttosm/salesreport/internal/report"
	"github.com/guttosm/salesreport/internal/service"
)

// Handler serves the sellers and products reports as JSON.
//
// Responsibilities:
//   - Validate query parameters
//   - Run one aggregation pass through the ReportService per request
//   - Render the result with the same ordering and formatting as the report files
type Handler struct {
	svc service.ReportService
}

// NewHandler constructs a Handler backed by svc.
func NewHandler(svc service.ReportService) *Handler {
	return &Handler{svc: svc}
}

// parseLimit reads the optional "limit" query parameter. 0 means no limit.
func parseLimit(c *gin.Context) (int, bool) {
	s := c.Query("limit")
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		middleware.AbortWithError(c, http.StatusBadRequest, "limit must be a positive integer", err)
		return 0, false
	}
	return n, true
}

func truncate[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

// GetSellersReport handles GET /api/v1/reports/sellers.
//
// Query Parameters:
//   - limit (int, optional): return only the first N rows.
//
// Responses:
//   - 200 OK: SellersReportResponse, rows sorted by total sales descending.
//   - 400 Bad Request: invalid limit.
//   - 500 Internal Server Error: reference files missing or unreadable.
func (h *Handler) GetSellersReport(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	res, err := h.svc.Build(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to build report", err)
		return
	}

	c.JSON(http.StatusOK, dto.SellersReportResponse{
		Rows:  truncate(report.SellerRows(res.Sellers), limit),
		Stats: dto.NewRunStats(res),
	})
}

// GetProductsReport handles GET /api/v1/reports/products.
//
// Query Parameters:
//   - limit (int, optional): return only the first N rows.
//
// Responses:
//   - 200 OK: ProductsReportResponse, sold product names by quantity descending.
//   - 400 Bad Request: invalid limit.
//   - 500 Internal Server Error: reference files missing or unreadable.
func (h *Handler) GetProductsReport(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	res, err := h.svc.Build(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to build report", err)
		return
	}

	c.JSON(http.StatusOK, dto.ProductsReportResponse{
		Rows:  truncate(report.ProductRows(res.Summaries), limit),
		Stats: dto.NewRunStats(res),
	})
}
