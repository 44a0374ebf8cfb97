package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tajer/shop-finance-api/internal/api/metrics"
	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// ReportHandler handles report generation and reads.
type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type createReportRequest struct {
	ReportType string    `json:"report_type" validate:"required,oneof=profit_loss sales_by_product expenses_by_category"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
}

// Create generates a report over the requested period and persists it as an
// immutable snapshot.
//
// @Summary      Generate a report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReportRequest  true  "Report request"
// @Success      201   {object}  domain.Report
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/reports [post]
func (h *ReportHandler) Create(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	report, err := h.reports.Create(c.Request().Context(), auth, ports.CreateReportInput{
		ReportType: domain.ReportType(req.ReportType),
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		return err
	}

	metrics.ReportsGeneratedTotal.WithLabelValues(req.ReportType).Inc()
	return c.JSON(http.StatusCreated, report)
}

// Get returns one report snapshot.
//
// @Summary      Get a report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Report id"
// @Success      200  {object}  domain.Report
// @Failure      404  {object}  map[string]string
// @Router       /api/reports/{id} [get]
func (h *ReportHandler) Get(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	report, err := h.reports.Get(c.Request().Context(), c.Param("id"), auth.ShopID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// List returns the shop's report snapshots, newest first.
//
// @Summary      List reports
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        type  query     string  false  "Report type filter"
// @Param        from  query     string  false  "Generated-at lower bound (RFC3339 or YYYY-MM-DD)"
// @Param        to    query     string  false  "Generated-at upper bound (RFC3339 or YYYY-MM-DD)"
// @Success      200   {array}   domain.Report
// @Router       /api/reports [get]
func (h *ReportHandler) List(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	reports, err := h.reports.List(c.Request().Context(), ports.ReportFilter{
		ShopID:        auth.ShopID,
		ReportType:    c.QueryParam("type"),
		GeneratedFrom: timeQueryParam(c, "from"),
		GeneratedTo:   timeQueryParam(c, "to"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}
