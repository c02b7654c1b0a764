package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hackinsight-team/hackinsight/errors"
	analyticsdto "github.com/hackinsight-team/hackinsight/internal/adapter/dto/analytics"
	"github.com/hackinsight-team/hackinsight/internal/infrastructure/store"
	analyticsUsecase "github.com/hackinsight-team/hackinsight/internal/usecase/analytics"
	datasetUsecase "github.com/hackinsight-team/hackinsight/internal/usecase/dataset"
)

// Analytics handles the stats bundle endpoint
type Analytics struct {
	datasets  *datasetUsecase.Service
	analytics *analyticsUsecase.Service
	store     *store.DatasetStore
	logger    *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(datasets *datasetUsecase.Service, analytics *analyticsUsecase.Service, st *store.DatasetStore, logger *zap.Logger) *Analytics {
	return &Analytics{
		datasets:  datasets,
		analytics: analytics,
		store:     st,
		logger:    logger,
	}
}

// Report handles POST /v1/datasets/:id/analytics. The body narrows the
// dataset first; zero matching rows is a 422, not an empty report.
func (h *Analytics) Report(c echo.Context) error {
	sessionID := c.Param("id")
	ds, ok := h.store.Get(sessionID)
	if !ok {
		return HandleError(h.logger, c, errors.ErrDatasetNotFound(sessionID))
	}

	var req analyticsdto.ReportRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation(err.Error()))
	}

	filtered, err := h.datasets.Filter(ds, datasetUsecase.FilterInput{
		Domains:  req.Domains,
		Regions:  req.Regions,
		Colleges: req.Colleges,
		Days:     req.Days,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	report, err := h.analytics.Report(filtered)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, analyticsdto.ReportResponse{
		FilteredCount: filtered.Len(),
		Report:        report,
	})
}
