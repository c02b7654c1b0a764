package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hackinsight-team/hackinsight/errors"
	feedbackdto "github.com/hackinsight-team/hackinsight/internal/adapter/dto/feedback"
	"github.com/hackinsight-team/hackinsight/internal/domain/entities"
	"github.com/hackinsight-team/hackinsight/internal/infrastructure/store"
	feedbackUsecase "github.com/hackinsight-team/hackinsight/internal/usecase/feedback"
)

// defaultTopK matches the dashboard's default word ranking depth
const defaultTopK = 15

// Feedback handles the per-domain feedback analysis endpoint
type Feedback struct {
	feedback *feedbackUsecase.Service
	store    *store.DatasetStore
	logger   *zap.Logger
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedback *feedbackUsecase.Service, st *store.DatasetStore, logger *zap.Logger) *Feedback {
	return &Feedback{
		feedback: feedback,
		store:    st,
		logger:   logger,
	}
}

// Analyze handles POST /v1/datasets/:id/feedback. One report per selected
// domain; selecting several domains adds a combined word ranking.
func (h *Feedback) Analyze(c echo.Context) error {
	sessionID := c.Param("id")
	ds, ok := h.store.Get(sessionID)
	if !ok {
		return HandleError(h.logger, c, errors.ErrDatasetNotFound(sessionID))
	}

	var req feedbackdto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation(err.Error()))
	}

	topK := req.TopK
	if topK == 0 {
		topK = defaultTopK
	}

	reports := make([]entities.DomainFeedbackReport, 0, len(req.Domains))
	for _, domain := range req.Domains {
		report, err := h.feedback.DomainReport(ds, domain, topK)
		if err != nil {
			return HandleError(h.logger, c, err)
		}
		reports = append(reports, *report)
	}

	resp := feedbackdto.AnalyzeResponse{Reports: reports}
	if len(req.Domains) > 1 {
		combined, err := h.feedback.CombinedTopWords(ds, req.Domains, topK)
		if err != nil {
			return HandleError(h.logger, c, err)
		}
		resp.CombinedTopWords = combined
	}

	return HandleSuccess(h.logger, c, resp)
}
