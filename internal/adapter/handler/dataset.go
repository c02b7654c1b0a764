package handler

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hackinsight-team/hackinsight/errors"
	datasetdto "github.com/hackinsight-team/hackinsight/internal/adapter/dto/dataset"
	"github.com/hackinsight-team/hackinsight/internal/domain/entities"
	"github.com/hackinsight-team/hackinsight/internal/infrastructure/export"
	"github.com/hackinsight-team/hackinsight/internal/infrastructure/store"
	datasetUsecase "github.com/hackinsight-team/hackinsight/internal/usecase/dataset"
	"github.com/hackinsight-team/hackinsight/pkg/config"
)

// Dataset handles dataset lifecycle requests: generate, upload, preview,
// export. Each session owns one dataset; generate and upload replace it
// wholesale.
type Dataset struct {
	datasets *datasetUsecase.Service
	store    *store.DatasetStore
	codec    *export.CSVCodec
	cfg      *config.Config
	logger   *zap.Logger
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(datasets *datasetUsecase.Service, st *store.DatasetStore, codec *export.CSVCodec, cfg *config.Config, logger *zap.Logger) *Dataset {
	return &Dataset{
		datasets: datasets,
		store:    st,
		codec:    codec,
		cfg:      cfg,
		logger:   logger,
	}
}

// Generate handles POST /v1/datasets
func (h *Dataset) Generate(c echo.Context) error {
	var req datasetdto.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation(err.Error()))
	}

	ds, err := h.datasets.Generate(datasetUsecase.GenerateInput{
		Count:   req.Count,
		Domains: req.Domains,
		Regions: req.Regions,
		Seed:    req.Seed,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	sessionID := h.store.Put(ds)
	h.logger.Info("dataset generated",
		zap.String("session_id", sessionID),
		zap.Int("count", ds.Len()),
		zap.Int64("seed", ds.Seed),
	)

	return HandleSuccess(h.logger, c, datasetdto.GenerateResponse{
		SessionID: sessionID,
		Count:     ds.Len(),
		Seed:      ds.Seed,
		Preview:   h.preview(ds),
	})
}

// Upload handles POST /v1/datasets/upload. A parse failure leaves existing
// sessions untouched; no session is created.
func (h *Dataset) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("missing form file \"file\""))
	}

	src, err := file.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer src.Close()

	ds, err := h.codec.Unmarshal(src)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	sessionID := h.store.Put(ds)
	h.logger.Info("dataset uploaded",
		zap.String("session_id", sessionID),
		zap.String("filename", file.Filename),
		zap.Int("count", ds.Len()),
	)

	return HandleSuccess(h.logger, c, datasetdto.UploadResponse{
		SessionID: sessionID,
		Count:     ds.Len(),
		Preview:   h.preview(ds),
	})
}

// Preview handles GET /v1/datasets/:id
func (h *Dataset) Preview(c echo.Context) error {
	sessionID := c.Param("id")
	ds, ok := h.store.Get(sessionID)
	if !ok {
		return HandleError(h.logger, c, errors.ErrDatasetNotFound(sessionID))
	}

	return HandleSuccess(h.logger, c, datasetdto.PreviewResponse{
		SessionID: sessionID,
		Count:     ds.Len(),
		Domains:   ds.DistinctDomains(),
		Regions:   ds.DistinctRegions(),
		Colleges:  ds.DistinctColleges(),
		Preview:   h.preview(ds),
	})
}

// Export handles GET /v1/datasets/:id/export. The default response is a CSV
// attachment; ?inline=base64 returns a JSON envelope instead. Either way a
// local snapshot copy is written.
func (h *Dataset) Export(c echo.Context) error {
	sessionID := c.Param("id")
	ds, ok := h.store.Get(sessionID)
	if !ok {
		return HandleError(h.logger, c, errors.ErrDatasetNotFound(sessionID))
	}

	data, err := h.codec.Marshal(ds)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrExportFailed(err))
	}

	filename := h.cfg.Export.Filename
	snapshotPath, err := h.codec.Snapshot(data, filename)
	if err != nil {
		// The download still succeeds when the local copy cannot be written
		h.logger.Warn("export snapshot failed", zap.String("session_id", sessionID), zap.Error(err))
		snapshotPath = ""
	}

	if c.QueryParam("inline") == "base64" {
		return HandleSuccess(h.logger, c, datasetdto.ExportInlineResponse{
			Filename:      filename,
			ContentType:   "text/csv",
			ContentBase64: base64.StdEncoding.EncodeToString(data),
			SnapshotPath:  snapshotPath,
		})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv", data)
}

// preview returns the first configured number of rows
func (h *Dataset) preview(ds *entities.Dataset) []entities.Participant {
	n := h.cfg.Dataset.PreviewRows
	if n < 0 {
		n = 0
	}
	if n > ds.Len() {
		n = ds.Len()
	}
	return ds.Participants[:n]
}
