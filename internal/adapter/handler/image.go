package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hackinsight-team/hackinsight/errors"
	imagedto "github.com/hackinsight-team/hackinsight/internal/adapter/dto/image"
	imagingUsecase "github.com/hackinsight-team/hackinsight/internal/usecase/imaging"
	"github.com/hackinsight-team/hackinsight/pkg/config"
)

// Image handles the processing playground endpoint
type Image struct {
	imaging *imagingUsecase.Service
	cfg     *config.Config
	logger  *zap.Logger
}

// NewImageHandler creates a new image handler
func NewImageHandler(imaging *imagingUsecase.Service, cfg *config.Config, logger *zap.Logger) *Image {
	return &Image{
		imaging: imaging,
		cfg:     cfg,
		logger:  logger,
	}
}

// Process handles POST /v1/images/process. The upload arrives as multipart
// form field "image" alongside the enhancement fields; the response is the
// processed image as PNG regardless of the upload format.
func (h *Image) Process(c echo.Context) error {
	var form imagedto.ProcessForm
	if err := c.Bind(&form); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	applyFormDefaults(c, &form)
	if err := c.Validate(&form); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation(err.Error()))
	}

	opts, err := h.buildOptions(form)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("missing form file \"image\""))
	}
	if file.Size > h.cfg.Image.MaxUploadBytes {
		return HandleError(h.logger, c, errors.ErrImageTooLarge(h.cfg.Image.MaxUploadBytes))
	}

	src, err := file.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer src.Close()

	img, err := h.imaging.Decode(src)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	processed, err := h.imaging.Process(img, opts)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	data, err := h.imaging.EncodePNG(processed)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrImageEncode(err))
	}

	h.logger.Info("image processed",
		zap.String("filter", string(opts.Filter)),
		zap.Int("bytes_out", len(data)),
	)

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="processed_hackathon_image.png"`)
	return c.Blob(http.StatusOK, "image/png", data)
}

// applyFormDefaults fills omitted enhancement fields with the identity
// factor. Presence is decided by the raw form value, so an explicit 0 keeps
// its degenerate meaning (black, gray, grayscale).
func applyFormDefaults(c echo.Context, form *imagedto.ProcessForm) {
	if c.FormValue("brightness") == "" {
		form.Brightness = 1.0
	}
	if c.FormValue("contrast") == "" {
		form.Contrast = 1.0
	}
	if c.FormValue("saturation") == "" {
		form.Saturation = 1.0
	}
	if c.FormValue("text_size") == "" {
		form.TextSize = 30
	}
}

func (h *Image) buildOptions(form imagedto.ProcessForm) (imagingUsecase.Options, error) {
	opts := imagingUsecase.Options{
		Brightness: form.Brightness,
		Contrast:   form.Contrast,
		Saturation: form.Saturation,
		Filter:     imagingUsecase.FilterNone,
	}

	if form.Filter != "" {
		filter, err := imagingUsecase.ParseFilter(form.Filter)
		if err != nil {
			return opts, errors.ErrInvalidFilter(form.Filter)
		}
		opts.Filter = filter
	}

	if form.Text != "" {
		position := imagingUsecase.PositionBottom
		if form.TextPosition != "" {
			pos, err := imagingUsecase.ParsePosition(form.TextPosition)
			if err != nil {
				return opts, err
			}
			position = pos
		}
		opts.Overlay = &imagingUsecase.TextOverlay{
			Content:  form.Text,
			Size:     form.TextSize,
			Position: position,
		}
	}

	return opts, nil
}
