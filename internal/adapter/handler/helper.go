package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hackinsight-team/hackinsight/errors"
	"github.com/hackinsight-team/hackinsight/internal/adapter/dto/common"
	usecaseErrors "github.com/hackinsight-team/hackinsight/internal/usecase/errors"
)

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := common.SuccessResponse{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = toAppError(err)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		)
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := common.ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
		Info:    info,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError lifts usecase sentinel errors into the HTTP error shape.
// Anything unrecognized becomes an internal error.
func toAppError(err error) errors.AppError {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrInvalidCount),
		stdErrors.Is(err, usecaseErrors.ErrEmptyDomains),
		stdErrors.Is(err, usecaseErrors.ErrEmptyRegions),
		stdErrors.Is(err, usecaseErrors.ErrUnknownDomain),
		stdErrors.Is(err, usecaseErrors.ErrUnknownRegion),
		stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrValidation(err.Error())

	case stdErrors.Is(err, usecaseErrors.ErrEmptyFilterMatch):
		return errors.ErrEmptyResult()

	case stdErrors.Is(err, usecaseErrors.ErrDatasetNotFound),
		stdErrors.Is(err, usecaseErrors.ErrNotFound):
		return errors.ErrDatasetNotFound("")

	case stdErrors.Is(err, usecaseErrors.ErrBadHeader),
		stdErrors.Is(err, usecaseErrors.ErrBadRow),
		stdErrors.Is(err, usecaseErrors.ErrEmptyUpload):
		return errors.ErrDatasetParse(err)

	case stdErrors.Is(err, usecaseErrors.ErrDecodeImage):
		return errors.ErrImageParse(err)

	case stdErrors.Is(err, usecaseErrors.ErrUnknownFilter),
		stdErrors.Is(err, usecaseErrors.ErrUnknownPosition):
		return errors.ErrValidation(err.Error())

	case stdErrors.Is(err, usecaseErrors.ErrSnapshotPath):
		return errors.ErrExportFailed(err)
	}

	return errors.ErrInternal(err)
}
