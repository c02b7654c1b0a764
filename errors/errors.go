package errors

import (
	"fmt"
	"net/http"
)

// AppError is the custom error type carried through the HTTP layer
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Dataset Errors

// ErrValidation covers every rejected generator/filter input: empty required
// selections, non-positive counts, labels outside the known pools. No partial
// output exists when it is returned.
func ErrValidation(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_DATASET_VALIDATION_FAILED,
		Message:  message,
	}
}

func ErrDatasetNotFound(sessionID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_DATASET_NOT_FOUND,
		Message:  "Dataset not found; generate or upload one first",
	}.WithDetail("session_id", sessionID)
}

// ErrDatasetParse keeps the client-facing message generic; the parser detail
// travels in Raw for the logs. Prior in-memory state is retained by callers.
func ErrDatasetParse(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_DATASET_PARSE_FAILED,
		Message:  "Uploaded file could not be parsed as a participant table",
	}
}

func ErrEmptyResult() AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_DATASET_EMPTY_RESULT,
		Message:  "No data available with the selected filters; adjust your selection",
	}
}

func ErrExportFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DATASET_EXPORT_FAILED,
		Message:  "Failed to export dataset",
	}
}

// Imaging Errors

func ErrImageParse(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_IMAGE_PARSE_FAILED,
		Message:  "Uploaded file could not be decoded as an image",
	}
}

func ErrInvalidFilter(name string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_IMAGE_INVALID_FILTER,
		Message:  "Unknown image filter",
	}.WithDetail("filter", name)
}

func ErrImageEncode(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_IMAGE_ENCODE_FAILED,
		Message:  "Failed to encode processed image",
	}
}

func ErrImageTooLarge(limitBytes int64) AppError {
	return AppError{
		HTTPCode: http.StatusRequestEntityTooLarge,
		Code:     ErrorCode_IMAGE_TOO_LARGE,
		Message:  "Uploaded image exceeds the size limit",
	}.WithDetail("limit_bytes", fmt.Sprintf("%d", limitBytes))
}
