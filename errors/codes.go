package errors

// ErrorCode identifies the category of an AppError in API responses.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Dataset
	ErrorCode_DATASET_VALIDATION_FAILED ErrorCode = 2000
	ErrorCode_DATASET_NOT_FOUND         ErrorCode = 2001
	ErrorCode_DATASET_PARSE_FAILED      ErrorCode = 2002
	ErrorCode_DATASET_EMPTY_RESULT      ErrorCode = 2003
	ErrorCode_DATASET_EXPORT_FAILED     ErrorCode = 2004

	// Imaging
	ErrorCode_IMAGE_PARSE_FAILED   ErrorCode = 3000
	ErrorCode_IMAGE_INVALID_FILTER ErrorCode = 3001
	ErrorCode_IMAGE_ENCODE_FAILED  ErrorCode = 3002
	ErrorCode_IMAGE_TOO_LARGE      ErrorCode = 3003
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                   "OK",
	ErrorCode_INTERNAL:                  "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:          "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                 "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:           "INVALID_PAYLOAD",
	ErrorCode_DATASET_VALIDATION_FAILED: "DATASET_VALIDATION_FAILED",
	ErrorCode_DATASET_NOT_FOUND:         "DATASET_NOT_FOUND",
	ErrorCode_DATASET_PARSE_FAILED:      "DATASET_PARSE_FAILED",
	ErrorCode_DATASET_EMPTY_RESULT:      "DATASET_EMPTY_RESULT",
	ErrorCode_DATASET_EXPORT_FAILED:     "DATASET_EXPORT_FAILED",
	ErrorCode_IMAGE_PARSE_FAILED:        "IMAGE_PARSE_FAILED",
	ErrorCode_IMAGE_INVALID_FILTER:      "IMAGE_INVALID_FILTER",
	ErrorCode_IMAGE_ENCODE_FAILED:       "IMAGE_ENCODE_FAILED",
	ErrorCode_IMAGE_TOO_LARGE:           "IMAGE_TOO_LARGE",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
