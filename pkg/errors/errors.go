package errors

import "fmt"

var (
	// Common
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("invalid request")

	// Stock ledger
	ErrInsufficientStock = fmt.Errorf("insufficient peripheral stock")

	// Schedule
	ErrDuplicateSchedule = fmt.Errorf("schedule already exists for this equipment and date")

	// Export
	ErrUnknownExportModel = fmt.Errorf("model is not allowed for export")
)

// HttpError carries an HTTP status code together with the underlying cause.
// Controllers build these; utils.ErrorResponse renders them.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// InvalidInputError marks user-correctable input problems.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
