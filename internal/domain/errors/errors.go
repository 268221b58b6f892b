package errors

import (
	"net/http"

	"backoffice/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same error code, so WithDetails copies
// still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"該通知已不存在",
		"",
	)

	ErrNotificationCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"NOTIFICATION_CREATION_FAILED",
		"建立通知失敗",
		"",
	)

	ErrNotificationUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"NOTIFICATION_UPDATE_FAILED",
		"更新通知失敗",
		"",
	)

	ErrNotificationDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"NOTIFICATION_DELETE_FAILED",
		"刪除通知失敗",
		"",
	)

	// Push token-related errors
	ErrPushTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"PUSH_TOKEN_NOT_FOUND",
		"找不到該裝置的推播權杖",
		"",
	)

	ErrPushPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PUSH_PERMISSION_DENIED",
		"裝置未授權推播通知",
		"",
	)

	// Subscription-related errors
	ErrSyncDisposed = NewBaseError(
		http.StatusServiceUnavailable,
		"SYNC_DISPOSED",
		"通知同步服務已停止",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the underlying driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// TransportError represents a connectivity failure towards the store or the change feed
type TransportError struct {
	err     error
	details string
}

// NewTransportError wraps a connectivity failure
func NewTransportError(err error, details string) AppError {
	return &TransportError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return errors.Wrap(e.err, "transport failed").Error()
}

// Unwrap returns the underlying transport error
func (e *TransportError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *TransportError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *TransportError) ErrorCode() string {
	return "TRANSPORT_FAILED"
}

// Message returns the user-friendly error message
func (e *TransportError) Message() string {
	return "連線中斷，請稍後再試"
}

// Details returns detailed error information
func (e *TransportError) Details() string {
	return e.details
}

// IsTransportError reports whether err carries a TransportError
func IsTransportError(err error) bool {
	var transportErr *TransportError

	return errors.As(err, &transportErr)
}
