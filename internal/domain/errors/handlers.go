package errors

// ErrorInfo is the error object of a failed response
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "NOTIFICATION_NOT_FOUND"
	Message string `json:"message"`           // Message safe to show to the user
	Details any    `json:"details,omitempty"` // Field errors or extra context, omitted for 401/403/5xx
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Echoes the X-Request-Id of the request
}

// SuccessResponse is the envelope of every successful API response
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope of every failed API response
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}
