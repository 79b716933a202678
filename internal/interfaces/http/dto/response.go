package dto

import "time"

// StatusOK is the status reported by successful writes
const StatusOK = "ok"

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error     string             `json:"error"`
	Code      string             `json:"code"`
	RequestID string             `json:"request_id,omitempty"`
	Details   []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail describes one invalid request field
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message, requestID string) ErrorResponse {
	return ErrorResponse{Error: message, Code: code, RequestID: requestID}
}

// NewValidationErrorResponse creates a validation error response with details
func NewValidationErrorResponse(message, requestID string, details []ValidationDetail) ErrorResponse {
	return ErrorResponse{
		Error:     message,
		Code:      ErrCodeValidation,
		RequestID: requestID,
		Details:   details,
	}
}

// StatusResponse acknowledges a write. ID is the affected record.
type StatusResponse struct {
	Status  string `json:"status"`
	ID      uint   `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK acknowledges a write without an id
func OK() StatusResponse {
	return StatusResponse{Status: StatusOK}
}

// OKWithID acknowledges a write of record id
func OKWithID(id uint) StatusResponse {
	return StatusResponse{Status: StatusOK, ID: id}
}

// IDRequest binds the numeric id path parameter
type IDRequest struct {
	ID uint `uri:"id" binding:"required,min=1"`
}

// HealthResponse reports liveness and, for readiness, the database state
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database,omitempty"`
}

// Timestamp formats t the way every response reports instants
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000")
}
