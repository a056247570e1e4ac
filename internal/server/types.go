// Package server provides the HTTP server for the jobboard API.
// It includes handlers, middleware, routes, and response DTOs.
package server

// MessageResponse confirms a successful delete or update.
type MessageResponse struct {
	// Message is the human-readable confirmation.
	Message string `json:"message"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	// Error is the human-readable error message.
	Error string `json:"error"`
	// Code is the error code for programmatic handling.
	Code string `json:"code"`
}

// HealthResponse is the HTTP response for the health check endpoint.
type HealthResponse struct {
	// Status is the health status of the service.
	Status string `json:"status"`
}

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidJobID   = "INVALID_JOB_ID"
	CodeInvalidJSON    = "INVALID_JSON"
	CodeJobNotFound    = "JOB_NOT_FOUND"
	CodeJobListFailed  = "JOB_LIST_FAILED"
	CodeJobFetchFailed = "JOB_FETCH_FAILED"
	CodeJobCreate      = "JOB_CREATION_FAILED"
	CodeJobDelete      = "JOB_DELETE_FAILED"
	CodeJobUpdate      = "JOB_UPDATE_FAILED"
	CodeInternal       = "INTERNAL_ERROR"
)
