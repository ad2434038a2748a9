package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard error JSON response.
type ErrorResponse struct {
	Status  string      `json:"status"`  // "error" or "fail"
	Message string      `json:"message"` // Error message
	Code    int         `json:"code"`    // HTTP status code
	Errors  interface{} `json:"errors,omitempty"` // Field-level details, e.g. validation messages
}

// SendError sends a standardized error response. details carries optional
// field-level information such as a validation error map.
func SendError(c *gin.Context, statusCode int, message string, details interface{}) {
	statusText := "error"
	if statusCode >= http.StatusInternalServerError {
		statusText = "fail" // Differentiate client errors from server failures
	}
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Status:  statusText,
		Message: message,
		Code:    statusCode,
		Errors:  details,
	})
}

// NotFound signals a missing entity. The body stays empty: absence is
// routine control flow for this API, not a reportable failure.
func NotFound(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, message string, details interface{}) {
	if message == "" {
		message = "Invalid request payload or parameters"
	}
	SendError(c, http.StatusBadRequest, message, details)
}

// Conflict sends a 409 Conflict error response.
func Conflict(c *gin.Context, message string) {
	SendError(c, http.StatusConflict, message, nil)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "An unexpected error occurred on the server"
	}
	SendError(c, http.StatusInternalServerError, message, nil)
}
