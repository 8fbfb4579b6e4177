package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error envelope: {"success": false, "message": "..."}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RespondError sends the uniform error envelope with the given status code and
// aborts the request.
func RespondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Message: message})
}

// RespondValidationError sends a 400 for missing or malformed input.
func RespondValidationError(c *gin.Context, message string) {
	RespondError(c, http.StatusBadRequest, message)
}

// RespondUnauthorizedError sends a 401 for a missing or invalid credential.
func RespondUnauthorizedError(c *gin.Context, message ...string) {
	msg := "User is not authenticated."
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	RespondError(c, http.StatusUnauthorized, msg)
}

// RespondNotFoundError sends a 404 for an absent entity.
func RespondNotFoundError(c *gin.Context, message string) {
	RespondError(c, http.StatusNotFound, message)
}

// RespondConflictError sends a 400 for duplicate entries and
// already-processed records, matching the API's historical status choice.
func RespondConflictError(c *gin.Context, message string) {
	RespondError(c, http.StatusBadRequest, message)
}

// RespondInternalServerError sends a 500 with a generic message unless one is
// supplied.
func RespondInternalServerError(c *gin.Context, message ...string) {
	msg := "Internal Server Error"
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	RespondError(c, http.StatusInternalServerError, msg)
}
