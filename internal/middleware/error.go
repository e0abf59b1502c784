package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebox/backend/internal/service"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler turns the last error recorded with c.Error into a JSON response.
// Handlers that already wrote a response are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		ginErr := c.Errors.Last()
		status, message := classify(ginErr)
		if status >= http.StatusInternalServerError {
			log.Printf("Error: %s %s: %v", c.Request.Method, c.Request.URL.Path, ginErr.Err)
		}
		c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
	}
}

func classify(ginErr *gin.Error) (int, string) {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError

	switch {
	case errors.As(ginErr.Err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.As(ginErr.Err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	case ginErr.IsType(gin.ErrorTypeBind):
		return http.StatusBadRequest, "invalid request body"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
