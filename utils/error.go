package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIError carries a stable status class and a human-readable detail message.
// Internal errors are built with a client-safe detail; raw storage or parsing
// failure text never travels in one.
type APIError struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Detail)
}

func NewInvalidInput(detail string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Title: "Invalid request", Detail: detail}
}

func NewNotFound(detail string) *APIError {
	return &APIError{Status: http.StatusNotFound, Title: "Resource not found", Detail: detail}
}

func NewConflict(detail string) *APIError {
	return &APIError{Status: http.StatusConflict, Title: "Conflict", Detail: detail}
}

func NewUnauthorized(detail string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Title: "Unauthorized", Detail: detail}
}

func NewForbidden(detail string) *APIError {
	return &APIError{Status: http.StatusForbidden, Title: "Forbidden", Detail: detail}
}

func NewInternal(detail string) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Title: "Internal error", Detail: detail}
}

// WriteError sends the JSON form of an error. Anything that is not an
// APIError is masked as Internal.
func WriteError(c *gin.Context, err error) {
	logger := GetLogger()
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		logger.Error("Unexpected error", zap.Error(err))
		apiErr = NewInternal("An unexpected error occurred. Please try again later.")
	}
	if apiErr.Status >= http.StatusInternalServerError {
		logger.Error(apiErr.Title, zap.String("details", apiErr.Detail))
	} else {
		logger.Warn(apiErr.Title, zap.String("details", apiErr.Detail))
	}
	c.JSON(apiErr.Status, apiErr)
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, NewInternal(
					"An unexpected error occurred. Please try again later."))
				c.Abort()
			}
		}()
		c.Next()
	}
}
