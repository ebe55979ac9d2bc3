package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isaacwassouf/cricket-betting-service/models"
)

// statusFor maps a taxonomy tag onto its HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrDuplicateIdentity):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	detail := err.Error()
	if status >= http.StatusInternalServerError {
		log.Printf("[%s] %s %s: %v", requestID(c), c.Request.Method, c.Request.URL.Path, err)
		if status == http.StatusInternalServerError {
			detail = "internal error"
		}
	}
	c.AbortWithStatusJSON(status, gin.H{"error": models.Kind(err), "detail": detail})
}

// bindJSON decodes the request body into dst. Malformed bodies are reported
// as validation failures.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if !errors.Is(err, models.ErrValidation) {
			err = fmt.Errorf("%w: %v", models.ErrValidation, err)
		}
		abortWithError(c, err)
		return false
	}
	return true
}
