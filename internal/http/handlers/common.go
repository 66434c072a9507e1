package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"reservio/internal/domain"
	"reservio/internal/http/middleware"
)

// respondError sends the standard error payload. details is optional.
func respondError(c *gin.Context, status int, message string, details any) {
	payload := gin.H{"error": message}
	if details != nil {
		payload["details"] = details
	}
	if rid := middleware.GetRequestID(c); rid != "" {
		payload["request_id"] = rid
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP statuses. Conflicts surface
// as 400 with their message: the API treats a taken slot as a rejected
// request, not a resource conflict. Anything unrecognized is a 500 with no
// internal detail.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusBadRequest, err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

// bindJSON binds the body or answers 400 and reports false.
func bindJSON[T any](c *gin.Context, dst *T, what string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid "+what+" data", err.Error())
		return false
	}
	return true
}

// pathID parses a positive integer :id path parameter or answers 400.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid id", nil)
		return 0, false
	}
	return id, true
}
