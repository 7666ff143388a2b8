package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bhoumik1804/krsika-backend/config"
	"github.com/bhoumik1804/krsika-backend/utils"
)

// respondError maps the model layer's error taxonomy onto HTTP statuses.
// Storage and unknown errors are logged and returned opaque.
func respondError(c *gin.Context, err error) {
	switch {
	case utils.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case utils.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	default:
		config.LogError(config.GetLogger(), "respond.go", "respondError", c.FullPath(), nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parsePagination(c *gin.Context) (page int, limit int) {
	page, _ = strconv.Atoi(c.Query("page"))
	limit, _ = strconv.Atoi(c.Query("limit"))
	return page, limit
}

// parseDateParam parses an optional YYYY-MM-DD query param. ok=false means the
// error response was already written.
func parseDateParam(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := utils.ParseDate(raw)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return &t, true
}

func parseIdParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, utils.NewValidationError("invalid id %q", c.Param("id")))
		return 0, false
	}
	return id, true
}
