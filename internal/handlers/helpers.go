package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rpspoonia/project-management-system/internal/models"
)

// dateLayout is the wire format for project due dates (date only); task due
// dates use full RFC3339 timestamps.
const dateLayout = "2006-01-02"

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// parseOptionalTime turns an optional wire string into an optional time.
// A nil or empty input means "not supplied".
func parseOptionalTime(raw *string, layout string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(layout, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// writeError maps data-layer error categories onto HTTP statuses. Anything
// unrecognized, including slug exhaustion, is an internal fault.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
