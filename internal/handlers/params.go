package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/apperrors"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// int64Param parses a positive numeric path parameter.
func int64Param(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(name + " must be a positive integer")
	}
	return id, nil
}

// dateQuery parses an optional YYYY-MM-DD query value as a UTC day.
// An absent value yields nil so the caller can report it as missing.
func dateQuery(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return nil, apperrors.NewInvalidDateRangeError("invalid date format, expected YYYY-MM-DD")
	}
	return &t, nil
}
