package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Pagination holds a limit/offset slice parsed from query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

// ParsePagination reads limit/offset query parameters. Unparsable or
// out-of-range values silently fall back to the defaults.
func ParsePagination(c *gin.Context) Pagination {
	return ParsePaginationValues(c.Query("limit"), c.Query("offset"))
}

// ParsePaginationValues applies the fallback rules to raw string values.
func ParsePaginationValues(limitStr, offsetStr string) Pagination {
	p := Pagination{Limit: DefaultPageLimit, Offset: 0}

	if limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil && v > 0 {
			p.Limit = v
		}
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if offsetStr != "" {
		if v, err := strconv.Atoi(offsetStr); err == nil && v >= 0 {
			p.Offset = v
		}
	}
	return p
}

// StrToInt64 converts a string to an int64.
func StrToInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// NewNullString is a helper for string pointers, returning nil if the
// string is empty. Useful for optional fields stored as NULL.
func NewNullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
