package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// LimitOffset holds limit/offset pagination parameters parsed from the
// query string. Limit is capped so a single request cannot pull the whole
// table.
type LimitOffset struct {
	Limit  int
	Offset int
}

const (
	defaultLimit = 10
	maxLimit     = 100
)

// NewLimitOffset parses limit and offset query parameters
func NewLimitOffset(c *gin.Context) LimitOffset {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return LimitOffset{Limit: limit, Offset: offset}
}

// Envelope builds the pagination block returned alongside list results.
func (p LimitOffset) Envelope(total int64) gin.H {
	return gin.H{
		"total":    total,
		"limit":    p.Limit,
		"offset":   p.Offset,
		"has_more": int64(p.Offset+p.Limit) < total,
	}
}
