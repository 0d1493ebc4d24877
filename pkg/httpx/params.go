package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ClampInt — v, ограниченное диапазоном [lo, hi].
func ClampInt(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// ParseLimitOffset — limit/offset из query-строки для выборок списков.
// Нечисловой limit заменяется дефолтом, итог всегда в [1, maxLimit];
// отрицательный или нечисловой offset отбрасывается.
func ParseLimitOffset(c *gin.Context, defaultLimit, maxLimit int) (limit, offset int) {
	limit = ClampInt(defaultLimit, 1, maxLimit)
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = ClampInt(v, 1, maxLimit)
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			offset = v
		}
	}
	return limit, offset
}
