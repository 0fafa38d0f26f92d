package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	CacheNoCache = 0
	CacheCustom  = -1
)

// CacheControl sets the cache-control header for every response going
// through it. Invite state changes on every step, so the API runs with
// CacheNoCache; CacheCustom leaves the header to the handler.
func CacheControl(seconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch {
		case seconds == CacheCustom:
		case seconds == CacheNoCache:
			c.Header("cache-control", "no-cache")
		default:
			c.Header("cache-control", "private, max-age="+strconv.Itoa(seconds))
		}
		c.Next()
	}
}
