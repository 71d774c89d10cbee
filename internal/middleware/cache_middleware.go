package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/pkg/utils"
)

// ReportCacheTTL is how long a cached report response stays fresh. The
// cache is best-effort only: reports are recomputed from the store after
// the TTL and a Redis outage degrades to uncached responses.
const ReportCacheTTL = 30 * time.Second

// bodyCaptureWriter captures the response body while forwarding to the client.
type bodyCaptureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func cacheKey(c *gin.Context) string {
	sum := sha1.Sum([]byte(c.Request.URL.Path + "?" + c.Request.URL.RawQuery))
	return fmt.Sprintf("reportcache:%x", sum[:])
}

// ReportCache serves successful GET responses from Redis for ReportCacheTTL.
// When rdb is nil the middleware is a no-op.
func ReportCache(rdb *redis.Client) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 200*time.Millisecond)
		defer cancel()

		key := cacheKey(c)
		if cached, err := rdb.Get(ctx, key).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		if c.Writer.Status() != http.StatusOK {
			return
		}
		if err := rdb.Set(context.Background(), key, writer.buf.Bytes(), ReportCacheTTL).Err(); err != nil {
			utils.LogWarn("Failed to cache report response", map[string]interface{}{"key": key, "error": err.Error()})
		}
	}
}
