package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"car-rental-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// cacheWriter captures the response body while forwarding it to the client.
type cacheWriter struct {
	gin.ResponseWriter
	buf   bytes.Buffer
	size  int64
	limit int64
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	if w.limit <= 0 || w.size < w.limit {
		remain := w.limit - w.size
		if w.limit <= 0 || int64(len(b)) <= remain {
			w.buf.Write(b)
		} else if remain > 0 {
			w.buf.Write(b[:remain])
		}
		w.size += int64(len(b))
	}
	return w.ResponseWriter.Write(b)
}

// The key must come from the concrete request path, not the route pattern:
// parameterized routes share one FullPath and would share one cache entry.
func cacheKey(prefix string, c *gin.Context) string {
	tail := c.Request.URL.Path + ":q:" + c.Request.URL.RawQuery
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// NewResponseCache caches successful GET responses of public listing endpoints
// in Redis. Cache failures fall through to the handler.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) gin.HandlerFunc {
	if !cfg.Enabled || rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	maxBody := int64(cfg.MaxBodyBytes)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := cacheKey(cfg.Prefix, c)

		if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		cw := &cacheWriter{ResponseWriter: c.Writer, limit: maxBody}
		c.Writer = cw
		c.Header("X-Cache", "MISS")

		c.Next()

		if cw.Status() == http.StatusOK && (maxBody <= 0 || cw.size <= maxBody) {
			_ = rdb.SetEx(context.Background(), key, cw.buf.Bytes(), ttl).Err()
		}
	}
}
