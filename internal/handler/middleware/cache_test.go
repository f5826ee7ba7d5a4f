//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyForRequest(t *testing.T, router *gin.Engine, keys *[]string, path string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(httptest.NewRecorder(), req)
	require.NotEmpty(t, *keys, "handler did not run for %s", path)
}

func TestCacheKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var keys []string
	router := gin.New()
	router.GET("/garages/:id/cars", func(c *gin.Context) {
		keys = append(keys, cacheKey("cache", c))
		c.Status(http.StatusOK)
	})

	t.Run("distinct route parameters get distinct keys", func(t *testing.T) {
		keys = nil
		keyForRequest(t, router, &keys, "/garages/11111111-1111-1111-1111-111111111111/cars")
		keyForRequest(t, router, &keys, "/garages/22222222-2222-2222-2222-222222222222/cars")

		require.Len(t, keys, 2)
		assert.NotEqual(t, keys[0], keys[1])
	})

	t.Run("identical requests share a key", func(t *testing.T) {
		keys = nil
		keyForRequest(t, router, &keys, "/garages/11111111-1111-1111-1111-111111111111/cars")
		keyForRequest(t, router, &keys, "/garages/11111111-1111-1111-1111-111111111111/cars")

		require.Len(t, keys, 2)
		assert.Equal(t, keys[0], keys[1])
	})

	t.Run("query string participates in the key", func(t *testing.T) {
		keys = nil
		keyForRequest(t, router, &keys, "/garages/11111111-1111-1111-1111-111111111111/cars?page=1")
		keyForRequest(t, router, &keys, "/garages/11111111-1111-1111-1111-111111111111/cars?page=2")

		require.Len(t, keys, 2)
		assert.NotEqual(t, keys[0], keys[1])
	})
}
