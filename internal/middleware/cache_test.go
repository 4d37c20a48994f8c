package middleware

import (
    "context"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/alicebob/miniredis/v2"
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/config"
)

func TestInvalidateCacheWithoutRedis(t *testing.T) {
    cfg := config.CacheConfig{Prefix: "fls:cache"}
    assert.NoError(t, InvalidateCache(context.Background(), cfg, nil))
}

func TestCacheKeyFrom(t *testing.T) {
    cfg := config.CacheConfig{Prefix: "fls:cache", KeyStrategy: "route_query"}
    e := echo.New()

    key := func(target string) string {
        req := httptest.NewRequest("GET", target, nil)
        c := e.NewContext(req, httptest.NewRecorder())
        c.SetPath("/v1/services")
        return cacheKeyFrom(cfg, c)
    }

    // Same request shape hashes to the same key, different queries
    // diverge. Keys carry no language component, which is why a
    // language change drops the whole prefix via InvalidateCache.
    assert.Equal(t, key("/v1/services"), key("/v1/services"))
    assert.NotEqual(t, key("/v1/services"), key("/v1/services?category=manicure"))
    assert.Contains(t, key("/v1/services"), "fls:cache:")
}

// A language switch must reach visitors on their next request: cached
// responses rendered under the old language are dropped, not served
// until TTL expiry.
func TestInvalidateCacheDropsLocalizedResponses(t *testing.T) {
    mr := miniredis.RunT(t)
    rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
    defer rdb.Close()

    cfg := config.CacheConfig{
        Enabled:     true,
        Methods:     map[string]bool{"GET": true},
        TTL:         time.Minute,
        KeyStrategy: "route_query",
        Prefix:      "fls:cache",
    }

    e := echo.New()
    body := "Classic Pedicure"
    h := NewRedisCache(cfg, rdb)(func(c echo.Context) error {
        return c.String(http.StatusOK, body)
    })

    get := func() *httptest.ResponseRecorder {
        req := httptest.NewRequest("GET", "/v1/services", nil)
        rec := httptest.NewRecorder()
        c := e.NewContext(req, rec)
        c.SetPath("/v1/services")
        require.NoError(t, h(c))
        return rec
    }

    first := get()
    assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
    assert.Equal(t, "Classic Pedicure", first.Body.String())

    // Handler output changes with the site language, but the cache
    // still holds the old rendering.
    body = "Pedicura Clásica"
    stale := get()
    assert.Equal(t, "HIT", stale.Header().Get("X-Cache"))
    assert.Equal(t, "Classic Pedicure", stale.Body.String())

    require.NoError(t, InvalidateCache(context.Background(), cfg, rdb))

    fresh := get()
    assert.Equal(t, "MISS", fresh.Header().Get("X-Cache"))
    assert.Equal(t, "Pedicura Clásica", fresh.Body.String())
}
