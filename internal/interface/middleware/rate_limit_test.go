package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newLimitedRouter(rdb *redis.Client, max int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimit(rdb, max, window, KeyByIP(), nil), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func get(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitBlocksAfterMax(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	r := newLimitedRouter(rdb, 3, time.Minute)
	for i := 0; i < 3; i++ {
		if w := get(r, "203.0.113.9"); w.Code != http.StatusOK {
			t.Fatalf("request %d expected 200, got %d", i+1, w.Code)
		}
	}
	w := get(r, "203.0.113.9")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after limit, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header on 429")
	}
}

func TestRateLimitIsPerKey(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	r := newLimitedRouter(rdb, 1, time.Minute)
	if w := get(r, "203.0.113.9"); w.Code != http.StatusOK {
		t.Fatalf("first ip expected 200, got %d", w.Code)
	}
	if w := get(r, "203.0.113.10"); w.Code != http.StatusOK {
		t.Fatalf("second ip expected 200, got %d", w.Code)
	}
	if w := get(r, "203.0.113.9"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("first ip second hit expected 429, got %d", w.Code)
	}
}

func TestRateLimitResetsAfterWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	r := newLimitedRouter(rdb, 1, time.Second)
	if w := get(r, "203.0.113.9"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := get(r, "203.0.113.9"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	mr.FastForward(2 * time.Second)
	if w := get(r, "203.0.113.9"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 after window reset, got %d", w.Code)
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()
	mr.Close() // redis down: the limiter must not block traffic

	r := newLimitedRouter(rdb, 1, time.Minute)
	for i := 0; i < 5; i++ {
		if w := get(r, "203.0.113.9"); w.Code != http.StatusOK {
			t.Fatalf("request %d expected 200 with redis down, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimitNoopWithoutRedis(t *testing.T) {
	r := newLimitedRouter(nil, 1, time.Minute)
	for i := 0; i < 5; i++ {
		if w := get(r, "203.0.113.9"); w.Code != http.StatusOK {
			t.Fatalf("request %d expected 200 with nil client, got %d", i+1, w.Code)
		}
	}
}

func TestAllowPrivateIPBypassesLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimit(rdb, 1, time.Minute, KeyByIP(), AllowPrivateIP()), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	for i := 0; i < 5; i++ {
		if w := get(r, "127.0.0.1"); w.Code != http.StatusOK {
			t.Fatalf("loopback request %d expected bypass, got %d", i+1, w.Code)
		}
	}
}
