package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"bookshelf/pkg/helpers"
)

func newAuthedRouter(jwtm *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secret", Auth(jwtm), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetString(CtxUserIDKey),
			"username": c.GetString(CtxUsernameKey),
		})
	})
	return r
}

func TestAuthRejectsMissingAndMalformedHeaders(t *testing.T) {
	jwtm := helpers.NewJWTManager("test-secret", time.Hour)
	r := newAuthedRouter(jwtm)

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", "Unauthorized"},
		{"wrong scheme", "Basic abc123", "Unauthorized"},
		{"bare token", "sometoken", "Unauthorized"},
		{"bad token", "Bearer not-a-jwt", "Invalid or expired token"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode body: %v", tc.name, err)
		}
		if body["message"] != tc.want {
			t.Fatalf("%s: expected message %q, got %q", tc.name, tc.want, body["message"])
		}
	}
}

func TestAuthInjectsClaims(t *testing.T) {
	jwtm := helpers.NewJWTManager("test-secret", time.Hour)
	r := newAuthedRouter(jwtm)

	token, _, err := jwtm.Generate("user-1", "ana")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["user_id"] != "user-1" || body["username"] != "ana" {
		t.Fatalf("unexpected claims in context: %v", body)
	}
}
