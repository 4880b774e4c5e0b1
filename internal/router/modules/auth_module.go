package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/container"
	handlers "bookshelf/internal/interface/http"
	"bookshelf/internal/interface/middleware"
)

// AuthModule wires the public credential endpoints.
// POST /register, POST /login — no auth, per-IP rate limits.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
}
