package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/container"
	handlers "bookshelf/internal/interface/http"
	"bookshelf/internal/interface/middleware"
)

// BookModule wires the catalog endpoints behind the bearer-token middleware.
// GET /books, GET /getbook, POST /addbook, PUT /updatebook/:title,
// DELETE /deletebook, GET /searchbooks.
type BookModule struct {
	Handler *handlers.BookHandler
}

func NewBookModule(h *handlers.BookHandler) *BookModule {
	return &BookModule{Handler: h}
}

func (m *BookModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/books", m.Handler.List)
		auth.GET("/getbook", m.Handler.Get)
		auth.POST("/addbook", m.Handler.Add)
		auth.PUT("/updatebook/:title", m.Handler.Update)
		auth.DELETE("/deletebook", m.Handler.Delete)
		auth.GET("/searchbooks", m.Handler.Search)
	}
}
