package router

import (
	"bookshelf/internal/application"
	"bookshelf/internal/container"
	"bookshelf/internal/infrastructure/mongodb"
	handlers "bookshelf/internal/interface/http"
	"bookshelf/internal/router/modules"
)

// InitModules builds the repositories, services, and handlers from the
// container singletons and registers every feature module. Called once
// during startup.
func InitModules(r *Registry) {
	db := container.GetMongoDB()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	userRepo := mongodb.NewUserRepository(db)
	bookRepo := mongodb.NewBookRepository(db)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), logger)
	bookSvc := application.NewBookService(bookRepo, logger, container.GetES(), cfg.ESBooksIndex)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewBookModule(handlers.NewBookHandler(bookSvc, logger)))
	r.Add(modules.NewHealthModule())
}
