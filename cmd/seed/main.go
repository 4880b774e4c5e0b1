package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"bookshelf/config"
	"bookshelf/internal/domain/entity"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/infrastructure/mongodb"
	"bookshelf/pkg/helpers"
)

// Seeds a demo user and a handful of books for local development.
func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoConnTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDatabase)

	users := mongodb.NewUserRepository(db)
	books := mongodb.NewBookRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatalf("failed to ensure user indexes: %v", err)
	}
	if err := books.EnsureIndexes(ctx); err != nil {
		log.Fatalf("failed to ensure book indexes: %v", err)
	}

	hash, err := helpers.HashPassword("password123")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	id, err := users.Create(ctx, &entity.User{
		Username: "demo",
		Email:    "demo@example.com",
		Password: hash,
	})
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		fmt.Println("demo user already present")
	case err != nil:
		log.Fatalf("failed to seed user: %v", err)
	default:
		fmt.Printf("seeded demo user %s (password: password123)\n", id)
	}

	seedBooks := []entity.Book{
		{Title: "Dune", Author: "Frank Herbert", Year: 1965},
		{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", Year: 1969},
		{Title: "Neuromancer", Author: "William Gibson", Year: 1984},
	}
	for i := range seedBooks {
		_, err := books.Create(ctx, &seedBooks[i])
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			fmt.Printf("book %q already present\n", seedBooks[i].Title)
		case err != nil:
			log.Fatalf("failed to seed book %q: %v", seedBooks[i].Title, err)
		default:
			fmt.Printf("seeded book %q\n", seedBooks[i].Title)
		}
	}
}
