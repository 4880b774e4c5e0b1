package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"bookshelf/internal/domain/entity"
	"bookshelf/internal/domain/repository"
	"bookshelf/pkg/helpers"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password so a caller cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService owns credential hashing, verification, and session token
// issuance.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// Register hashes the password and persists a new user. Both uniqueness
// checks run up front; the store's unique indexes close the remaining race
// between check and insert.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (string, error) {
	_, unameErr := s.Users.GetByUsername(ctx, username)
	_, emailErr := s.Users.GetByEmail(ctx, email)

	if unameErr == nil {
		return "", ErrUsernameTaken
	}
	if !errors.Is(unameErr, repository.ErrNotFound) {
		return "", unameErr
	}
	if emailErr == nil {
		return "", ErrEmailTaken
	}
	if !errors.Is(emailErr, repository.ErrNotFound) {
		return "", emailErr
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return "", err
	}
	id, err := s.Users.Create(ctx, &entity.User{
		Username: username,
		Email:    email,
		Password: hash,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		// Lost the race against a concurrent registration with the same key.
		return "", ErrUsernameTaken
	}
	if err != nil {
		return "", err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": id, "username": username}).Info("user registered")
	}
	return id, nil
}

// Login verifies the credentials and issues a signed session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.Generate(u.ID.Hex(), u.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("generate token failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}
