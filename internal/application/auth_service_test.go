package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bookshelf/internal/domain/entity"
	"bookshelf/internal/domain/repository"
	"bookshelf/pkg/helpers"
)

// stubUserRepo scripts repository behavior per method so the service's
// check ordering and race handling can be pinned down.
type stubUserRepo struct {
	byUsername    *entity.User
	byUsernameErr error
	byEmail       *entity.User
	byEmailErr    error
	createErr     error
	createID      string

	usernameChecked bool
	emailChecked    bool
}

func (s *stubUserRepo) Create(context.Context, *entity.User) (string, error) {
	return s.createID, s.createErr
}

func (s *stubUserRepo) GetByUsername(context.Context, string) (*entity.User, error) {
	s.usernameChecked = true
	return s.byUsername, s.byUsernameErr
}

func (s *stubUserRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	s.emailChecked = true
	return s.byEmail, s.byEmailErr
}

func newTestAuthService(repo repository.UserRepository) *AuthService {
	return NewAuthService(repo, helpers.NewJWTManager("test-secret", time.Hour), nil)
}

func TestRegisterRunsBothUniquenessChecks(t *testing.T) {
	existing := &entity.User{ID: primitive.NewObjectID(), Username: "ana"}
	repo := &stubUserRepo{byUsername: existing, byEmailErr: repository.ErrNotFound}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "ana", "pw1", "a@x.com")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if !repo.usernameChecked || !repo.emailChecked {
		t.Fatalf("expected both checks to run, got username=%v email=%v", repo.usernameChecked, repo.emailChecked)
	}
}

func TestRegisterReportsEmailConflict(t *testing.T) {
	existing := &entity.User{ID: primitive.NewObjectID(), Email: "a@x.com"}
	repo := &stubUserRepo{byUsernameErr: repository.ErrNotFound, byEmail: existing}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "ana", "pw1", "a@x.com")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterMapsInsertRaceToConflict(t *testing.T) {
	// Both checks pass but a concurrent registration wins the insert.
	repo := &stubUserRepo{
		byUsernameErr: repository.ErrNotFound,
		byEmailErr:    repository.ErrNotFound,
		createErr:     repository.ErrDuplicate,
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "ana", "pw1", "a@x.com")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected conflict after losing insert race, got %v", err)
	}
}

func TestRegisterSurfacesStoreErrors(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := &stubUserRepo{byUsernameErr: storeErr, byEmailErr: repository.ErrNotFound}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "ana", "pw1", "a@x.com")
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to surface, got %v", err)
	}
}

func TestLoginIssuesParsableToken(t *testing.T) {
	hash, err := helpers.HashPassword("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &entity.User{ID: primitive.NewObjectID(), Username: "ana", Password: hash}
	repo := &stubUserRepo{byUsername: u}
	jwtm := helpers.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(repo, jwtm, nil)

	token, exp, err := svc.Login(context.Background(), "ana", "pw1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expected future expiry, got %v", exp)
	}
	claims, err := jwtm.Parse(token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.UserID != u.ID.Hex() || claims.Username != "ana" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginUniformErrorForUnknownUserAndWrongPassword(t *testing.T) {
	hash, err := helpers.HashPassword("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &entity.User{ID: primitive.NewObjectID(), Username: "ana", Password: hash}

	unknown := newTestAuthService(&stubUserRepo{byUsernameErr: repository.ErrNotFound})
	_, _, errUnknown := unknown.Login(context.Background(), "ghost", "pw1")

	wrongPw := newTestAuthService(&stubUserRepo{byUsername: u})
	_, _, errWrongPw := wrongPw.Login(context.Background(), "ana", "nope")

	if !errors.Is(errUnknown, ErrInvalidCredentials) || !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Fatalf("expected uniform ErrInvalidCredentials, got %v and %v", errUnknown, errWrongPw)
	}
}
