package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bookshelf/internal/application"
	"bookshelf/pkg/helpers"
	"bookshelf/pkg/response"
	"bookshelf/pkg/validation"
)

// AuthHandler serves user registration and login.
type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorDetails(c, http.StatusBadRequest, "Username, password and Email are required", validation.ToDetails(err))
		return
	}

	id, err := h.Svc.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	switch {
	case errors.Is(err, application.ErrUsernameTaken):
		response.Error(c, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, application.ErrEmailTaken):
		response.Error(c, http.StatusBadRequest, "Email already exists")
	case err != nil:
		helpers.LogError(h.Logger, "register failed", err, logrus.Fields{"username": req.Username})
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	default:
		response.Success(c, "User registered successfully", gin.H{"id": id})
	}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorDetails(c, http.StatusBadRequest, "Username and password are required", validation.ToDetails(err))
		return
	}

	token, _, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		// Same message for unknown username and wrong password.
		response.Error(c, http.StatusBadRequest, "Invalid username or password")
	case err != nil:
		helpers.LogError(h.Logger, "login failed", err, logrus.Fields{"username": req.Username})
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	default:
		response.Token(c, "Login successful", token)
	}
}
