package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/novelnest/userservice/internal/domain/errors"
	"github.com/novelnest/userservice/internal/server/http/dto"
)

// AuthHandler processes registration, login and profile requests.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
		return
	}

	user, err := h.facade.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusConflict, dto.MessageResponse{Message: "email already exists"})
		case errors.Is(err, domainErrors.ErrSignupRejected):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "registration rejected"})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message:  "User registered successfully",
		UserID:   user.ID,
		Username: user.Username,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
		return
	}

	session, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "email and password are required"})
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message:  "Login successful",
		UserID:   session.UserID,
		Username: session.Username,
		Token:    session.Token,
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so there is
// nothing to revoke server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}

// Profile handles GET /api/auth/user.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.facade.CurrentUser(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "profile lookup failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		UserID:     user.ID,
		Username:   user.Username,
		Email:      user.Email,
		CreateDate: user.CreatedAt.Format(time.RFC3339),
	})
}
