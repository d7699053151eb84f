package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgToken "github.com/novelnest/userservice/internal/pkg/token"
	"github.com/novelnest/userservice/internal/server/http/dto"
)

// UserIDContextKey is a gin context key for the authenticated user identifier.
const UserIDContextKey = "userID"

// TokenParser resolves a bearer token to a user identifier.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// AuthRequired ensures the request carries a valid bearer token before the
// handler runs. Tokens travel in the Authorization header only.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "access denied, no token provided"})
			return
		}

		userID, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgToken.ErrInvalidToken) || errors.Is(err, pkgToken.ErrMissingToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "invalid token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.MessageResponse{Message: "token verification failed"})
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
