package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ahmad-Raza810/blog-application/internal/apperrors"
	"github.com/Ahmad-Raza810/blog-application/pkg/utils"
)

// ContextUserIDKey is the gin context key carrying the authenticated user id.
const ContextUserIDKey = "userID"

// ContextEmailKey is the gin context key carrying the authenticated email.
const ContextEmailKey = "email"

// JwtAuthMiddleware validates the bearer token and stores the caller's
// identity in the request context. Handlers read it once and pass it
// down to services explicitly; nothing below the handler layer consults
// ambient state.
func JwtAuthMiddleware(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.SendErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.SendErrorResponse(c, http.StatusUnauthorized, "Bearer token required")
			c.Abort()
			return
		}

		claims, err := tokens.ExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, apperrors.ErrTokenExpired) {
				utils.SendErrorResponse(c, http.StatusUnauthorized, "Access token expired")
			} else {
				utils.SendErrorResponse(c, http.StatusUnauthorized, "Invalid token")
			}
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.Subject)
		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller's identity when a valid
// bearer token is present but lets anonymous requests through. Used on
// logout, which must succeed softly for callers with no session.
func OptionalAuthMiddleware(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader != "" && tokenString != authHeader {
			if claims, err := tokens.ExtractClaims(tokenString); err == nil {
				c.Set(ContextUserIDKey, claims.Subject)
				c.Set(ContextEmailKey, claims.Email)
			}
		}
		c.Next()
	}
}
