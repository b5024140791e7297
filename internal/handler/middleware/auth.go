package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"salon-queue/internal/domain/actor"
	"salon-queue/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxActorKey    = "actor"
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{"message": msg, "code": "UNAUTHORIZED"},
	})
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			unauthorized(c, "Access token required")
			return
		}

		a, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			unauthorized(c, "Invalid or expired token")
			return
		}

		SetActor(c, a)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole actor.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, ok := c.Get(ctxActorKey)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "Internal server error"},
			})
			return
		}

		if !a.(actor.Actor).Role.AtLeast(minRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Insufficient permissions", "code": "FORBIDDEN"},
			})
			return
		}

		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present. A bad token is still rejected
// so a client never silently books anonymously.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		a, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			unauthorized(c, "Invalid or expired token")
			return
		}

		SetActor(c, a)
		c.Next()
	}
}

func SetActor(c *gin.Context, a actor.Actor) {
	c.Set(ctxActorKey, a)
	c.Set(ctxUserIDKey, a.ID)
	c.Set(ctxUserRoleKey, a.Role)
	c.Set("jwt_claims", map[string]any{
		"user_id": a.ID.String(),
		"role":    string(a.Role),
	})
}

// GetActor returns the authenticated actor, or an anonymous customer.
func GetActor(c *gin.Context) actor.Actor {
	if v, ok := c.Get(ctxActorKey); ok {
		if a, ok := v.(actor.Actor); ok {
			return a
		}
	}
	return actor.Anonymous()
}
