package middleware

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/campus-project/campus-server/internal/auth"
	"github.com/campus-project/campus-server/internal/models"
	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// RoleSource answers role lookups for admin gating. The role is read fresh
// on every request (optionally through a short-TTL cache) instead of being
// trusted from token claims, so role changes apply without re-login.
type RoleSource interface {
	GetUserRole(ctx context.Context, id int) (string, error)
}

// RequireAuth validates the bearer token and attaches the authenticated
// identity to the request context.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token requerido"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token no proporcionado"})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido o expirado"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// RequireAdmin gates a route to admin users. It assumes RequireAuth already
// ran on the request.
func RequireAdmin(roles RoleSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(ContextUserID).(int)

		role, err := roles.GetUserRole(c.Request.Context(), userID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
			c.Abort()
			return
		}

		if role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Solo administradores"})
			c.Abort()
			return
		}

		c.Next()
	}
}
