package middleware

import (
	"net/http"
	"strings"

	"github.com/toniliu672/ira-server-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type wireError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func reject(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   wireError{Code: code, Message: message},
	})
}

// JWTAuth verifies the bearer token and requires the given role. The
// verified identity is stored on the context as user_id/role; downstream
// handlers trust it and never re-verify.
func JWTAuth(authService *services.AuthService, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			reject(c, http.StatusUnauthorized, "UNAUTHORIZED", "authorization header required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			reject(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid authorization header format")
			return
		}

		id, tokenRole, err := authService.ValidateToken(parts[1])
		if err != nil {
			reject(c, http.StatusUnauthorized, "INVALID_TOKEN", "invalid or expired token")
			return
		}
		if tokenRole != role {
			reject(c, http.StatusForbidden, "FORBIDDEN", "insufficient role")
			return
		}

		c.Set("user_id", id)
		c.Set("role", tokenRole)
		c.Next()
	}
}

func AdminAuth(authService *services.AuthService) gin.HandlerFunc {
	return JWTAuth(authService, services.RoleAdmin)
}

func StudentAuth(authService *services.AuthService) gin.HandlerFunc {
	return JWTAuth(authService, services.RoleStudent)
}
