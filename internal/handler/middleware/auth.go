package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"shop-winback/internal/pkg/jwt"
	"shop-winback/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxOperatorKey = "operator"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		operator, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxOperatorKey, operator)
		c.Set("jwt_claims", map[string]any{
			"operator": operator,
			"role":     jwt.RoleOperator,
		})
		c.Next()
	}
}

func GetOperator(c *gin.Context) (string, bool) {
	operator, exists := c.Get(ctxOperatorKey)
	if !exists {
		return "", false
	}

	name, ok := operator.(string)
	return name, ok
}
