package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/charlietlyons/VitaTrack-API/utils"
)

// Context keys set for downstream handlers.
const (
	ContextEmail  = "email"
	ContextUserID = "userId"
)

// AuthMiddleware guards a route group with bearer-token auth. Missing
// or malformed header is 401; a present but unverifiable token is 403.
func AuthMiddleware(tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextEmail, claims.Email)
		c.Set(ContextUserID, claims.UserID)

		c.Next()
	}
}
