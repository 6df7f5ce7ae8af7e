package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// usernameKey is the gin context key the middleware stores the verified
// admin username under.
const usernameKey = "auth.username"

// RequireAuth gates a route group behind a valid bearer token. Every
// registrant endpoint sits behind this; only login and health are public.
func RequireAuth(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, errMsg := extractBearerToken(c.GetHeader("Authorization"))
		if errMsg != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": errMsg})
			return
		}

		username, err := issuer.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		c.Set(usernameKey, username)
		c.Next()
	}
}

// UsernameFromContext returns the username RequireAuth verified, or "".
func UsernameFromContext(c *gin.Context) string {
	username, _ := c.Value(usernameKey).(string)
	return username
}

func extractBearerToken(authHeader string) (string, string) {
	if authHeader == "" {
		return "", "missing authorization header"
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "invalid authorization header format"
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", "empty token"
	}
	return token, ""
}
