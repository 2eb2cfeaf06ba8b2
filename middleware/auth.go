package middleware

import (
	"net/http"
	"strings"

	"ecommerce-backend/services"

	"github.com/gin-gonic/gin"
)

// Context keys set by Authenticate.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// bearerToken pulls the token from the Authorization header or falls back to
// the "token" cookie set by the browser login flow.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

// Authenticate validates the request token and stores the subject ID and
// role on the context. When roles are given, the token's role must be one of
// them.
func Authenticate(secret []byte, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication token missing."})
			c.Abort()
			return
		}

		claims, err := services.ParseToken(secret, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token."})
			c.Abort()
			return
		}

		userID, _ := claims["user_id"].(string)
		role, _ := claims["role"].(string)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token."})
			c.Abort()
			return
		}

		if len(roles) > 0 {
			allowed := false
			for _, r := range roles {
				if role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied."})
				c.Abort()
				return
			}
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)
		c.Next()
	}
}
