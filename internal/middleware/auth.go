package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UserIDKey is where the authenticated user ID lands in the gin context.
const UserIDKey = "userID"

// Claims mirrors the token shape issued by the auth service.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Auth resolves the caller's identity. A Bearer token is verified against
// the shared secret; the X-User-ID header is honored as a fallback for
// calls arriving through the gateway, which strips and validates tokens
// upstream. Requests with neither are rejected.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth := c.GetHeader("Authorization"); auth != "" && jwtSecret != "" {
			tokenString, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok {
				unauthorized(c, "INVALID_AUTH_HEADER")
				return
			}
			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid || claims.UserID == "" {
				unauthorized(c, "INVALID_TOKEN")
				return
			}
			c.Set(UserIDKey, claims.UserID)
			c.Next()
			return
		}

		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set(UserIDKey, userID)
			c.Next()
			return
		}

		unauthorized(c, "MISSING_USER_ID")
	}
}

func unauthorized(c *gin.Context, code string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": "Authentication required",
		"code":  code,
	})
	c.Abort()
}

// UserID fetches the authenticated user from the request context.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
