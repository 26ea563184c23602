package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	domain "github.com/WhiteWolfWCY/Trimly/internal/domain/booking"
	"github.com/WhiteWolfWCY/Trimly/internal/httperr"
)

const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

// Claims carried by the access token.
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Auth validates the Bearer token and stores the caller identity in the
// gin context.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			httperr.Unauthorized(c, "unauthorized", "missing or malformed authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "unauthorized", "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// AdminOnly must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != domain.RoleAdmin {
			httperr.Forbidden(c, "unauthorized", "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Caller rebuilds the domain caller context from the gin context. Returns
// false when Auth did not run.
func Caller(c *gin.Context) (domain.CallerContext, bool) {
	id, ok := c.Get(CtxUserID)
	if !ok {
		return domain.CallerContext{}, false
	}
	userID, ok := id.(uint)
	if !ok {
		return domain.CallerContext{}, false
	}
	return domain.CallerContext{UserID: userID, Role: c.GetString(CtxRole)}, true
}
