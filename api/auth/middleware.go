package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lectern/classroom-api/api/types"
	"github.com/lectern/classroom-api/internal/models"
)

const (
	// ContextUserID is the gin context key for the authenticated user ID
	ContextUserID = "user_id"
	// ContextUserRole is the gin context key for the authenticated user role
	ContextUserRole = "user_role"
)

// Middleware validates the bearer token and stores the user identity on
// the request context
func Middleware(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "authorization header must be a bearer token")
			return
		}

		claims, err := deps.AuthService.Validate(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

// RequireTeacher rejects requests from users without the teacher or admin role
func RequireTeacher() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		if role != string(models.UserRoleTeacher) && role != string(models.UserRoleAdmin) {
			c.JSON(http.StatusForbidden, types.ErrorResponse{
				Status:  "error",
				Message: "teacher role required",
				Code:    "FORBIDDEN",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user ID from the context
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, types.ErrorResponse{
		Status:  "error",
		Message: message,
		Code:    "UNAUTHORIZED",
	})
	c.Abort()
}
