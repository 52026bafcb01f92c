package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/lectern/classroom-api/api/types"
)

// RegisterRoutes registers the public auth routes on the given group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.POST("/register", Register(deps))
	group.POST("/login", Login(deps))
}

// RegisterProtectedRoutes registers auth routes that require a valid token
func RegisterProtectedRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("/me", Me(deps))
}
