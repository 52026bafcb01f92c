package lectures

import (
	"github.com/gin-gonic/gin"
	"github.com/lectern/classroom-api/api/auth"
	"github.com/lectern/classroom-api/api/types"
)

// RegisterClassroomRoutes registers lecture routes nested under a classroom
func RegisterClassroomRoutes(group *gin.RouterGroup, deps *types.Dependencies, uploadLimit gin.HandlerFunc) {
	group.GET("/:id/lectures", List(deps))
	group.POST("/:id/lectures", auth.RequireTeacher(), uploadLimit, Create(deps))
}

// RegisterRoutes registers lecture routes addressed by lecture ID
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies, uploadLimit gin.HandlerFunc) {
	group.GET("/:id", Get(deps))

	teacherOnly := group.Group("")
	teacherOnly.Use(auth.RequireTeacher())
	teacherOnly.PUT("/:id", uploadLimit, Update(deps))
	teacherOnly.DELETE("/:id", Delete(deps))
}
