package classrooms

import (
	"github.com/gin-gonic/gin"
	"github.com/lectern/classroom-api/api/auth"
	"github.com/lectern/classroom-api/api/types"
)

// RegisterRoutes registers classroom routes. Reads are open to any
// authenticated user; mutations require the teacher role.
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("", List(deps))
	group.GET("/:id", Get(deps))

	teacherOnly := group.Group("")
	teacherOnly.Use(auth.RequireTeacher())
	teacherOnly.POST("", Create(deps))
	teacherOnly.PUT("/:id", Update(deps))
	teacherOnly.DELETE("/:id", Delete(deps))
}
