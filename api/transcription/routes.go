package transcription

import (
	"github.com/gin-gonic/gin"
	"github.com/lectern/classroom-api/api/types"
)

// RegisterRoutes registers transcription routes on the given group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("", List(deps))
	group.GET("/:id", Get(deps))
	group.POST("/:id/transcribe", Request(deps))
	group.DELETE("/:id", Delete(deps))
}
