package routes

import (
	"photoshoot_backend/internal/handlers"
	"photoshoot_backend/internal/logger"
	"photoshoot_backend/internal/metrics"

	_ "photoshoot_backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes mounts the booking API at the root together with the
// operational endpoints.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, m *metrics.Metrics) {
	api := ginRouter.Group("")
	for _, h := range appHandlers.All() {
		h.RegisterRoutes(api)
	}

	if m != nil {
		ginRouter.GET("/metrics", gin.WrapH(m.Handler()))
	}
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Debug("Routes registered", "count", len(ginRouter.Routes()))
}
