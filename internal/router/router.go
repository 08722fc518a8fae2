package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pantryplan/backend/config"
	"github.com/pantryplan/backend/internal/api"
	"github.com/pantryplan/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(db *gorm.DB) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	api.SetupAPI(router, db)

	return router
}
