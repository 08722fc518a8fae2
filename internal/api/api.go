package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pantryplan/backend/internal/logger"
	"github.com/pantryplan/backend/internal/service"
)

// SetupAPI wires all resource handlers under /api.
func SetupAPI(router *gin.Engine, db *gorm.DB) {
	root := router.Group("/api")
	{
		NewIngredientHandler(service.NewIngredientService(db)).RegisterRoutes(root)
		NewRecipeHandler(service.NewRecipeService(db)).RegisterRoutes(root)
		NewMealScheduleHandler(service.NewMealScheduleService(db)).RegisterRoutes(root)
	}

	router.GET("/health", healthHandler(db))
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// parseID parses a numeric path parameter. A malformed value aborts the
// request with a 400.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto the HTTP error taxonomy:
// validation failures become 400, unknown identifiers 404, everything
// else a logged 500.
func respondError(c *gin.Context, err error) {
	switch {
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
