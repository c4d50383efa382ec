// Package router provides registration module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ithalar/team-registration/internal/registration/handler"
	"github.com/ithalar/team-registration/internal/registration/service"
	"github.com/ithalar/team-registration/internal/storage"
)

// RegisterRoutes registers registration module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, store storage.Store, logger *zap.SugaredLogger) {
	svc := service.New(db, store, logger)
	h := handler.New(svc, logger)

	r.POST("/api/register", h.Register)
}
