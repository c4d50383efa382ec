// Package router provides review module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ithalar/team-registration/internal/review/handler"
	"github.com/ithalar/team-registration/internal/review/repository"
	"github.com/ithalar/team-registration/internal/review/service"
)

// RegisterRoutes registers review module routes behind the session guard.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, guard gin.HandlerFunc, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	admin := r.Group("/api/admin", guard)
	admin.GET("/teams", h.ListTeams)
	admin.GET("/teams/:id", h.TeamDetail)
	admin.POST("/teams/:id/status", h.SetStatus)
}
