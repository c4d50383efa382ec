// Package router provides web page route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ithalar/team-registration/internal/auth/middleware"
	regService "github.com/ithalar/team-registration/internal/registration/service"
	reviewRepository "github.com/ithalar/team-registration/internal/review/repository"
	reviewService "github.com/ithalar/team-registration/internal/review/service"
	"github.com/ithalar/team-registration/internal/storage"
	"github.com/ithalar/team-registration/internal/web/handler"
)

// RegisterRoutes registers the public pages and the session-guarded admin
// pages on the engine.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, store storage.Store, logger *zap.SugaredLogger) {
	registration := regService.New(db, store, logger)
	review := reviewService.New(reviewRepository.New(db), logger)
	h := handler.New(registration, review, logger)

	r.GET("/", h.Landing)
	r.GET("/register", h.RegisterForm)
	r.POST("/register", h.RegisterSubmit)

	admin := r.Group("/admin", middleware.RequirePage)
	{
		admin.GET("/dashboard", h.Dashboard)
		admin.GET("/team/:id", h.TeamDetailPage)
		admin.POST("/team/:id/status", h.UpdateStatus)
	}
}
