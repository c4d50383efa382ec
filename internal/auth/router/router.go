// Package router provides auth module route registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ithalar/team-registration/internal/auth/handler"
	"github.com/ithalar/team-registration/internal/auth/repository"
	"github.com/ithalar/team-registration/internal/auth/service"
)

// RegisterRoutes registers login/logout routes and returns the auth service
// so the caller can bootstrap the first admin account.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) service.Service {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/admin/login", h.LoginPage)
	r.POST("/admin/login", h.Login)
	r.POST("/admin/logout", h.Logout)

	return svc
}
