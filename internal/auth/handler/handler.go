// Package handler provides the admin login and logout endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ithalar/team-registration/internal/auth/middleware"
	authModel "github.com/ithalar/team-registration/internal/auth/model"
	"github.com/ithalar/team-registration/internal/auth/service"
)

// Handler handles admin login and logout.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// LoginPage handles GET /admin/login.
func (h *Handler) LoginPage(c *gin.Context) {
	// An already authenticated admin goes straight to the dashboard.
	if middleware.AuthenticatedEmail(c) != "" {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login handles POST /admin/login with email/password form fields.
func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.service.Login(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, authModel.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"Error": "Invalid email or password",
				"Email": email,
			})
			return
		}
		h.logger.Errorw("error during admin login", "error", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Internal error, please try again later",
			"Email": email,
		})
		return
	}

	if err := middleware.SetAuthenticated(c, user.Email); err != nil {
		h.logger.Errorw("error saving admin session", "error", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Internal error, please try again later",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout handles POST /admin/logout.
func (h *Handler) Logout(c *gin.Context) {
	if err := middleware.ClearAuthenticated(c); err != nil {
		h.logger.Errorw("error clearing admin session", "error", err)
	}
	c.Redirect(http.StatusFound, "/admin/login")
}
