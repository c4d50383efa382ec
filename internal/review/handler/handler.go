// Package handler provides HTTP handlers for admin review endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	regModel "github.com/ithalar/team-registration/internal/registration/model"
	"github.com/ithalar/team-registration/internal/review/service"
)

// Handler handles HTTP requests for admin review endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new review handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// StatusRequest is the body of the status update endpoint.
type StatusRequest struct {
	Status regModel.Status `json:"status" binding:"required"`
}

// ListTeams handles GET /api/admin/teams.
func (h *Handler) ListTeams(c *gin.Context) {
	teams, err := h.service.ListTeams(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing teams", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// SetStatus handles POST /api/admin/teams/:id/status and returns the
// refreshed team list.
func (h *Handler) SetStatus(c *gin.Context) {
	teamID := c.Param("id")

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	teams, err := h.service.SetStatus(c.Request.Context(), teamID, req.Status)
	if err != nil {
		if errors.Is(err, regModel.ErrInvalidStatus) {
			errorResponse(c, "INVALID_REQUEST", "status must be approved or rejected", http.StatusBadRequest)
			return
		}
		if errors.Is(err, regModel.ErrTeamNotFound) {
			errorResponse(c, "NOT_FOUND", "team not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error updating team status", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// TeamDetail handles GET /api/admin/teams/:id.
func (h *Handler) TeamDetail(c *gin.Context) {
	teamID := c.Param("id")

	detail, err := h.service.TeamDetail(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, regModel.ErrTeamNotFound) {
			errorResponse(c, "NOT_FOUND", "team not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error loading team detail", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// errorResponse writes a code/message error envelope.
func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	c.JSON(statusCode, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
