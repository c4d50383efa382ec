// Package handler provides HTTP handlers for registration endpoints.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	regModel "github.com/ithalar/team-registration/internal/registration/model"
	"github.com/ithalar/team-registration/internal/registration/service"
)

// Handler handles HTTP requests for registration endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new registration handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /api/register.
//
// Accepts either a JSON body (no logo) or multipart/form-data with a JSON
// "payload" field and an optional "logo" file. Validation failures come back
// as 400 with a per-field error map.
func (h *Handler) Register(c *gin.Context) {
	req, logo, err := h.parseRequest(c)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}
	if logo != nil {
		defer logo.close()
	}

	var upload *service.LogoUpload
	if logo != nil {
		upload = &logo.LogoUpload
	}

	resp, err := h.service.Submit(c.Request.Context(), req.Draft(), upload)
	if err != nil {
		var subErr *service.SubmissionError
		if errors.As(err, &subErr) && subErr.Stage == service.StageValidating {
			validationResponse(c, subErr.Fields)
			return
		}
		if errors.Is(err, regModel.ErrTeamExists) {
			errorResponse(c, "TEAM_EXISTS", "team name is already registered", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error submitting registration", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// openedLogo pairs an upload with the close of its underlying file.
type openedLogo struct {
	service.LogoUpload
	closeFn func() error
}

func (l *openedLogo) close() {
	if l.closeFn != nil {
		_ = l.closeFn()
	}
}

func (h *Handler) parseRequest(c *gin.Context) (*regModel.RegisterRequest, *openedLogo, error) {
	var req regModel.RegisterRequest

	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, nil, err
		}
		return &req, nil, nil
	}

	if err := json.Unmarshal([]byte(c.PostForm("payload")), &req); err != nil {
		return nil, nil, err
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		// No logo attached is fine.
		return &req, nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	return &req, &openedLogo{
		LogoUpload: service.LogoUpload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Reader:      file,
		},
		closeFn: file.Close,
	}, nil
}
