// Package handler serves the public registration pages and the admin
// dashboard as server-rendered HTML.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ithalar/team-registration/internal/auth/middleware"
	regModel "github.com/ithalar/team-registration/internal/registration/model"
	regService "github.com/ithalar/team-registration/internal/registration/service"
	reviewService "github.com/ithalar/team-registration/internal/review/service"
)

// Positions offered by the roster form, in display order.
var Positions = []string{"Goalkeeper", "Defender", "Midfielder", "Forward"}

// Roster actions posted by the registration form buttons.
const (
	actionAdd    = "add"
	actionSubmit = "submit"
	removePrefix = "remove:"
)

// Handler renders the public and admin HTML pages.
type Handler struct {
	registration regService.Service
	review       reviewService.Service
	logger       *zap.SugaredLogger
}

// New creates a new web handler instance.
func New(registration regService.Service, review reviewService.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{registration: registration, review: review, logger: logger}
}

// Landing handles GET /.
func (h *Handler) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "landing.html", gin.H{})
}

// RegisterForm handles GET /register with a fresh draft.
func (h *Handler) RegisterForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, regModel.NewDraft(), nil, "")
}

// RegisterSubmit handles POST /register. The form posts back for every
// roster edit: the "action" field distinguishes adding a row, removing a
// row, and submitting the whole draft.
func (h *Handler) RegisterSubmit(c *gin.Context) {
	draft := draftFromForm(c)
	action := c.PostForm("action")

	switch {
	case action == actionAdd:
		draft.AddEntry()
		h.renderForm(c, http.StatusOK, draft, nil, "")
	case strings.HasPrefix(action, removePrefix):
		if i, err := strconv.Atoi(strings.TrimPrefix(action, removePrefix)); err == nil {
			draft.RemoveEntry(i)
		}
		h.renderForm(c, http.StatusOK, draft, nil, "")
	default:
		h.submit(c, draft)
	}
}

func (h *Handler) submit(c *gin.Context, draft *regModel.Draft) {
	var logo *regService.LogoUpload
	if file, err := c.FormFile("logo"); err == nil && file != nil {
		opened, err := file.Open()
		if err != nil {
			h.logger.Errorw("error opening uploaded logo", "error", err)
			h.renderForm(c, http.StatusInternalServerError, draft, nil,
				"Could not read the uploaded logo, please try again")
			return
		}
		defer opened.Close()
		logo = &regService.LogoUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Reader:      opened,
		}
	}

	resp, err := h.registration.Submit(c.Request.Context(), draft, logo)
	if err != nil {
		var subErr *regService.SubmissionError
		switch {
		case errors.As(err, &subErr) && subErr.Stage == regService.StageValidating:
			h.renderForm(c, http.StatusBadRequest, draft, subErr.Fields, "")
		case errors.Is(err, regModel.ErrTeamExists):
			h.renderForm(c, http.StatusBadRequest, draft, map[string]string{
				regModel.FieldTeamName: "A team with this name is already registered",
			}, "")
		default:
			h.logger.Errorw("error submitting registration", "error", err)
			h.renderForm(c, http.StatusInternalServerError, draft, nil,
				"Something went wrong, please try again later")
		}
		return
	}

	draft.Reset()
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Draft":     draft,
		"Positions": Positions,
		"Errors":    map[string]string(nil),
		"Success":   "Team " + resp.Team.TeamName + " registered! We will review your application shortly.",
	})
}

// Dashboard handles GET /admin/dashboard. A failed list read is logged and
// the page renders with no teams rather than erroring out.
func (h *Handler) Dashboard(c *gin.Context) {
	teams, err := h.review.ListTeams(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing teams for dashboard", "error", err)
		teams = nil
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Teams": teams,
		"Email": middleware.AuthenticatedEmail(c),
	})
}

// TeamDetailPage handles GET /admin/team/:id.
func (h *Handler) TeamDetailPage(c *gin.Context) {
	detail, err := h.review.TeamDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, regModel.ErrTeamNotFound) {
			c.HTML(http.StatusNotFound, "team_detail.html", gin.H{"NotFound": true})
			return
		}
		h.logger.Errorw("error loading team detail", "team_id", c.Param("id"), "error", err)
		c.HTML(http.StatusInternalServerError, "team_detail.html", gin.H{"LoadError": true})
		return
	}
	c.HTML(http.StatusOK, "team_detail.html", gin.H{
		"Team":    detail.Team,
		"Players": detail.Players,
		"Email":   middleware.AuthenticatedEmail(c),
	})
}

// UpdateStatus handles POST /admin/team/:id/status from the dashboard's
// approve/reject buttons and redirects back to the refreshed dashboard.
func (h *Handler) UpdateStatus(c *gin.Context) {
	teamID := c.Param("id")
	status := regModel.Status(c.PostForm("status"))

	if _, err := h.review.SetStatus(c.Request.Context(), teamID, status); err != nil {
		h.logger.Errorw("error updating team status",
			"team_id", teamID, "status", status, "error", err)
	}
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *Handler) renderForm(c *gin.Context, code int, draft *regModel.Draft, fieldErrs map[string]string, message string) {
	if fieldErrs == nil {
		fieldErrs = map[string]string{}
	}
	c.HTML(code, "register.html", gin.H{
		"Draft":     draft,
		"Positions": Positions,
		"Errors":    fieldErrs,
		"Message":   message,
	})
}

// draftFromForm rebuilds the draft from the posted form. The three player
// arrays are positional; the shortest one bounds the roster length.
func draftFromForm(c *gin.Context) *regModel.Draft {
	draft := &regModel.Draft{
		TeamName:     c.PostForm("team_name"),
		ManagerName:  c.PostForm("manager_name"),
		ManagerPhone: c.PostForm("manager_phone"),
	}

	names := c.PostFormArray("player_name")
	jerseys := c.PostFormArray("player_jersey")
	positions := c.PostFormArray("player_position")
	for i := range names {
		entry := regModel.RosterEntry{Name: names[i]}
		if i < len(jerseys) {
			entry.Jersey = jerseys[i]
		}
		if i < len(positions) {
			entry.Position = positions[i]
		}
		draft.Roster = append(draft.Roster, entry)
	}
	if len(draft.Roster) == 0 {
		draft.Roster = []regModel.RosterEntry{{}}
	}
	return draft
}
