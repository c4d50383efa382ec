//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ithalar/team-registration/internal/auth/middleware"
	authModel "github.com/ithalar/team-registration/internal/auth/model"
	authRouter "github.com/ithalar/team-registration/internal/auth/router"
	regModel "github.com/ithalar/team-registration/internal/registration/model"
	registrationRouter "github.com/ithalar/team-registration/internal/registration/router"
	reviewRouter "github.com/ithalar/team-registration/internal/review/router"
	"github.com/ithalar/team-registration/internal/storage"
	webRouter "github.com/ithalar/team-registration/internal/web/router"
)

const (
	adminEmail    = "admin@ithalar.club"
	adminPassword = "changeme123"
)

// testApp is the full application wired against an in-memory database and a
// temp-dir blob store, exactly as main assembles it.
type testApp struct {
	router *gin.Engine
	db     *gorm.DB
}

func setupApp(t *testing.T) *testApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&regModel.Team{}, &regModel.Player{}, &authModel.AdminUser{}))

	store, err := storage.NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	logger := zap.NewNop().Sugar()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("0123456789abcdef"))))

	authSvc := authRouter.RegisterRoutes(r, db, logger)
	registrationRouter.RegisterRoutes(r, db, store, logger)
	reviewRouter.RegisterRoutes(r, db, middleware.RequireAPI, logger)
	webRouter.RegisterRoutes(r, db, store, logger)

	require.NoError(t, authSvc.EnsureAdmin(context.Background(), adminEmail, adminPassword))

	return &testApp{router: r, db: db}
}

// login posts the admin credentials and returns the session cookies.
func (a *testApp) login(t *testing.T) []*http.Cookie {
	t.Helper()

	form := url.Values{}
	form.Set("email", adminEmail)
	form.Set("password", adminPassword)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	a.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/dashboard", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

// doJSON performs a JSON request with optional session cookies.
func (a *testApp) doJSON(t *testing.T, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	a.router.ServeHTTP(w, req)
	return w
}

// validRegistration builds a registration request with exactly eleven players.
func validRegistration(teamName string) *regModel.RegisterRequest {
	names := []string{
		"Arjun Menon", "Dev Patel", "Kiran Nair", "Rahul Iyer", "Vikram Shetty",
		"Sanjay Pillai", "Nikhil Das", "Aman Verma", "Rohit Kulkarni", "Farhan Ali",
		"Joseph George",
	}
	players := make([]regModel.RosterEntry, 0, len(names))
	for i, name := range names {
		position := "Midfielder"
		switch {
		case i == 0:
			position = "Goalkeeper"
		case i < 5:
			position = "Defender"
		case i > 8:
			position = "Forward"
		}
		players = append(players, regModel.RosterEntry{
			Name:     name,
			Jersey:   strconv.Itoa(i + 1),
			Position: position,
		})
	}
	return &regModel.RegisterRequest{
		TeamName:     teamName,
		ManagerName:  "Asha Rao",
		ManagerPhone: "9876543210",
		Players:      players,
	}
}
