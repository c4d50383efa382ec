package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	regModel "github.com/ithalar/team-registration/internal/registration/model"
	"github.com/ithalar/team-registration/internal/registration/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Submit(ctx context.Context, draft *regModel.Draft, logo *service.LogoUpload) (*regModel.RegisterResponse, error) {
	args := m.Called(ctx, draft, logo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*regModel.RegisterResponse), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/register", h.Register)
	return r
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func sampleRequest() regModel.RegisterRequest {
	return regModel.RegisterRequest{
		TeamName:     "Ithalar FC",
		ManagerName:  "Kumar",
		ManagerPhone: "9876543210",
		Players:      []regModel.RosterEntry{{Name: "Ravi", Jersey: "7", Position: "Striker"}},
	}
}

func TestHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Submit", mock.Anything, mock.Anything, (*service.LogoUpload)(nil)).
			Return(&regModel.RegisterResponse{Team: regModel.Team{ID: "t-1", Status: regModel.StatusPending}}, nil).Once()
		r := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/register", jsonBody(t, sampleRequest()))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp regModel.RegisterResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "t-1", resp.Team.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation failure returns field map", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Submit", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &service.SubmissionError{
				Stage:  service.StageValidating,
				Fields: map[string]string{regModel.FieldTeamName: "Team name is required"},
				Err:    regModel.ErrInvalidDraft,
			}).Once()
		r := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/register", jsonBody(t, sampleRequest()))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "Team name is required", body.Errors[regModel.FieldTeamName])
	})

	t.Run("duplicate team", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Submit", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &service.SubmissionError{Stage: service.StageInsertingTeam, Err: regModel.ErrTeamExists}).Once()
		r := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/register", jsonBody(t, sampleRequest()))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "TEAM_EXISTS")
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Submit", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &service.SubmissionError{Stage: service.StageUploadingLogo, Err: errors.New("bucket down")}).Once()
		r := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/register", jsonBody(t, sampleRequest()))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	})

	t.Run("malformed json", func(t *testing.T) {
		mockSvc := new(mockService)
		r := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBufferString("{nope"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("multipart with logo", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Submit", mock.Anything, mock.Anything, mock.MatchedBy(func(logo *service.LogoUpload) bool {
			return logo != nil && logo.Filename == "logo.png"
		})).Return(&regModel.RegisterResponse{Team: regModel.Team{ID: "t-2"}}, nil).Once()
		r := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		payload, err := json.Marshal(sampleRequest())
		require.NoError(t, err)
		require.NoError(t, mw.WriteField("payload", string(payload)))
		fw, err := mw.CreateFormFile("logo", "logo.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("png-bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/register", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("multipart without logo", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Submit", mock.Anything, mock.Anything, (*service.LogoUpload)(nil)).
			Return(&regModel.RegisterResponse{Team: regModel.Team{ID: "t-3"}}, nil).Once()
		r := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		payload, err := json.Marshal(sampleRequest())
		require.NoError(t, err)
		require.NoError(t, mw.WriteField("payload", string(payload)))
		require.NoError(t, mw.Close())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/register", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockSvc.AssertExpectations(t)
	})
}
