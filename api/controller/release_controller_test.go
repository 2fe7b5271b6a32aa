package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olprod/olprod-backend/domain"
)

type stubReleaseUsecase struct {
	summaries []domain.ReleaseSummary
	summary   *domain.ReleaseSummary
	err       error

	updateReq *domain.UpdateReleaseRequest
}

func (s *stubReleaseUsecase) Create(context.Context, *domain.CreateReleaseRequest) (*domain.ReleaseSummary, error) {
	return s.summary, s.err
}

func (s *stubReleaseUsecase) List(context.Context, string) ([]domain.ReleaseSummary, error) {
	return s.summaries, s.err
}

func (s *stubReleaseUsecase) Update(_ context.Context, req *domain.UpdateReleaseRequest) error {
	s.updateReq = req
	return s.err
}

func (s *stubReleaseUsecase) Delete(context.Context, string, string) error {
	return s.err
}

func setupReleaseRouter(uc domain.ReleaseUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewReleaseController(uc)

	engine := gin.New()
	engine.GET("/api/releases", ctrl.List)
	engine.POST("/api/releases", ctrl.Create)
	engine.PUT("/api/releases", ctrl.Update)
	engine.DELETE("/api/releases", ctrl.Delete)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return recorder, decoded
}

func TestReleaseController_List(t *testing.T) {
	uc := &stubReleaseUsecase{
		summaries: []domain.ReleaseSummary{
			{ID: "a", Title: "One", Status: "Draft"},
			{ID: "b", Title: "Two", Status: "Published"},
		},
	}
	engine := setupReleaseRouter(uc)

	recorder, body := doJSON(t, engine, http.MethodGet, "/api/releases?userId=507f1f77bcf86cd799439011", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
	releases := body["releases"].([]interface{})
	assert.Len(t, releases, 2)
}

func TestReleaseController_ListMissingUserID(t *testing.T) {
	engine := setupReleaseRouter(&stubReleaseUsecase{})

	recorder, body := doJSON(t, engine, http.MethodGet, "/api/releases", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "MISSING_PARAMS", body["code"])
}

func TestReleaseController_Create(t *testing.T) {
	uc := &stubReleaseUsecase{
		summary: &domain.ReleaseSummary{ID: "a", Title: "Night Shift", Status: "Draft"},
	}
	engine := setupReleaseRouter(uc)

	recorder, body := doJSON(t, engine, http.MethodPost, "/api/releases",
		`{"userId":"507f1f77bcf86cd799439011","title":"Night Shift","genre":"Techno"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, body["success"])
	release := body["release"].(map[string]interface{})
	assert.Equal(t, "Draft", release["status"])
}

func TestReleaseController_CreateValidationError(t *testing.T) {
	uc := &stubReleaseUsecase{err: domain.NewValidationError("title and genre are required")}
	engine := setupReleaseRouter(uc)

	recorder, body := doJSON(t, engine, http.MethodPost, "/api/releases",
		`{"userId":"507f1f77bcf86cd799439011"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "INVALID_PARAMETERS", body["code"])
	assert.Equal(t, "title and genre are required", body["message"])
}

func TestReleaseController_CreateMalformedBody(t *testing.T) {
	engine := setupReleaseRouter(&stubReleaseUsecase{})

	recorder, body := doJSON(t, engine, http.MethodPost, "/api/releases", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "INVALID_BODY", body["code"])
}

func TestReleaseController_Update(t *testing.T) {
	uc := &stubReleaseUsecase{}
	engine := setupReleaseRouter(uc)

	recorder, body := doJSON(t, engine, http.MethodPut, "/api/releases",
		`{"userId":"507f1f77bcf86cd799439011","releaseId":"507f191e810c19729de860ea","title":"Renamed","description":null}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, body["success"])

	require.NotNil(t, uc.updateReq)
	assert.True(t, uc.updateReq.Title.Present)
	assert.Equal(t, "Renamed", uc.updateReq.Title.Value)
	assert.True(t, uc.updateReq.Description.Present, "explicit null is a present key")
	assert.False(t, uc.updateReq.Description.Valid)
	assert.False(t, uc.updateReq.Genre.Present, "absent keys must stay unset")
}

func TestReleaseController_UpdateNotFound(t *testing.T) {
	engine := setupReleaseRouter(&stubReleaseUsecase{err: domain.ErrReleaseNotFound})

	recorder, body := doJSON(t, engine, http.MethodPut, "/api/releases",
		`{"userId":"507f1f77bcf86cd799439011","releaseId":"507f191e810c19729de860ea","title":"x"}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "RELEASE_NOT_FOUND", body["code"])
}

func TestReleaseController_UpdateNoFields(t *testing.T) {
	engine := setupReleaseRouter(&stubReleaseUsecase{err: domain.ErrNoFieldsToUpdate})

	recorder, body := doJSON(t, engine, http.MethodPut, "/api/releases",
		`{"userId":"507f1f77bcf86cd799439011","releaseId":"507f191e810c19729de860ea"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "NO_FIELDS_TO_UPDATE", body["code"])
}

func TestReleaseController_Delete(t *testing.T) {
	engine := setupReleaseRouter(&stubReleaseUsecase{})

	recorder, body := doJSON(t, engine, http.MethodDelete, "/api/releases",
		`{"userId":"507f1f77bcf86cd799439011","releaseId":"507f191e810c19729de860ea"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, body["success"])
}

func TestReleaseController_StoreFailureStaysGeneric(t *testing.T) {
	engine := setupReleaseRouter(&stubReleaseUsecase{err: errors.New("mongo: socket closed")})

	recorder, body := doJSON(t, engine, http.MethodGet, "/api/releases?userId=507f1f77bcf86cd799439011", "")
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "SERVER_ERROR", body["code"])
	assert.Equal(t, "internal server error", body["message"])
	assert.NotContains(t, recorder.Body.String(), "socket")
}
