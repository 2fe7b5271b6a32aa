package controller

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/olprod/olprod-backend/domain"
)

type stubAuthUsecase struct {
	resp *domain.AuthResponse
	err  error
}

func (s *stubAuthUsecase) Signup(context.Context, *domain.SignupRequest) (*domain.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthUsecase) Login(context.Context, *domain.LoginRequest) (*domain.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthUsecase) ResetPassword(context.Context, *domain.ResetPasswordRequest) error {
	return s.err
}

func setupAuthRouter(uc domain.AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewAuthController(uc)

	engine := gin.New()
	engine.POST("/api/auth/signup", ctrl.Signup)
	engine.POST("/api/auth/login", ctrl.Login)
	engine.POST("/api/auth/reset-password", ctrl.ResetPassword)
	return engine
}

func TestAuthController_Signup(t *testing.T) {
	uc := &stubAuthUsecase{
		resp: &domain.AuthResponse{
			User:        domain.UserProfile{ID: "a", Email: "artist@example.com", ArtistName: "Nova"},
			AccessToken: "jwt-token",
		},
	}
	engine := setupAuthRouter(uc)

	recorder, body := doJSON(t, engine, http.MethodPost, "/api/auth/signup",
		`{"email":"artist@example.com","password":"s3cret","artistName":"Nova"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "jwt-token", body["accessToken"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "Nova", user["artistName"])
}

func TestAuthController_SignupEmailTaken(t *testing.T) {
	engine := setupAuthRouter(&stubAuthUsecase{err: domain.ErrEmailTaken})

	recorder, body := doJSON(t, engine, http.MethodPost, "/api/auth/signup",
		`{"email":"artist@example.com","password":"s3cret","artistName":"Nova"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "EMAIL_TAKEN", body["code"])
}

func TestAuthController_LoginFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"unknown email", domain.ErrEmailNotFound, "EMAIL_NOT_REGISTERED"},
		{"wrong password", domain.ErrWrongPassword, "WRONG_PASSWORD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := setupAuthRouter(&stubAuthUsecase{err: tt.err})

			recorder, body := doJSON(t, engine, http.MethodPost, "/api/auth/login",
				`{"email":"artist@example.com","password":"guess"}`)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Equal(t, tt.code, body["code"])
		})
	}
}

func TestAuthController_ResetPassword(t *testing.T) {
	engine := setupAuthRouter(&stubAuthUsecase{})

	recorder, body := doJSON(t, engine, http.MethodPost, "/api/auth/reset-password",
		`{"email":"artist@example.com","newPassword":"brand-new"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "password changed", body["message"])
}
