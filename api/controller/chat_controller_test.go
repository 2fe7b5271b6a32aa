package controller

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubChatUsecase struct {
	reply string
}

func (s *stubChatUsecase) Complete(context.Context, string) string {
	return s.reply
}

func setupChatRouter(uc *stubChatUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewChatController(uc)

	engine := gin.New()
	engine.POST("/api/support/chat", ctrl.Complete)
	return engine
}

func TestChatController_Complete(t *testing.T) {
	engine := setupChatRouter(&stubChatUsecase{reply: "Use the dashboard upload form."})

	recorder, body := doJSON(t, engine, http.MethodPost, "/api/support/chat",
		`{"message":"How do I upload?"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Use the dashboard upload form.", body["response"])
}

func TestChatController_MissingMessage(t *testing.T) {
	engine := setupChatRouter(&stubChatUsecase{reply: "unused"})

	for _, payload := range []string{`{}`, `{"message":""}`, `not json`} {
		recorder, body := doJSON(t, engine, http.MethodPost, "/api/support/chat", payload)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, payload)
		assert.Equal(t, "MISSING_PARAMS", body["code"], payload)
	}
}
