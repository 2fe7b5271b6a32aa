package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olprod/olprod-backend/domain"
)

type ChatController struct {
	ChatUsecase domain.ChatUsecase
}

func NewChatController(uc domain.ChatUsecase) *ChatController {
	return &ChatController{ChatUsecase: uc}
}

func (c *ChatController) Complete(ctx *gin.Context) {
	var req domain.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Message == "" {
		ErrorResponse(ctx, http.StatusBadRequest, "MISSING_PARAMS", "message is required")
		return
	}

	reply := c.ChatUsecase.Complete(ctx.Request.Context(), req.Message)
	ctx.JSON(http.StatusOK, domain.ChatResponse{Response: reply})
}
