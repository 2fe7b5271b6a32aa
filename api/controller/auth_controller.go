package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olprod/olprod-backend/domain"
)

type AuthController struct {
	AuthUsecase domain.AuthUsecase
}

func NewAuthController(uc domain.AuthUsecase) *AuthController {
	return &AuthController{AuthUsecase: uc}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var req domain.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		return
	}

	resp, err := c.AuthUsecase.Signup(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"user":        resp.User,
		"accessToken": resp.AccessToken,
	})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req domain.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		return
	}

	resp, err := c.AuthUsecase.Login(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"user":        resp.User,
		"accessToken": resp.AccessToken,
	})
}

func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req domain.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		return
	}

	if err := c.AuthUsecase.ResetPassword(ctx.Request.Context(), &req); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "password changed"})
}
