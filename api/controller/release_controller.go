package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olprod/olprod-backend/domain"
)

type ReleaseController struct {
	ReleaseUsecase domain.ReleaseUsecase
}

func NewReleaseController(uc domain.ReleaseUsecase) *ReleaseController {
	return &ReleaseController{ReleaseUsecase: uc}
}

func (c *ReleaseController) List(ctx *gin.Context) {
	userID := ctx.Query("userId")
	if userID == "" {
		ErrorResponse(ctx, http.StatusBadRequest, "MISSING_PARAMS", "userId is required")
		return
	}

	releases, err := c.ReleaseUsecase.List(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	SuccessResponse(ctx, "releases", releases, len(releases))
}

func (c *ReleaseController) Create(ctx *gin.Context) {
	var req domain.CreateReleaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		return
	}

	release, err := c.ReleaseUsecase.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	SuccessResponse(ctx, "release", release, 1)
}

func (c *ReleaseController) Update(ctx *gin.Context) {
	var req domain.UpdateReleaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		return
	}

	if err := c.ReleaseUsecase.Update(ctx.Request.Context(), &req); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func (c *ReleaseController) Delete(ctx *gin.Context) {
	var req struct {
		UserID    string `json:"userId"`
		ReleaseID string `json:"releaseId"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		return
	}

	if err := c.ReleaseUsecase.Delete(ctx.Request.Context(), req.UserID, req.ReleaseID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
