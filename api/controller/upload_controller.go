package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olprod/olprod-backend/domain"
)

// Uploads above this size are rejected before the body is read into memory.
const maxUploadBytes = 100 << 20

type UploadController struct {
	UploadUsecase domain.UploadUsecase
}

func NewUploadController(uc domain.UploadUsecase) *UploadController {
	return &UploadController{UploadUsecase: uc}
}

func (c *UploadController) Upload(ctx *gin.Context) {
	kind := ctx.PostForm("kind")
	if kind == "" {
		ErrorResponse(ctx, http.StatusBadRequest, "MISSING_PARAMS", "kind is required")
		return
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "MISSING_PARAMS", "file is required")
		return
	}
	if header.Size > maxUploadBytes {
		ErrorResponse(ctx, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds the upload limit")
		return
	}

	file, err := header.Open()
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", "cannot read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_BODY", "cannot read uploaded file")
		return
	}

	result, err := c.UploadUsecase.Store(ctx.Request.Context(), kind, data)
	if err != nil {
		respondError(ctx, err)
		return
	}

	SuccessResponse(ctx, "upload", result, 1)
}
