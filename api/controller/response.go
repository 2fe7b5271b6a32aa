package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olprod/olprod-backend/domain"
)

func ErrorResponse(ctx *gin.Context, status int, code, message string) {
	ctx.JSON(status, gin.H{
		"success": false,
		"code":    code,
		"message": message,
	})
}

func SuccessResponse(ctx *gin.Context, key string, data interface{}, count int) {
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		key:       data,
		"count":   count,
	})
}

// respondError maps the domain failure taxonomy to transport codes. Store
// failures stay generic so internal error text never reaches the client.
func respondError(ctx *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMETERS", verr.Message)
	case errors.Is(err, domain.ErrNoFieldsToUpdate):
		ErrorResponse(ctx, http.StatusBadRequest, "NO_FIELDS_TO_UPDATE", "no fields to update")
	case errors.Is(err, domain.ErrReleaseNotFound):
		ErrorResponse(ctx, http.StatusNotFound, "RELEASE_NOT_FOUND", "release not found")
	case errors.Is(err, domain.ErrEmailTaken):
		ErrorResponse(ctx, http.StatusBadRequest, "EMAIL_TAKEN", "email already registered")
	case errors.Is(err, domain.ErrEmailNotFound):
		ErrorResponse(ctx, http.StatusBadRequest, "EMAIL_NOT_REGISTERED", "email is not registered")
	case errors.Is(err, domain.ErrWrongPassword):
		ErrorResponse(ctx, http.StatusBadRequest, "WRONG_PASSWORD", "wrong password")
	case errors.Is(err, domain.ErrUnsupportedMedia):
		ErrorResponse(ctx, http.StatusBadRequest, "UNSUPPORTED_MEDIA", "unsupported media type")
	default:
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", "internal server error")
	}
}
