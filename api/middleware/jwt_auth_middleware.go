package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/olprod/olprod-backend/internal/tokenutil"
)

// JwtAuth requires a valid Bearer token and exposes the token's user id to
// downstream handlers as "user_id".
func JwtAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		parts := strings.Fields(ctx.GetHeader("Authorization"))
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"code":    "UNAUTHORIZED",
				"message": "authorization token is required",
			})
			return
		}

		userID, err := tokenutil.ExtractIDFromToken(parts[1], secret)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"code":    "UNAUTHORIZED",
				"message": "invalid or expired token",
			})
			return
		}

		ctx.Set("user_id", userID)
		ctx.Next()
	}
}
