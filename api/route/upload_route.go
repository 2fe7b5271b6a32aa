package route

import (
	"github.com/gin-gonic/gin"

	"github.com/olprod/olprod-backend/api/controller"
	"github.com/olprod/olprod-backend/api/middleware"
	"github.com/olprod/olprod-backend/bootstrap"
	"github.com/olprod/olprod-backend/usecase"
)

func NewUploadRouter(
	env *bootstrap.Env,
	group *gin.RouterGroup,
) {
	uc := usecase.NewUploadUsecase(usecase.UploadConfig{
		MediaDir: env.MediaDir,
	})
	ctrl := controller.NewUploadController(uc)

	// Uploads are the one surface that requires a signed-in artist.
	group.POST("/releases/upload", middleware.JwtAuth(env.AccessTokenSecret), ctrl.Upload)
}
