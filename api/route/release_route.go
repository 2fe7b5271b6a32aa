package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/olprod/olprod-backend/api/controller"
	"github.com/olprod/olprod-backend/domain"
	"github.com/olprod/olprod-backend/mongo"
	"github.com/olprod/olprod-backend/repository"
	"github.com/olprod/olprod-backend/usecase"
)

func NewReleaseRouter(
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	repo := repository.NewReleaseRepository(db, domain.CollectionRelease)

	uc := usecase.NewReleaseUsecase(repo, timeout)
	ctrl := controller.NewReleaseController(uc)

	// One endpoint dispatched by verb, matching the web client's contract.
	releaseGroup := group.Group("/releases")
	{
		releaseGroup.GET("", ctrl.List)
		releaseGroup.POST("", ctrl.Create)
		releaseGroup.PUT("", ctrl.Update)
		releaseGroup.DELETE("", ctrl.Delete)
	}
}
