package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/olprod/olprod-backend/api/controller"
	"github.com/olprod/olprod-backend/api/middleware"
	"github.com/olprod/olprod-backend/bootstrap"
	"github.com/olprod/olprod-backend/domain"
	"github.com/olprod/olprod-backend/mongo"
	"github.com/olprod/olprod-backend/repository"
	"github.com/olprod/olprod-backend/usecase"
)

func NewAuthRouter(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	repo := repository.NewUserRepository(db, domain.CollectionUser)

	expiry := time.Duration(env.AccessTokenExpiryHour) * time.Hour
	uc := usecase.NewAuthUsecase(repo, env.AccessTokenSecret, expiry, timeout)
	ctrl := controller.NewAuthController(uc)

	limiter := middleware.NewRateLimiter(10, time.Minute)

	authGroup := group.Group("/auth", limiter.Middleware())
	{
		authGroup.POST("/signup", ctrl.Signup)
		authGroup.POST("/login", ctrl.Login)
		authGroup.POST("/reset-password", ctrl.ResetPassword)
	}
}
