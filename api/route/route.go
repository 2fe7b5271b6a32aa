package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/olprod/olprod-backend/api/middleware"
	"github.com/olprod/olprod-backend/bootstrap"
	"github.com/olprod/olprod-backend/mongo"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, engine *gin.Engine) {
	engine.Use(middleware.Cors(), middleware.RequestID(), middleware.RequestLogger())
	engine.Static("/media", env.MediaDir)

	apiGroup := engine.Group("/api")

	NewAuthRouter(env, timeout, db, apiGroup)
	NewReleaseRouter(timeout, db, apiGroup)
	NewChatRouter(env, timeout, apiGroup)
	NewUploadRouter(env, apiGroup)
}
