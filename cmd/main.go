package main

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/olprod/olprod-backend/api/route"
	"github.com/olprod/olprod-backend/bootstrap"
	"github.com/olprod/olprod-backend/internal/logger"
	"github.com/olprod/olprod-backend/mongo"
)

func main() {
	app := bootstrap.App()
	env := app.Env
	defer app.CloseDBConnection()

	db := app.Mongo.Database(env.DBName)
	mongo.CreateIndexes(db)

	timeout := time.Duration(env.ContextTimeout) * time.Second

	if env.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()
	route.Setup(env, timeout, db, engine)

	logger.Info(logger.EventStartup, "olprod backend listening", logger.Fields("address", env.ServerAddress))
	if err := engine.Run(env.ServerAddress); err != nil {
		logger.Fatal(logger.EventShutdown, "server stopped", logger.Fields("error", err.Error()))
	}
}
