package bootstrap

import (
	"github.com/olprod/olprod-backend/internal/logger"
	"github.com/olprod/olprod-backend/mongo"
)

type Application struct {
	Env   *Env
	Mongo mongo.Client
}

func App() Application {
	app := &Application{}
	app.Env = NewEnv()

	logger.Init(logger.Config{
		ServiceName: "olprod-backend",
		Environment: app.Env.AppEnv,
		LogFilePath: app.Env.LogFilePath,
	})

	app.Mongo = NewMongoDatabase(app.Env)
	return *app
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
