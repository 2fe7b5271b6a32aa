package bootstrap

import (
	"context"
	"time"

	"github.com/olprod/olprod-backend/internal/logger"
	"github.com/olprod/olprod-backend/mongo"
)

func NewMongoDatabase(env *Env) mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.NewClient(env.DBUri)
	if err != nil {
		logger.Fatal(logger.EventDBConnection, "failed to create mongo client", logger.Fields("error", err.Error()))
	}

	if err := client.Connect(ctx); err != nil {
		logger.Fatal(logger.EventDBConnection, "failed to connect to mongodb", logger.Fields("error", err.Error()))
	}

	if err := client.Ping(ctx); err != nil {
		logger.Fatal(logger.EventDBConnection, "failed to ping mongodb", logger.Fields("error", err.Error()))
	}

	logger.Info(logger.EventDBConnection, "connected to mongodb", nil)
	return client
}

func CloseMongoDBConnection(client mongo.Client) {
	if client == nil {
		return
	}

	if err := client.Disconnect(context.TODO()); err != nil {
		logger.Error(logger.EventShutdown, "failed to close mongodb connection", logger.Fields("error", err.Error()))
		return
	}

	logger.Info(logger.EventShutdown, "connection to mongodb closed", nil)
}
