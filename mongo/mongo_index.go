package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/olprod/olprod-backend/domain"
	"github.com/olprod/olprod-backend/internal/logger"
)

func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Release Collection: listing is always owner-scoped, newest first.
	releaseCollection := db.Collection(domain.CollectionRelease)
	createIndex(ctx, releaseCollection, bson.D{
		{Key: "user_id", Value: 1},
		{Key: "created_at", Value: -1},
	}, "user_created_compound", false)
	createIndex(ctx, releaseCollection, bson.D{{Key: "status", Value: 1}}, "status", false)

	// User Collection
	userCollection := db.Collection(domain.CollectionUser)
	createIndex(ctx, userCollection, bson.D{{Key: "email", Value: 1}}, "email_unique", true)
}

func createIndex(
	ctx context.Context,
	collection Collection,
	keys bson.D,
	name string,
	unique bool,
) {
	opts := options.Index().SetName(name)
	if unique {
		opts = opts.SetUnique(true)
	}
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Warn(logger.EventDBConnection, "failed to create index", logger.Fields(
			"index", name,
			"error", err.Error(),
		))
	}
}
