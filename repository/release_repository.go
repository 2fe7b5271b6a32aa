package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/olprod/olprod-backend/domain"
	"github.com/olprod/olprod-backend/mongo"
)

var revenueZero, _ = primitive.ParseDecimal128("0.00")

type releaseRepository struct {
	db         mongo.Database
	collection string
}

func NewReleaseRepository(db mongo.Database, collection string) domain.ReleaseRepository {
	return &releaseRepository{
		db:         db,
		collection: collection,
	}
}

func (r *releaseRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Release, error) {
	coll := r.db.Collection(r.collection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}

	releases := make([]domain.Release, 0)
	if err := cursor.All(ctx, &releases); err != nil {
		return nil, fmt.Errorf("failed to decode releases: %w", err)
	}

	return releases, nil
}

// Create inserts a new release for its owner. Lifecycle state and metrics
// are forced here: a brand-new release is always a Draft with zero streams
// and zero revenue, whatever the caller supplied.
func (r *releaseRepository) Create(ctx context.Context, release *domain.Release) error {
	now := time.Now().UTC()
	release.ID = primitive.NewObjectID()
	release.Status = domain.StatusDraft
	release.Streams = 0
	release.Revenue = revenueZero
	release.CreatedAt = now
	release.UpdatedAt = now

	coll := r.db.Collection(r.collection)
	if _, err := coll.InsertOne(ctx, release); err != nil {
		return fmt.Errorf("failed to insert release: %w", err)
	}

	return nil
}

// ApplyMutation executes a pre-compiled partial mutation scoped to
// (releaseID, ownerID). A missing row is a normal false result; wrong id and
// wrong owner produce the same outcome.
func (r *releaseRepository) ApplyMutation(ctx context.Context, ownerID, releaseID primitive.ObjectID, mutation bson.D) (bool, error) {
	coll := r.db.Collection(r.collection)

	filter := bson.M{"_id": releaseID, "user_id": ownerID}
	result, err := coll.UpdateOne(ctx, filter, bson.M{"$set": mutation})
	if err != nil {
		return false, fmt.Errorf("failed to update release: %w", err)
	}

	return result.MatchedCount > 0, nil
}

// SoftDelete marks the release Deleted without removing the row. Repeated
// calls and unknown ids succeed silently.
func (r *releaseRepository) SoftDelete(ctx context.Context, ownerID, releaseID primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	filter := bson.M{"_id": releaseID, "user_id": ownerID}
	update := bson.M{"$set": bson.M{
		"status":     domain.StatusDeleted,
		"updated_at": time.Now().UTC(),
	}}
	if _, err := coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to soft delete release: %w", err)
	}

	return nil
}
