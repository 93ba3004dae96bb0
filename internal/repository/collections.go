package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// ensureCollection creates the collection if it does not exist yet, so a
// brand-new database needs no pre-provisioning. Best effort: failures are
// logged and swallowed, the main operation proceeds and fails on its own if
// the store is truly unreachable.
func ensureCollection(ctx context.Context, db *mongo.Database, name string, logger *zap.Logger) {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		logger.Warn("failed to list collections",
			zap.String("collection", name), zap.Error(err))
		return
	}
	if len(names) > 0 {
		return
	}
	if err := db.CreateCollection(ctx, name); err != nil {
		logger.Warn("failed to create collection",
			zap.String("collection", name), zap.Error(err))
		return
	}
	logger.Info("created empty collection", zap.String("collection", name))
}

// nextSequenceID computes the next small sequential id for idField: 1 for an
// empty collection, max+1 otherwise. Not safe against concurrent creators;
// two simultaneous inserts may compute the same id.
func nextSequenceID(ctx context.Context, coll *mongo.Collection, idField string) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: idField, Value: -1}})

	var last bson.Raw
	err := coll.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}

	if max, ok := last.Lookup(idField).AsInt64OK(); ok {
		return int(max) + 1, nil
	}
	return 1, nil
}
