package repository

import (
	"context"
	"errors"

	"accounting-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const sourcesCollection = "sources"

type SourceRepository struct {
	client *mongo.Client
	logger *zap.Logger
}

func NewSourceRepository(client *mongo.Client, logger *zap.Logger) *SourceRepository {
	return &SourceRepository{
		client: client,
		logger: logger,
	}
}

func (r *SourceRepository) collection(dbName string) *mongo.Collection {
	return r.client.Database(dbName).Collection(sourcesCollection)
}

func (r *SourceRepository) List(ctx context.Context, dbName string) ([]models.Source, error) {
	return r.find(ctx, dbName, bson.M{})
}

func (r *SourceRepository) ListByType(ctx context.Context, dbName string, sourceType models.SourceType) ([]models.Source, error) {
	return r.find(ctx, dbName, bson.M{"type": sourceType})
}

func (r *SourceRepository) ListActive(ctx context.Context, dbName string) ([]models.Source, error) {
	return r.find(ctx, dbName, bson.M{"isActive": true})
}

func (r *SourceRepository) find(ctx context.Context, dbName string, filter bson.M) ([]models.Source, error) {
	coll := r.collection(dbName)
	ensureCollection(ctx, coll.Database(), sourcesCollection, r.logger)

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	sources := []models.Source{}
	if err := cursor.All(ctx, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

func (r *SourceRepository) GetByID(ctx context.Context, dbName string, sourceID int) (*models.Source, error) {
	coll := r.collection(dbName)
	ensureCollection(ctx, coll.Database(), sourcesCollection, r.logger)

	var source models.Source
	err := coll.FindOne(ctx, bson.M{"sourceId": sourceID}).Decode(&source)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &source, nil
}

// Create assigns the next sourceId and inserts the document. Timestamps and
// defaults are the caller's concern.
func (r *SourceRepository) Create(ctx context.Context, dbName string, source *models.Source) (*mongo.InsertOneResult, error) {
	coll := r.collection(dbName)
	ensureCollection(ctx, coll.Database(), sourcesCollection, r.logger)

	nextID, err := nextSequenceID(ctx, coll, "sourceId")
	if err != nil {
		return nil, err
	}
	source.SourceID = nextID

	return coll.InsertOne(ctx, source)
}

func (r *SourceRepository) Update(ctx context.Context, dbName string, sourceID int, fields bson.M) (*mongo.UpdateResult, error) {
	coll := r.collection(dbName)
	ensureCollection(ctx, coll.Database(), sourcesCollection, r.logger)

	return coll.UpdateOne(ctx, bson.M{"sourceId": sourceID}, bson.M{"$set": fields})
}

func (r *SourceRepository) Delete(ctx context.Context, dbName string, sourceID int) (*mongo.DeleteResult, error) {
	coll := r.collection(dbName)
	ensureCollection(ctx, coll.Database(), sourcesCollection, r.logger)

	return coll.DeleteOne(ctx, bson.M{"sourceId": sourceID})
}
