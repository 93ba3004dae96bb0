package repository

import (
	"context"
	"errors"

	"accounting-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const propertiesCollection = "properties"

// PropertyRepository serves the managing routes: the per-database property
// document and the admin database listing.
type PropertyRepository struct {
	client *mongo.Client
	logger *zap.Logger
}

func NewPropertyRepository(client *mongo.Client, logger *zap.Logger) *PropertyRepository {
	return &PropertyRepository{
		client: client,
		logger: logger,
	}
}

func (r *PropertyRepository) collection(dbName string) *mongo.Collection {
	return r.client.Database(dbName).Collection(propertiesCollection)
}

// GetName returns the display name from the single property document.
// ErrNotFound covers both a missing document and an empty name.
func (r *PropertyRepository) GetName(ctx context.Context, dbName string) (string, error) {
	var property models.Property
	err := r.collection(dbName).FindOne(ctx, bson.M{}).Decode(&property)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if property.Name == "" {
		return "", ErrNotFound
	}
	return property.Name, nil
}

// UpdateName patches the existing property document. The document is never
// created implicitly; ErrNotFound when the database has none.
func (r *PropertyRepository) UpdateName(ctx context.Context, dbName, name string) (*mongo.UpdateResult, error) {
	coll := r.collection(dbName)

	var property models.Property
	err := coll.FindOne(ctx, bson.M{}).Decode(&property)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return coll.UpdateByID(ctx, property.ID, bson.M{"$set": bson.M{"name": name}})
}

// ListDatabases lists all logical databases on the cluster (admin-level).
func (r *PropertyRepository) ListDatabases(ctx context.Context) (mongo.ListDatabasesResult, error) {
	return r.client.ListDatabases(ctx, bson.M{})
}
