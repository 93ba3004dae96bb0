package repository

import (
	"context"

	"accounting-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const categoriesCollection = "categories"

type CategoryRepository struct {
	client *mongo.Client
	logger *zap.Logger
}

func NewCategoryRepository(client *mongo.Client, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		client: client,
		logger: logger,
	}
}

func (r *CategoryRepository) collection(dbName string) *mongo.Collection {
	return r.client.Database(dbName).Collection(categoriesCollection)
}

func (r *CategoryRepository) List(ctx context.Context, dbName string) ([]models.Category, error) {
	coll := r.collection(dbName)
	ensureCollection(ctx, coll.Database(), categoriesCollection, r.logger)

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Create assigns the next categoryId and inserts the document.
func (r *CategoryRepository) Create(ctx context.Context, dbName string, category *models.Category) (*mongo.InsertOneResult, error) {
	coll := r.collection(dbName)
	ensureCollection(ctx, coll.Database(), categoriesCollection, r.logger)

	nextID, err := nextSequenceID(ctx, coll, "categoryId")
	if err != nil {
		return nil, err
	}
	category.CategoryID = nextID

	return coll.InsertOne(ctx, category)
}

func (r *CategoryRepository) Update(ctx context.Context, dbName string, categoryID int, fields bson.M) (*mongo.UpdateResult, error) {
	coll := r.collection(dbName)
	ensureCollection(ctx, coll.Database(), categoriesCollection, r.logger)

	return coll.UpdateOne(ctx, bson.M{"categoryId": categoryID}, bson.M{"$set": fields})
}

func (r *CategoryRepository) Delete(ctx context.Context, dbName string, categoryID int) (*mongo.DeleteResult, error) {
	coll := r.collection(dbName)
	ensureCollection(ctx, coll.Database(), categoriesCollection, r.logger)

	return coll.DeleteOne(ctx, bson.M{"categoryId": categoryID})
}
