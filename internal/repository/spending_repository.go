package repository

import (
	"context"
	"time"

	"accounting-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const spendingsCollection = "spendings"

type SpendingRepository struct {
	client *mongo.Client
	logger *zap.Logger
}

func NewSpendingRepository(client *mongo.Client, logger *zap.Logger) *SpendingRepository {
	return &SpendingRepository{
		client: client,
		logger: logger,
	}
}

func (r *SpendingRepository) collection(dbName string) *mongo.Collection {
	return r.client.Database(dbName).Collection(spendingsCollection)
}

func (r *SpendingRepository) List(ctx context.Context, dbName string) ([]models.Spending, error) {
	coll := r.collection(dbName)
	ensureCollection(ctx, coll.Database(), spendingsCollection, r.logger)

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	spendings := []models.Spending{}
	if err := cursor.All(ctx, &spendings); err != nil {
		return nil, err
	}
	return spendings, nil
}

// ListByDateRange returns spendings with dateOfSpending inside [start, end],
// both bounds inclusive.
func (r *SpendingRepository) ListByDateRange(ctx context.Context, dbName string, start, end time.Time) ([]models.Spending, error) {
	coll := r.collection(dbName)
	ensureCollection(ctx, coll.Database(), spendingsCollection, r.logger)

	filter := bson.M{
		"dateOfSpending": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	spendings := []models.Spending{}
	if err := cursor.All(ctx, &spendings); err != nil {
		return nil, err
	}
	return spendings, nil
}

// Create assigns the next spendingId and inserts the document.
func (r *SpendingRepository) Create(ctx context.Context, dbName string, spending *models.Spending) (*mongo.InsertOneResult, error) {
	coll := r.collection(dbName)
	ensureCollection(ctx, coll.Database(), spendingsCollection, r.logger)

	nextID, err := nextSequenceID(ctx, coll, "spendingId")
	if err != nil {
		return nil, err
	}
	spending.SpendingID = nextID

	return coll.InsertOne(ctx, spending)
}

func (r *SpendingRepository) Update(ctx context.Context, dbName string, spendingID int, fields bson.M) (*mongo.UpdateResult, error) {
	coll := r.collection(dbName)
	ensureCollection(ctx, coll.Database(), spendingsCollection, r.logger)

	return coll.UpdateOne(ctx, bson.M{"spendingId": spendingID}, bson.M{"$set": fields})
}

func (r *SpendingRepository) Delete(ctx context.Context, dbName string, spendingID int) (*mongo.DeleteResult, error) {
	coll := r.collection(dbName)
	ensureCollection(ctx, coll.Database(), spendingsCollection, r.logger)

	return coll.DeleteOne(ctx, bson.M{"spendingId": spendingID})
}
