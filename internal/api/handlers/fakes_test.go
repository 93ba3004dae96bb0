package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"accounting-api/internal/models"
	"accounting-api/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(out)
}

// fakeSpendingStore mirrors the repository's behavior in memory: max+1 id
// assignment, $set-style patches, matched/modified accounting.
type fakeSpendingStore struct {
	spendings []models.Spending
	calls     int
	err       error
}

func (f *fakeSpendingStore) List(_ context.Context, _ string) ([]models.Spending, error) {
	f.calls++
	return f.spendings, f.err
}

func (f *fakeSpendingStore) ListByDateRange(_ context.Context, _ string, start, end time.Time) ([]models.Spending, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	matched := []models.Spending{}
	for _, s := range f.spendings {
		if !s.DateOfSpending.Before(start) && !s.DateOfSpending.After(end) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

func (f *fakeSpendingStore) Create(_ context.Context, _ string, spending *models.Spending) (*mongo.InsertOneResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	next := 1
	for _, s := range f.spendings {
		if s.SpendingID >= next {
			next = s.SpendingID + 1
		}
	}
	spending.SpendingID = next
	f.spendings = append(f.spendings, *spending)
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (f *fakeSpendingStore) Update(_ context.Context, _ string, spendingID int, fields bson.M) (*mongo.UpdateResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := &mongo.UpdateResult{}
	for i := range f.spendings {
		if f.spendings[i].SpendingID != spendingID {
			continue
		}
		result.MatchedCount = 1
		if applySpendingFields(&f.spendings[i], fields) {
			result.ModifiedCount = 1
		}
		break
	}
	return result, nil
}

func (f *fakeSpendingStore) Delete(_ context.Context, _ string, spendingID int) (*mongo.DeleteResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := &mongo.DeleteResult{}
	for i := range f.spendings {
		if f.spendings[i].SpendingID == spendingID {
			f.spendings = append(f.spendings[:i], f.spendings[i+1:]...)
			result.DeletedCount = 1
			break
		}
	}
	return result, nil
}

func applySpendingFields(s *models.Spending, fields bson.M) bool {
	changed := false
	if v, ok := fields["amount"].(float64); ok && s.Amount != v {
		s.Amount = v
		changed = true
	}
	if v, ok := fields["currency"].(string); ok && s.Currency != v {
		s.Currency = v
		changed = true
	}
	if v, ok := fields["dateOfSpending"].(time.Time); ok && !s.DateOfSpending.Equal(v) {
		s.DateOfSpending = v
		changed = true
	}
	if v, ok := fields["description"].(string); ok && s.Description != v {
		s.Description = v
		changed = true
	}
	if v, ok := fields["categoryId"].(int); ok && (s.CategoryID == nil || *s.CategoryID != v) {
		id := v
		s.CategoryID = &id
		changed = true
	}
	return changed
}

type fakeCategoryStore struct {
	categories []models.Category
	calls      int
	err        error
}

func (f *fakeCategoryStore) List(_ context.Context, _ string) ([]models.Category, error) {
	f.calls++
	return f.categories, f.err
}

func (f *fakeCategoryStore) Create(_ context.Context, _ string, category *models.Category) (*mongo.InsertOneResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	next := 1
	for _, c := range f.categories {
		if c.CategoryID >= next {
			next = c.CategoryID + 1
		}
	}
	category.CategoryID = next
	f.categories = append(f.categories, *category)
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (f *fakeCategoryStore) Update(_ context.Context, _ string, categoryID int, fields bson.M) (*mongo.UpdateResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := &mongo.UpdateResult{}
	for i := range f.categories {
		if f.categories[i].CategoryID != categoryID {
			continue
		}
		result.MatchedCount = 1
		if v, ok := fields["name"].(string); ok && f.categories[i].Name != v {
			f.categories[i].Name = v
			result.ModifiedCount = 1
		}
		break
	}
	return result, nil
}

func (f *fakeCategoryStore) Delete(_ context.Context, _ string, categoryID int) (*mongo.DeleteResult, error) {
	f.calls++
	result := &mongo.DeleteResult{}
	for i := range f.categories {
		if f.categories[i].CategoryID == categoryID {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			result.DeletedCount = 1
			break
		}
	}
	return result, nil
}

type fakeSourceStore struct {
	sources []models.Source
	calls   int
	err     error
}

func (f *fakeSourceStore) List(_ context.Context, _ string) ([]models.Source, error) {
	f.calls++
	return f.sources, f.err
}

func (f *fakeSourceStore) ListByType(_ context.Context, _ string, sourceType models.SourceType) ([]models.Source, error) {
	f.calls++
	matched := []models.Source{}
	for _, s := range f.sources {
		if s.Type == sourceType {
			matched = append(matched, s)
		}
	}
	return matched, f.err
}

func (f *fakeSourceStore) ListActive(_ context.Context, _ string) ([]models.Source, error) {
	f.calls++
	matched := []models.Source{}
	for _, s := range f.sources {
		if s.IsActive {
			matched = append(matched, s)
		}
	}
	return matched, f.err
}

func (f *fakeSourceStore) GetByID(_ context.Context, _ string, sourceID int) (*models.Source, error) {
	f.calls++
	for i := range f.sources {
		if f.sources[i].SourceID == sourceID {
			return &f.sources[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSourceStore) Create(_ context.Context, _ string, source *models.Source) (*mongo.InsertOneResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	next := 1
	for _, s := range f.sources {
		if s.SourceID >= next {
			next = s.SourceID + 1
		}
	}
	source.SourceID = next
	f.sources = append(f.sources, *source)
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (f *fakeSourceStore) Update(_ context.Context, _ string, sourceID int, fields bson.M) (*mongo.UpdateResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := &mongo.UpdateResult{}
	for i := range f.sources {
		if f.sources[i].SourceID != sourceID {
			continue
		}
		result.MatchedCount = 1
		if applySourceFields(&f.sources[i], fields) {
			result.ModifiedCount = 1
		}
		break
	}
	return result, nil
}

func (f *fakeSourceStore) Delete(_ context.Context, _ string, sourceID int) (*mongo.DeleteResult, error) {
	f.calls++
	result := &mongo.DeleteResult{}
	for i := range f.sources {
		if f.sources[i].SourceID == sourceID {
			f.sources = append(f.sources[:i], f.sources[i+1:]...)
			result.DeletedCount = 1
			break
		}
	}
	return result, nil
}

func applySourceFields(s *models.Source, fields bson.M) bool {
	changed := false
	if v, ok := fields["name"].(string); ok && s.Name != v {
		s.Name = v
		changed = true
	}
	if v, ok := fields["type"].(models.SourceType); ok && s.Type != v {
		s.Type = v
		changed = true
	}
	if v, ok := fields["description"].(string); ok && s.Description != v {
		s.Description = v
		changed = true
	}
	if v, ok := fields["isActive"].(bool); ok && s.IsActive != v {
		s.IsActive = v
		changed = true
	}
	if v, ok := fields["updatedAt"].(time.Time); ok {
		s.UpdatedAt = v
	}
	return changed
}

type fakeManagingStore struct {
	name  string
	dbs   []string
	calls int
	err   error
}

func (f *fakeManagingStore) GetName(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.name == "" {
		return "", repository.ErrNotFound
	}
	return f.name, nil
}

func (f *fakeManagingStore) UpdateName(_ context.Context, _ string, name string) (*mongo.UpdateResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.name == "" {
		return nil, repository.ErrNotFound
	}
	f.name = name
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeManagingStore) ListDatabases(_ context.Context) (mongo.ListDatabasesResult, error) {
	f.calls++
	if f.err != nil {
		return mongo.ListDatabasesResult{}, f.err
	}
	result := mongo.ListDatabasesResult{}
	for _, name := range f.dbs {
		result.Databases = append(result.Databases, mongo.DatabaseSpecification{Name: name})
	}
	return result, nil
}
