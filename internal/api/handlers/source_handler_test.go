package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"accounting-api/internal/api/handlers"
	"accounting-api/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSourceApp(store *fakeSourceStore) *fiber.App {
	h := handlers.NewSourceHandler(store, zap.NewNop())
	app := fiber.New()
	app.Get("/sources", h.List)
	app.Get("/sources/by-type", h.ListByType)
	app.Get("/sources/active", h.ListActive)
	app.Post("/sources", h.Create)
	app.Put("/sources/update", h.Update)
	app.Patch("/sources/toggle-status", h.ToggleStatus)
	app.Delete("/sources", h.Delete)
	app.Get("/sources/:sourceId", h.GetByID)
	return app
}

func seedSource(id int, sourceType models.SourceType, active bool) models.Source {
	return models.Source{
		SourceID:  id,
		Name:      "main",
		Type:      sourceType,
		IsActive:  active,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSourceCreateDefaults(t *testing.T) {
	store := &fakeSourceStore{}
	app := newSourceApp(store)

	resp := doRequest(t, app, http.MethodPost, "/sources?db=test", map[string]any{
		"name": "checking",
		"type": "bank",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, store.sources, 1)
	got := store.sources[0]
	assert.Equal(t, 1, got.SourceID)
	assert.Equal(t, models.SourceTypeBank, got.Type)
	assert.Equal(t, "", got.Description)
	assert.True(t, got.IsActive, "isActive must default to true")
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestSourceCreateExplicitInactive(t *testing.T) {
	store := &fakeSourceStore{}
	app := newSourceApp(store)

	resp := doRequest(t, app, http.MethodPost, "/sources?db=test", map[string]any{
		"name":     "old wallet",
		"type":     "digital_wallet",
		"isActive": false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, store.sources[0].IsActive)
}

func TestSourceCreateValidation(t *testing.T) {
	store := &fakeSourceStore{}
	app := newSourceApp(store)

	resp := doRequest(t, app, http.MethodPost, "/sources?db=test", map[string]any{"type": "bank"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing name parameter", readBody(t, resp))

	resp = doRequest(t, app, http.MethodPost, "/sources?db=test", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing type parameter", readBody(t, resp))

	resp = doRequest(t, app, http.MethodPost, "/sources?db=test", map[string]any{
		"name": "x",
		"type": "crypto",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t,
		"Invalid type parameter. Must be one of: bank, digital_wallet, credit_card, cash, other",
		readBody(t, resp))

	assert.Zero(t, store.calls, "store contacted on a client error")
	assert.Empty(t, store.sources, "document created despite invalid input")
}

func TestSourceListByType(t *testing.T) {
	store := &fakeSourceStore{sources: []models.Source{
		seedSource(1, models.SourceTypeBank, true),
		seedSource(2, models.SourceTypeCash, true),
	}}
	app := newSourceApp(store)

	resp := doRequest(t, app, http.MethodGet, "/sources/by-type?db=test&type=cash", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []models.Source
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].SourceID)

	resp = doRequest(t, app, http.MethodGet, "/sources/by-type?db=test&type=crypto", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/sources/by-type?type=cash", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing db parameter", readBody(t, resp))
}

func TestSourceListActive(t *testing.T) {
	store := &fakeSourceStore{sources: []models.Source{
		seedSource(1, models.SourceTypeBank, true),
		seedSource(2, models.SourceTypeCash, false),
	}}
	app := newSourceApp(store)

	resp := doRequest(t, app, http.MethodGet, "/sources/active?db=test", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []models.Source
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].SourceID)
}

func TestSourceGetByID(t *testing.T) {
	store := &fakeSourceStore{sources: []models.Source{seedSource(7, models.SourceTypeBank, true)}}
	app := newSourceApp(store)

	resp := doRequest(t, app, http.MethodGet, "/sources/7?db=test", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.Source
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 7, got.SourceID)

	resp = doRequest(t, app, http.MethodGet, "/sources/8?db=test", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Source not found", readBody(t, resp))

	resp = doRequest(t, app, http.MethodGet, "/sources/seven?db=test", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid sourceId parameter", readBody(t, resp))
}

func TestSourceUpdate(t *testing.T) {
	store := &fakeSourceStore{sources: []models.Source{seedSource(1, models.SourceTypeBank, true)}}
	app := newSourceApp(store)

	resp := doRequest(t, app, http.MethodPut, "/sources/update?db=test", map[string]any{
		"sourceId": 1,
		"name":     "savings",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := store.sources[0]
	assert.Equal(t, "savings", got.Name)
	assert.Equal(t, models.SourceTypeBank, got.Type, "type must be untouched")
	assert.True(t, got.UpdatedAt.After(got.CreatedAt), "updatedAt must be refreshed")
}

func TestSourceUpdateValidation(t *testing.T) {
	store := &fakeSourceStore{sources: []models.Source{seedSource(1, models.SourceTypeBank, true)}}
	app := newSourceApp(store)

	resp := doRequest(t, app, http.MethodPut, "/sources/update?db=test", map[string]any{
		"name": "savings",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing sourceId parameter", readBody(t, resp))

	resp = doRequest(t, app, http.MethodPut, "/sources/update?db=test", map[string]any{
		"sourceId": 1,
		"type":     "crypto",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Invalid type parameter")

	resp = doRequest(t, app, http.MethodPut, "/sources/update?db=test", map[string]any{
		"sourceId": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No fields provided for update", readBody(t, resp))

	assert.Zero(t, store.calls, "store contacted on a client error")
	assert.Equal(t, models.SourceTypeBank, store.sources[0].Type, "document touched despite invalid input")
}

func TestSourceToggleStatus(t *testing.T) {
	store := &fakeSourceStore{sources: []models.Source{seedSource(1, models.SourceTypeBank, true)}}
	app := newSourceApp(store)

	resp := doRequest(t, app, http.MethodPatch, "/sources/toggle-status?db=test", map[string]any{
		"sourceId": 1,
		"isActive": false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, store.sources[0].IsActive)
	assert.True(t, store.sources[0].UpdatedAt.After(store.sources[0].CreatedAt))

	resp = doRequest(t, app, http.MethodPatch, "/sources/toggle-status?db=test", map[string]any{
		"sourceId": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing isActive parameter", readBody(t, resp))

	resp = doRequest(t, app, http.MethodPatch, "/sources/toggle-status?db=test", map[string]any{
		"sourceId": 9,
		"isActive": true,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Source not found", readBody(t, resp))
}

func TestSourceDelete(t *testing.T) {
	store := &fakeSourceStore{sources: []models.Source{seedSource(1, models.SourceTypeBank, true)}}
	app := newSourceApp(store)

	resp := doRequest(t, app, http.MethodDelete, "/sources?db=test", map[string]any{"sourceId": 1})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, store.sources)

	resp = doRequest(t, app, http.MethodDelete, "/sources?db=test", map[string]any{"sourceId": 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
