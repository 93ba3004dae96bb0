package handlers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"accounting-api/internal/dto"
	"accounting-api/internal/models"
	"accounting-api/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type SourceStore interface {
	List(ctx context.Context, dbName string) ([]models.Source, error)
	ListByType(ctx context.Context, dbName string, sourceType models.SourceType) ([]models.Source, error)
	ListActive(ctx context.Context, dbName string) ([]models.Source, error)
	GetByID(ctx context.Context, dbName string, sourceID int) (*models.Source, error)
	Create(ctx context.Context, dbName string, source *models.Source) (*mongo.InsertOneResult, error)
	Update(ctx context.Context, dbName string, sourceID int, fields bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, dbName string, sourceID int) (*mongo.DeleteResult, error)
}

type SourceHandler struct {
	store  SourceStore
	logger *zap.Logger
}

func NewSourceHandler(store SourceStore, logger *zap.Logger) *SourceHandler {
	return &SourceHandler{
		store:  store,
		logger: logger,
	}
}

func invalidType(c *fiber.Ctx) error {
	return badRequest(c, "Invalid type parameter. Must be one of: "+models.SourceTypeList())
}

// List godoc
// @Summary List all sources
// @Tags sources
// @Produce json
// @Param db query string true "Database selector"
// @Success 200 {array} models.Source
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /sources [get]
func (h *SourceHandler) List(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	sources, err := h.store.List(c.Context(), dbName)
	if err != nil {
		h.logger.Error("Failed to list sources", zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(sources)
}

// ListByType godoc
// @Summary List sources of one type
// @Tags sources
// @Produce json
// @Param db query string true "Database selector"
// @Param type query string true "Source type" Enums(bank, digital_wallet, credit_card, cash, other)
// @Success 200 {array} models.Source
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /sources/by-type [get]
func (h *SourceHandler) ListByType(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db parameter")
	}
	sourceType := c.Query("type")
	if sourceType == "" {
		return badRequest(c, "Missing type parameter")
	}
	if !models.SourceType(sourceType).Valid() {
		return invalidType(c)
	}

	sources, err := h.store.ListByType(c.Context(), dbName, models.SourceType(sourceType))
	if err != nil {
		h.logger.Error("Failed to list sources by type", zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(sources)
}

// ListActive godoc
// @Summary List active sources
// @Tags sources
// @Produce json
// @Param db query string true "Database selector"
// @Success 200 {array} models.Source
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /sources/active [get]
func (h *SourceHandler) ListActive(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	sources, err := h.store.ListActive(c.Context(), dbName)
	if err != nil {
		h.logger.Error("Failed to list active sources", zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(sources)
}

// GetByID godoc
// @Summary Get one source
// @Tags sources
// @Produce json
// @Param db query string true "Database selector"
// @Param sourceId path int true "Source id"
// @Success 200 {object} models.Source
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /sources/{sourceId} [get]
func (h *SourceHandler) GetByID(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	sourceID, err := strconv.Atoi(c.Params("sourceId"))
	if err != nil {
		return badRequest(c, "Invalid sourceId parameter")
	}

	source, err := h.store.GetByID(c.Context(), dbName, sourceID)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(c, "Source not found")
	}
	if err != nil {
		h.logger.Error("Failed to get source", zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(source)
}

// Create godoc
// @Summary Add a source
// @Description Inserts a source; sourceId and timestamps are assigned by the
// server. isActive defaults to true.
// @Tags sources
// @Accept json
// @Produce json
// @Param db query string true "Database selector"
// @Param source body dto.CreateSourceRequest true "Source to add"
// @Success 200 {object} mongo.InsertOneResult
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /sources [post]
func (h *SourceHandler) Create(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	var req dto.CreateSourceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Missing source parameter")
	}
	if req.Name == "" {
		return badRequest(c, "Missing name parameter")
	}
	if req.Type == "" {
		return badRequest(c, "Missing type parameter")
	}
	if !models.SourceType(req.Type).Valid() {
		return invalidType(c)
	}

	result, err := h.store.Create(c.Context(), dbName, req.NewSource(time.Now().UTC()))
	if err != nil {
		h.logger.Error("Failed to create source", zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(result)
}

// Update godoc
// @Summary Update a source
// @Description Sparse patch: only the supplied fields change; updatedAt is
// always refreshed.
// @Tags sources
// @Accept json
// @Produce json
// @Param db query string true "Database selector"
// @Param source body dto.UpdateSourceRequest true "sourceId plus fields to change"
// @Success 200 {object} mongo.UpdateResult
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /sources/update [put]
func (h *SourceHandler) Update(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	var req dto.UpdateSourceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Missing source parameter")
	}
	if req.SourceID == nil {
		return badRequest(c, "Missing sourceId parameter")
	}
	if req.Type != nil && !models.SourceType(*req.Type).Valid() {
		return invalidType(c)
	}
	if !req.HasFields() {
		return badRequest(c, "No fields provided for update")
	}

	result, err := h.store.Update(c.Context(), dbName, *req.SourceID, req.SetFields(time.Now().UTC()))
	if err != nil {
		h.logger.Error("Failed to update source", zap.Error(err))
		return internalError(c, err)
	}

	if result.MatchedCount == 0 {
		return notFound(c, "Source not found")
	}

	return c.JSON(result)
}

// ToggleStatus godoc
// @Summary Activate or deactivate a source
// @Tags sources
// @Accept json
// @Produce json
// @Param db query string true "Database selector"
// @Param source body dto.ToggleSourceStatusRequest true "sourceId and the new isActive"
// @Success 200 {object} mongo.UpdateResult
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /sources/toggle-status [patch]
func (h *SourceHandler) ToggleStatus(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	var req dto.ToggleSourceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Missing sourceId parameter")
	}
	if req.SourceID == nil {
		return badRequest(c, "Missing sourceId parameter")
	}
	if req.IsActive == nil {
		return badRequest(c, "Missing isActive parameter")
	}

	fields := bson.M{"isActive": *req.IsActive, "updatedAt": time.Now().UTC()}
	result, err := h.store.Update(c.Context(), dbName, *req.SourceID, fields)
	if err != nil {
		h.logger.Error("Failed to toggle source status", zap.Error(err))
		return internalError(c, err)
	}

	if result.MatchedCount == 0 {
		return notFound(c, "Source not found")
	}

	return c.JSON(result)
}

// Delete godoc
// @Summary Delete a source
// @Tags sources
// @Accept json
// @Produce json
// @Param db query string true "Database selector"
// @Param source body dto.DeleteSourceRequest true "sourceId to delete"
// @Success 200 {object} mongo.DeleteResult
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /sources [delete]
func (h *SourceHandler) Delete(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	var req dto.DeleteSourceRequest
	if err := c.BodyParser(&req); err != nil || req.SourceID == nil {
		return badRequest(c, "Missing sourceId parameter")
	}

	result, err := h.store.Delete(c.Context(), dbName, *req.SourceID)
	if err != nil {
		h.logger.Error("Failed to delete source", zap.Error(err))
		return internalError(c, err)
	}

	if result.DeletedCount == 0 {
		return notFound(c, "Source not found")
	}

	return c.JSON(result)
}
