package handlers

import (
	"context"
	"errors"

	"accounting-api/internal/dto"
	"accounting-api/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ManagingStore interface {
	GetName(ctx context.Context, dbName string) (string, error)
	UpdateName(ctx context.Context, dbName, name string) (*mongo.UpdateResult, error)
	ListDatabases(ctx context.Context) (mongo.ListDatabasesResult, error)
}

// ManagingHandler serves the per-database property document and the
// admin database listing.
type ManagingHandler struct {
	store  ManagingStore
	logger *zap.Logger
}

func NewManagingHandler(store ManagingStore, logger *zap.Logger) *ManagingHandler {
	return &ManagingHandler{
		store:  store,
		logger: logger,
	}
}

// ListDatabases godoc
// @Summary List all databases on the cluster
// @Tags managing
// @Produce json
// @Success 200 {object} mongo.ListDatabasesResult
// @Failure 500 {string} string
// @Router /managing/dbs [get]
func (h *ManagingHandler) ListDatabases(c *fiber.Ctx) error {
	dbs, err := h.store.ListDatabases(c.Context())
	if err != nil {
		h.logger.Error("Failed to list databases", zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(dbs)
}

// GetName godoc
// @Summary Get the database display name
// @Tags managing
// @Produce json
// @Param db query string true "Database selector"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /managing/name [get]
func (h *ManagingHandler) GetName(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	name, err := h.store.GetName(c.Context(), dbName)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(c, "Property not found")
	}
	if err != nil {
		h.logger.Error("Failed to get property name", zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(name)
}

// UpdateName godoc
// @Summary Set the database display name
// @Description Patches the existing property document; never creates one.
// @Tags managing
// @Accept json
// @Produce json
// @Param db query string true "Database selector"
// @Param property body dto.UpdatePropertyNameRequest true "New display name"
// @Success 200 {object} mongo.UpdateResult
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /managing/name [put]
func (h *ManagingHandler) UpdateName(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	var req dto.UpdatePropertyNameRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return badRequest(c, "Missing name parameter")
	}

	result, err := h.store.UpdateName(c.Context(), dbName, req.Name)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(c, "Property not found")
	}
	if err != nil {
		h.logger.Error("Failed to update property name", zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(result)
}
