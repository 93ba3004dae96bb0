package handlers

import (
	"context"

	"accounting-api/internal/dto"
	"accounting-api/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type CategoryStore interface {
	List(ctx context.Context, dbName string) ([]models.Category, error)
	Create(ctx context.Context, dbName string, category *models.Category) (*mongo.InsertOneResult, error)
	Update(ctx context.Context, dbName string, categoryID int, fields bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, dbName string, categoryID int) (*mongo.DeleteResult, error)
}

type CategoryHandler struct {
	store  CategoryStore
	logger *zap.Logger
}

func NewCategoryHandler(store CategoryStore, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		store:  store,
		logger: logger,
	}
}

// List godoc
// @Summary List all categories
// @Tags categories
// @Produce json
// @Param db query string true "Database selector"
// @Success 200 {array} models.Category
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	categories, err := h.store.List(c.Context(), dbName)
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(categories)
}

// Create godoc
// @Summary Add a category
// @Description Inserts a category; categoryId is assigned by the server.
// @Tags categories
// @Accept json
// @Produce json
// @Param db query string true "Database selector"
// @Param category body dto.CreateCategoryRequest true "Category to add"
// @Success 200 {object} mongo.InsertOneResult
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Missing category parameter")
	}
	if req.Name == "" {
		return badRequest(c, "Missing name parameter")
	}

	category := &models.Category{Name: req.Name}

	result, err := h.store.Create(c.Context(), dbName, category)
	if err != nil {
		h.logger.Error("Failed to create category", zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(result)
}

// Update godoc
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Param db query string true "Database selector"
// @Param category body dto.UpdateCategoryRequest true "categoryId plus the new name"
// @Success 200 {object} mongo.UpdateResult
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /categories [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Missing category parameter")
	}
	if req.CategoryID == nil {
		return badRequest(c, "Missing categoryId parameter")
	}
	if req.Name != nil && *req.Name == "" {
		return badRequest(c, "Missing name parameter")
	}

	fields := req.SetFields()
	if len(fields) == 0 {
		return badRequest(c, "No fields provided for update")
	}

	result, err := h.store.Update(c.Context(), dbName, *req.CategoryID, fields)
	if err != nil {
		h.logger.Error("Failed to update category", zap.Error(err))
		return internalError(c, err)
	}

	if result.MatchedCount == 0 {
		return notFound(c, "Category not found")
	}
	if result.ModifiedCount == 0 {
		return c.SendString("No changes made to category")
	}

	return c.JSON(result)
}

// Delete godoc
// @Summary Delete a category
// @Tags categories
// @Accept json
// @Produce json
// @Param db query string true "Database selector"
// @Param category body dto.DeleteCategoryRequest true "categoryId to delete"
// @Success 200 {object} mongo.DeleteResult
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /categories [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	var req dto.DeleteCategoryRequest
	if err := c.BodyParser(&req); err != nil || req.CategoryID == nil {
		return badRequest(c, "Missing categoryId parameter")
	}

	result, err := h.store.Delete(c.Context(), dbName, *req.CategoryID)
	if err != nil {
		h.logger.Error("Failed to delete category", zap.Error(err))
		return internalError(c, err)
	}

	if result.DeletedCount == 0 {
		return notFound(c, "Category not found")
	}

	return c.JSON(result)
}
