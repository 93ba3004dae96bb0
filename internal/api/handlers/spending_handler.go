package handlers

import (
	"context"
	"time"

	"accounting-api/internal/dto"
	"accounting-api/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SpendingStore is the slice of the spending repository the handler needs.
type SpendingStore interface {
	List(ctx context.Context, dbName string) ([]models.Spending, error)
	ListByDateRange(ctx context.Context, dbName string, start, end time.Time) ([]models.Spending, error)
	Create(ctx context.Context, dbName string, spending *models.Spending) (*mongo.InsertOneResult, error)
	Update(ctx context.Context, dbName string, spendingID int, fields bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, dbName string, spendingID int) (*mongo.DeleteResult, error)
}

type SpendingHandler struct {
	store  SpendingStore
	logger *zap.Logger
}

func NewSpendingHandler(store SpendingStore, logger *zap.Logger) *SpendingHandler {
	return &SpendingHandler{
		store:  store,
		logger: logger,
	}
}

// List godoc
// @Summary List all spendings
// @Tags spendings
// @Produce json
// @Param db query string true "Database selector"
// @Success 200 {array} models.Spending
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /spendings [get]
func (h *SpendingHandler) List(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	spendings, err := h.store.List(c.Context(), dbName)
	if err != nil {
		h.logger.Error("Failed to list spendings", zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(spendings)
}

// ListByDate godoc
// @Summary List spendings in an inclusive date range
// @Tags spendings
// @Produce json
// @Param db query string true "Database selector"
// @Param startDate query string true "Range start (inclusive)"
// @Param endDate query string true "Range end (inclusive)"
// @Success 200 {array} models.Spending
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /spendings/by-date [get]
func (h *SpendingHandler) ListByDate(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db parameter")
	}
	startDate := c.Query("startDate")
	if startDate == "" {
		return badRequest(c, "Missing startDate parameter")
	}
	endDate := c.Query("endDate")
	if endDate == "" {
		return badRequest(c, "Missing endDate parameter")
	}

	// No date validation before the query: a malformed bound surfaces as a
	// server error, as the query itself would have failed.
	start, err := dto.ParseDate(startDate)
	if err != nil {
		return internalError(c, err)
	}
	end, err := dto.ParseDate(endDate)
	if err != nil {
		return internalError(c, err)
	}

	spendings, err := h.store.ListByDateRange(c.Context(), dbName, start, end)
	if err != nil {
		h.logger.Error("Failed to list spendings by date", zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(spendings)
}

// Create godoc
// @Summary Add a spending
// @Description Inserts a spending; spendingId is assigned by the server.
// @Tags spendings
// @Accept json
// @Produce json
// @Param db query string true "Database selector"
// @Param spending body dto.CreateSpendingRequest true "Spending to add"
// @Success 200 {object} mongo.InsertOneResult
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /spendings [post]
func (h *SpendingHandler) Create(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	var req dto.CreateSpendingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Missing spending parameter")
	}

	date, err := dto.ParseDate(req.DateOfSpending)
	if err != nil {
		return badRequest(c, "Invalid dateOfSpending parameter")
	}

	spending := &models.Spending{
		Amount:         req.Amount,
		Currency:       req.Currency,
		DateOfSpending: date,
		Description:    req.Description,
		CategoryID:     req.CategoryID,
	}

	result, err := h.store.Create(c.Context(), dbName, spending)
	if err != nil {
		h.logger.Error("Failed to create spending", zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(result)
}

// Update godoc
// @Summary Update a spending
// @Description Sparse patch: only the supplied fields change.
// @Tags spendings
// @Accept json
// @Produce json
// @Param db query string true "Database selector"
// @Param spending body dto.UpdateSpendingRequest true "spendingId plus fields to change"
// @Success 200 {object} mongo.UpdateResult
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /spendings [put]
func (h *SpendingHandler) Update(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	var req dto.UpdateSpendingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Missing spending parameter")
	}
	if req.SpendingID == nil {
		return badRequest(c, "Missing spendingId parameter")
	}

	fields, err := req.SetFields()
	if err != nil {
		return badRequest(c, "Invalid dateOfSpending parameter")
	}
	if len(fields) == 0 {
		return badRequest(c, "No fields provided for update")
	}

	result, err := h.store.Update(c.Context(), dbName, *req.SpendingID, fields)
	if err != nil {
		h.logger.Error("Failed to update spending", zap.Error(err))
		return internalError(c, err)
	}

	if result.MatchedCount == 0 {
		return notFound(c, "Spending not found")
	}
	if result.ModifiedCount == 0 {
		return c.SendString("No changes made to spending")
	}

	return c.JSON(result)
}

// Delete godoc
// @Summary Delete a spending
// @Tags spendings
// @Accept json
// @Produce json
// @Param db query string true "Database selector"
// @Param spending body dto.DeleteSpendingRequest true "spendingId to delete"
// @Success 200 {object} mongo.DeleteResult
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /spendings [delete]
func (h *SpendingHandler) Delete(c *fiber.Ctx) error {
	dbName := c.Query("db")
	if dbName == "" {
		return badRequest(c, "Missing db_name parameter")
	}

	var req dto.DeleteSpendingRequest
	if err := c.BodyParser(&req); err != nil || req.SpendingID == nil {
		return badRequest(c, "Missing spendingId parameter")
	}

	result, err := h.store.Delete(c.Context(), dbName, *req.SpendingID)
	if err != nil {
		h.logger.Error("Failed to delete spending", zap.Error(err))
		return internalError(c, err)
	}

	if result.DeletedCount == 0 {
		return notFound(c, "Spending not found")
	}

	return c.JSON(result)
}
