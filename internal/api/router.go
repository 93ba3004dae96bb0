package api

import (
	"accounting-api/docs"
	"accounting-api/internal/api/handlers"
	"accounting-api/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	spendingHandler *handlers.SpendingHandler,
	categoryHandler *handlers.CategoryHandler,
	sourceHandler *handlers.SourceHandler,
	managingHandler *handlers.ManagingHandler,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).SendString(e.Message)
			}
			return c.Status(fiber.StatusInternalServerError).
				SendString("Internal Server Error:" + err.Error())
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(middleware.RequestLog(appLogger))

	// Swagger - importing the docs package registers the document via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello AA!")
	})

	spendings := app.Group("/spendings")
	spendings.Get("/", spendingHandler.List)
	spendings.Get("/by-date", spendingHandler.ListByDate)
	spendings.Post("/", spendingHandler.Create)
	spendings.Put("/", spendingHandler.Update)
	spendings.Delete("/", spendingHandler.Delete)

	categories := app.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/", categoryHandler.Update)
	categories.Delete("/", categoryHandler.Delete)

	// Fixed paths are registered before the :sourceId wildcard so that
	// /sources/active and friends are not captured by it.
	sources := app.Group("/sources")
	sources.Get("/", sourceHandler.List)
	sources.Get("/by-type", sourceHandler.ListByType)
	sources.Get("/active", sourceHandler.ListActive)
	sources.Post("/", sourceHandler.Create)
	sources.Put("/update", sourceHandler.Update)
	sources.Patch("/toggle-status", sourceHandler.ToggleStatus)
	sources.Delete("/", sourceHandler.Delete)
	sources.Get("/:sourceId", sourceHandler.GetByID)

	managing := app.Group("/managing")
	managing.Get("/dbs", managingHandler.ListDatabases)
	managing.Get("/name", managingHandler.GetName)
	managing.Put("/name", managingHandler.UpdateName)

	return app
}
