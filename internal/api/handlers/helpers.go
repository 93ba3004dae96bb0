package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Error bodies are plain text, matching what the web client expects:
// a short reason for 400/404, "Internal Server Error:" + message for 500.

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).
		SendString("Internal Server Error:" + err.Error())
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).SendString(msg)
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).SendString(msg)
}
