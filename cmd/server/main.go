package main

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/inkwell/internal/config"
	"github.com/example/inkwell/internal/database"
	"github.com/example/inkwell/internal/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	app := fiber.New(fiber.Config{
		AppName:      "Inkwell Backend",
		ErrorHandler: errorHandler,
		BodyLimit:    int(cfg.UploadMaxBytes) + 1024*1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, db, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}

// errorHandler converts every error escaping a handler into the uniform
// response envelope. Unexpected errors are logged and surfaced as a generic
// 500 so no internal detail crosses the boundary.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"status":  fiberErr.Code,
			"error":   fiberErr.Message,
		})
	}

	log.Printf("[Server] Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"status":  fiber.StatusInternalServerError,
		"error":   "internal server error",
	})
}
