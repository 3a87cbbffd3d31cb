package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/example/inkwell/internal/config"
	"github.com/example/inkwell/internal/handlers"
	"github.com/example/inkwell/internal/middleware"
	"github.com/example/inkwell/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	mailer := services.NewMailerService(cfg.MailerBaseURL, cfg.MailerAPIKey, cfg.MailerSender, cfg.PublicBaseURL)
	storage := services.NewStorageService(cfg.StorageBaseURL, cfg.StorageAPIKey)
	telegram := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)

	authHandler := handlers.NewAuthHandler(db, cfg, mailer)
	resetHandler := handlers.NewPasswordResetHandler(db, cfg, mailer)
	productHandler := handlers.NewProductHandler(db)
	orderHandler := handlers.NewOrderHandler(db, telegram)
	printHandler := handlers.NewPrintOrderHandler(db, cfg, storage, telegram)
	contactHandler := handlers.NewContactHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db)

	app.Use(middleware.SessionLoader(db, cfg))

	// Best-effort per-client throttle for the public write endpoints. Local
	// to one instance, resets on restart.
	throttle := limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "too many requests, slow down",
			})
		},
	})

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth", throttle)
	auth.Post("/register", middleware.RedirectIfAuthenticated(), authHandler.Register)
	auth.Post("/login", middleware.RedirectIfAuthenticated(), authHandler.Login)
	auth.Get("/verify", authHandler.VerifyEmail)
	auth.Post("/forgot-password", resetHandler.ForgotPassword)
	auth.Post("/reset-password", resetHandler.ResetPassword)
	auth.Post("/logout", middleware.RequireAuth(), authHandler.Logout)
	auth.Get("/me", middleware.RequireAuth(), authHandler.Me)

	// Catalog
	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Get("/:id", productHandler.GetProduct)

	categories := api.Group("/categories")
	categories.Get("/", productHandler.ListCategories)
	categories.Get("/:id", productHandler.GetCategory)

	// Print-order submission and quoting
	printOrders := api.Group("/print-orders", throttle)
	printOrders.Post("/estimate", printHandler.Estimate)
	printOrders.Post("/", printHandler.CreatePrintOrder)

	// Contact form
	api.Post("/contact", throttle, contactHandler.CreateMessage)

	// Authenticated user routes
	protected := api.Group("", middleware.RequireAuth())
	protected.Post("/orders", orderHandler.CreateOrder)
	protected.Get("/orders", orderHandler.ListOrders)
	protected.Get("/orders/:id", orderHandler.GetOrder)

	// Admin routes
	admin := api.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin())
	admin.Get("/stats", adminHandler.DashboardStats)
	admin.Get("/recent-orders", adminHandler.RecentOrders)
	admin.Get("/users", adminHandler.ListAllUsers)

	admin.Get("/orders", orderHandler.ListAllOrders)
	admin.Patch("/orders/:id", orderHandler.UpdateOrder)
	admin.Delete("/orders/:id", orderHandler.DeleteOrder)

	admin.Get("/print-orders", printHandler.ListPrintOrders)
	admin.Get("/print-orders/:id", printHandler.GetPrintOrder)
	admin.Patch("/print-orders/:id", printHandler.UpdatePrintOrder)
	admin.Delete("/print-orders/:id", printHandler.DeletePrintOrder)

	admin.Post("/products", productHandler.CreateProduct)
	admin.Put("/products/:id", productHandler.UpdateProduct)
	admin.Delete("/products/:id", productHandler.DeleteProduct)

	admin.Post("/categories", productHandler.CreateCategory)
	admin.Put("/categories/:id", productHandler.UpdateCategory)
	admin.Delete("/categories/:id", productHandler.DeleteCategory)

	admin.Get("/contact-messages", contactHandler.ListMessages)
	admin.Delete("/contact-messages/:id", contactHandler.DeleteMessage)
}
