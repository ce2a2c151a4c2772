package server

import (
	"strings"

	"stockroom/internal/config"
	"stockroom/internal/handler"
	"stockroom/internal/middleware"
	"stockroom/internal/repository"
	"stockroom/internal/service"
	"stockroom/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Repositories bundles the storage backends the server runs on. Both the
// Postgres and the in-memory driver produce one of these.
type Repositories struct {
	Products     repository.ProductRepository
	Categories   repository.CategoryRepository
	Suppliers    repository.SupplierRepository
	Inventory    repository.InventoryRepository
	Transactions repository.TransactionRepository
	Users        repository.UserRepository
}

// New wires middleware, services, and routes into a ready-to-listen app.
func New(cfg *config.Config, repos Repositories, hub *ws.Hub) *fiber.App {
	authService := service.NewAuthService(repos.Users)
	productService := service.NewProductService(repos.Products, repos.Categories, repos.Suppliers)
	categoryService := service.NewCategoryService(repos.Categories, repos.Products)
	supplierService := service.NewSupplierService(repos.Suppliers, repos.Products)
	inventoryService := service.NewInventoryService(repos.Inventory, repos.Transactions, repos.Products, hub)
	reportService := service.NewReportService(repos.Products, repos.Categories, repos.Suppliers, repos.Inventory, repos.Transactions)
	userService := service.NewUserService(repos.Users)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	reportHandler := handler.NewReportHandler(reportService)
	userHandler := handler.NewUserHandler(userService)

	handler.SetVerboseErrors(cfg.IsDevelopment())

	app := fiber.New(fiber.Config{
		AppName:      "Stockroom API v1.0",
		ErrorHandler: handler.ErrorHandler,
	})

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
	}))

	api.Get("/health", handler.Health)

	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", middleware.RequireAuth(repos.Users), authHandler.Logout)
	auth.Get("/me", middleware.RequireAuth(repos.Users), authHandler.Me)

	protected := api.Group("", middleware.RequireAuth(repos.Users))
	admin := middleware.RequireAdmin()

	protected.Get("/products", productHandler.List)
	protected.Get("/products/:id", productHandler.Get)
	protected.Post("/products", admin, productHandler.Create)
	protected.Put("/products/:id", admin, productHandler.Update)
	protected.Delete("/products/:id", admin, productHandler.Delete)

	protected.Get("/categories", categoryHandler.List)
	protected.Get("/categories/:id", categoryHandler.Get)
	protected.Post("/categories", admin, categoryHandler.Create)
	protected.Put("/categories/:id", admin, categoryHandler.Update)
	protected.Delete("/categories/:id", admin, categoryHandler.Delete)

	protected.Get("/suppliers", supplierHandler.List)
	protected.Get("/suppliers/:id", supplierHandler.Get)
	protected.Post("/suppliers", admin, supplierHandler.Create)
	protected.Put("/suppliers/:id", admin, supplierHandler.Update)
	protected.Delete("/suppliers/:id", admin, supplierHandler.Delete)

	// Fixed paths register before the :id routes so they are not captured as
	// inventory IDs.
	protected.Get("/inventory/low-stock", inventoryHandler.LowStock)
	protected.Get("/inventory/value", inventoryHandler.Value)
	protected.Get("/inventory", inventoryHandler.List)
	protected.Get("/inventory/:id", inventoryHandler.Get)
	protected.Get("/inventory/:id/transactions", inventoryHandler.Transactions)
	protected.Post("/inventory", admin, inventoryHandler.Create)
	protected.Put("/inventory/:id", admin, inventoryHandler.Update)
	protected.Put("/inventory/:id/stock", admin, inventoryHandler.UpdateStock)
	protected.Delete("/inventory/:id", admin, inventoryHandler.Delete)

	protected.Get("/reports/dashboard", reportHandler.Dashboard)
	protected.Get("/reports/inventory-summary", reportHandler.InventorySummary)
	protected.Get("/reports/low-stock", reportHandler.LowStock)
	protected.Get("/reports/transactions", reportHandler.Transactions)

	users := protected.Group("/users", admin)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		hub.Register <- c
		defer func() { hub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Route not found",
		})
	})

	return app
}
