package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"shoplite-be/internal/cart"
	"shoplite-be/internal/config"
	"shoplite-be/internal/db"
	"shoplite-be/internal/logger"
	"shoplite-be/internal/middleware"
	"shoplite-be/internal/order"
	"shoplite-be/internal/product"
	"shoplite-be/internal/profile"
	"shoplite-be/internal/user"
	"shoplite-be/internal/wishlist"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	carts := cart.NewManager(productSvc)
	ledgers := wishlist.NewLedgers()
	inboxes := wishlist.NewInboxes()
	tracker := profile.NewTracker(cfg.ProfileRefreshInterval, orderSvc)
	defer tracker.Stop()

	app := setupApp(
		user.NewHandler(userSvc),
		product.NewHandler(productSvc),
		cart.NewHandler(carts),
		order.NewHandler(orderSvc, carts),
		wishlist.NewHandler(ledgers, inboxes),
		profile.NewHandler(tracker, ledgers),
	)

	log.Fatal(app.Listen(":" + cfg.AppPort))
}

func setupApp(
	userHandler *user.Handler,
	productHandler *product.Handler,
	cartHandler *cart.Handler,
	orderHandler *order.Handler,
	wishlistHandler *wishlist.Handler,
	profileHandler *profile.Handler,
) *fiber.App {
	app := fiber.New()

	app.Use(logger.RequestMiddleware())
	app.Use(middleware.Auth())
	app.Use(middleware.RateLimit())

	// Route guards by prefix. Handlers register concrete paths below.
	protected := []string{
		"/api/v1/cart",
		"/api/v1/checkout",
		"/api/v1/orders",
		"/api/v1/order",
		"/api/v1/wishlist",
		"/api/v1/notifications",
		"/api/v1/profile",
	}
	for _, prefix := range protected {
		app.Use(prefix, middleware.RequireAuth())
	}
	app.Use("/api/v1/admin", middleware.RequireAuth(), middleware.RequireAdmin())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	productHandler.RegisterAdminRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterAdminRoutes(app)
	wishlistHandler.RegisterProtectedRoutes(app)
	profileHandler.RegisterProtectedRoutes(app)

	return app
}
