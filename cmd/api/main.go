package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"aidbridge/internal/config"
	"aidbridge/internal/domain"
	"aidbridge/internal/handler"
	"aidbridge/internal/middleware"
	"aidbridge/internal/repository"
	"aidbridge/internal/service"
	"aidbridge/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	var db *sqlx.DB
	if cfg.StoreBackend == "postgres" {
		var err error
		db, err = config.NewPostgresDB(cfg)
		if err != nil {
			logrus.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
	}

	var rdb *redis.Client
	rdb, err := config.NewRedisClient(cfg)
	if err != nil {
		if cfg.StoreBackend == "redis" {
			logrus.Fatalf("Failed to connect to Redis: %v", err)
		}
		logrus.Warnf("Failed to connect to Redis: %v (caching and refresh sessions disabled)", err)
		rdb = nil
	} else {
		defer rdb.Close()
	}

	var minioClient *minio.Client
	minioClient, err = config.NewMinIOClient(cfg)
	if err != nil {
		logrus.Warnf("Failed to connect to MinIO: %v (snapshot export will not work)", err)
		minioClient = nil
	}

	repos, err := repository.NewRepositories(db, rdb, cfg)
	if err != nil {
		logrus.Fatalf("Failed to set up persistence: %v", err)
	}

	st, err := store.New(context.Background(), repos.KV)
	if err != nil {
		logrus.Fatalf("Failed to load entity store: %v", err)
	}

	services := service.NewServices(st, repos, rdb, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	logrus.Infof("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.RefreshToken)

	protected := v1.Group("", middleware.AuthRequired(authService))

	users := protected.Group("/users")
	users.Get("/me", h.User.GetProfile)
	users.Get("/by-role/:role", middleware.RequireRole(domain.RoleAdmin, domain.RoleLogistics), h.User.ListByRole)

	donations := protected.Group("/donations")
	donations.Post("/", middleware.RequireRole(domain.RoleDonor), h.Donation.Create)
	donations.Get("/", h.Donation.List)
	donations.Get("/:id", h.Donation.Get)
	donations.Post("/:id/cancel", middleware.RequireRole(domain.RoleDonor), h.Donation.Cancel)
	donations.Post("/:id/approve", middleware.RequireRole(domain.RoleAdmin), h.Donation.Approve)
	donations.Post("/:id/assign", middleware.RequireRole(domain.RoleLogistics), h.Donation.Assign)
	donations.Post("/:id/pick", middleware.RequireRole(domain.RoleLogistics), h.Donation.Pick)
	donations.Post("/:id/transit", middleware.RequireRole(domain.RoleLogistics), h.Donation.Transit)
	donations.Post("/:id/deliver", middleware.RequireRole(domain.RoleLogistics), h.Donation.Deliver)

	requests := protected.Group("/requests")
	requests.Post("/", middleware.RequireRole(domain.RoleRecipient), h.Request.Create)
	requests.Get("/", h.Request.List)
	requests.Get("/:id", h.Request.Get)
	requests.Post("/:id/cancel", middleware.RequireRole(domain.RoleRecipient), h.Request.Cancel)
	requests.Post("/:id/approve", middleware.RequireRole(domain.RoleAdmin), h.Request.Approve)
	requests.Post("/:id/pick", middleware.RequireRole(domain.RoleLogistics), h.Request.Pick)
	requests.Post("/:id/transit", middleware.RequireRole(domain.RoleLogistics), h.Request.Transit)
	requests.Post("/:id/deliver", middleware.RequireRole(domain.RoleLogistics), h.Request.Deliver)

	reports := protected.Group("/reports")
	reports.Get("/high-demand", middleware.RequireRole(domain.RoleAdmin), h.Report.HighDemand)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Delete("/:id", h.Notification.Dismiss)

	exports := protected.Group("/exports")
	exports.Post("/", middleware.RequireRole(domain.RoleAdmin), h.Export.Create)
}
