package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"styleverse/internal/handlers"
	"styleverse/internal/middleware"
	"styleverse/internal/models"
	"styleverse/internal/repositories"
	"styleverse/internal/seed"
	"styleverse/internal/services"
	"styleverse/pkg/config"
	"styleverse/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	// TranslateError turns driver-specific unique-constraint failures into
	// gorm.ErrDuplicatedKey, which the repositories map to ConflictError.
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	accountService := services.NewAccountService(userRepo)
	catalogService := services.NewCatalogService(productRepo, seed.Default(), log)

	app := newApp(accountService, catalogService, log)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.HTTP.Port); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()
	log.Info().Str("port", cfg.HTTP.Port).Msg("server listening")

	<-quit
	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server stopped")
}

// newApp assembles the Fiber app: middleware stack plus the public,
// authentication and admin route groups.
func newApp(accounts *services.AccountService, catalog *services.CatalogService, log zerolog.Logger) *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		// Dev frontend origins; the React app calls the API directly.
		AllowOrigins:     "http://localhost:3000, http://127.0.0.1:3000",
		AllowCredentials: true,
	}))
	app.Use(middleware.RequestLogger(log))

	handlers.NewAuthHandler(accounts).RegisterRoutes(app)
	handlers.NewCatalogHandler(catalog).RegisterRoutes(app)
	handlers.NewAdminHandler(catalog).RegisterRoutes(app)

	return app
}
