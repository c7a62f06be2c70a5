package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/techmaster-vietnam/blogos"
	"github.com/techmaster-vietnam/blogos/database"
	"github.com/techmaster-vietnam/goerrorkit"
)

func main() {
	// 0. Load .env file
	if err := godotenv.Load(); err != nil {
		_ = goerrorkit.WrapWithMessage(err, "Warning: .env file not found, using default values or environment variables")
	}

	// 1. Initialize goerrorkit logger
	goerrorkit.InitLogger(goerrorkit.LoggerOptions{
		ConsoleOutput: true,
		FileOutput:    true,
		FilePath:      "logs/errors.log",
		JSONFormat:    true,
		MaxFileSize:   10,
		MaxBackups:    5,
		MaxAge:        30,
		LogLevel:      "info",
	})

	// 2. Configure stack trace for this application
	goerrorkit.ConfigureForApplication("main")

	// 3. Load configuration
	cfg, err := blogos.LoadConfig()
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(cfg.Blog.ArchiveDir, 0o755); err != nil {
		panic(goerrorkit.NewSystemError(err).WithData(map[string]interface{}{
			"archive_dir": cfg.Blog.ArchiveDir,
		}))
	}

	// 4. Connect to database
	db, err := database.Open(cfg.Database)
	if err != nil {
		panic(err)
	}

	// 5. Run migrations
	if err := database.RunMigrations(db, cfg.Database.Name); err != nil {
		panic(goerrorkit.NewSystemError(err).WithData(map[string]interface{}{
			"operation": "migration",
			"database":  cfg.Database.Name,
		}))
	}

	// 6. Seed demo data (only if SEED_DATA=true)
	if err := SeedData(db, cfg); err != nil {
		panic(goerrorkit.WrapWithMessage(err, "Failed to seed initial data").WithData(map[string]interface{}{
			"operation": "seed_data",
		}))
	}

	// 7. Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "BlogOS",
		BodyLimit:    cfg.Server.BodyLimit,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	// 8. Add middleware (RequestID must be before ErrorHandler)
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(goerrorkit.FiberErrorHandler())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Content-Disposition",
	}))

	// 9. Initialize BlogOS
	bo, err := blogos.New(app, db).WithConfig(cfg).Initialize()
	if err != nil {
		panic(goerrorkit.WrapWithMessage(err, "Failed to initialize blogos"))
	}

	// 10. Setup routes
	bo.RegisterRoutes()

	// 11. Start server
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		panic(goerrorkit.NewSystemError(err))
	}
}
