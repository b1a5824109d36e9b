package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/lotionhq/huddle/internal/api"
	"github.com/lotionhq/huddle/internal/cli"
	"github.com/lotionhq/huddle/internal/db"
	"github.com/lotionhq/huddle/internal/services"
)

func main() {
	resetEmail := flag.String("reset-password", "", "issue a temporary password for the given email and exit")
	flag.Parse()

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "huddle.db"))
	port := getEnv("PORT", "8080")
	teamPassphrase := os.Getenv("TEAM_PASSPHRASE")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	if *resetEmail != "" {
		if err := cli.RunResetPasswordCommand(dbPath, *resetEmail); err != nil {
			log.Fatalf("password reset failed: %v", err)
		}
		return
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repositories := db.NewRepositories(database)
	setup := services.NewSetupService(repositories.Buckets, repositories.Tasks, repositories.Users)
	seeded, err := setup.EnsureSeedBuckets()
	if err != nil {
		log.Fatalf("seed buckets failed: %v", err)
	}
	if seeded {
		log.Printf("installed default bucket catalog")
	}
	adminEmail, adminPassword, err := setup.EnsureBootstrapAdmin()
	if err != nil {
		log.Fatalf("bootstrap admin failed: %v", err)
	}
	if adminPassword != "" {
		log.Printf("created bootstrap admin %s with initial password %s (change it after first login)", adminEmail, adminPassword)
	}

	handler := api.NewHandler(database, secretKey, location, cookieSecure, teamPassphrase)

	app := fiber.New(fiber.Config{
		AppName:               "Huddle",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     getEnv("CORS_ORIGIN", "http://localhost:3000"),
		AllowCredentials: true,
	}))

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Huddle listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
