package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/arodena/focusfeed/internal/api"
	"github.com/arodena/focusfeed/internal/cli"
	"github.com/arodena/focusfeed/internal/db"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	dbPath := getEnv("DB_PATH", filepath.Join("data", "focusfeed.db"))

	if len(os.Args) > 1 {
		if err := runCommand(dbPath, os.Args[1:]); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "false") == "true"

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, secretKey, cookieSecure, nil)

	app := fiber.New(fiber.Config{
		AppName:               "FocusFeed",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	if origin := os.Getenv("CLIENT_ORIGIN"); origin != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     origin,
			AllowCredentials: true,
		}))
	}

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

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

	log.Printf("FocusFeed listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func runCommand(dbPath string, args []string) error {
	switch args[0] {
	case "reset-password":
		if len(args) != 2 {
			return errors.New("usage: focusfeed reset-password <email>")
		}
		return cli.RunResetPasswordCommand(dbPath, args[1])
	case "set-password":
		if len(args) != 2 {
			return errors.New("usage: focusfeed set-password <email>")
		}
		return cli.RunSetPasswordCommand(dbPath, args[1])
	case "promote-admin":
		if len(args) != 2 {
			return errors.New("usage: focusfeed promote-admin <email>")
		}
		return cli.RunPromoteAdminCommand(dbPath, args[1])
	default:
		return fmt.Errorf("unknown command %q (expected reset-password, set-password or promote-admin)", args[0])
	}
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	switch secret {
	case "change_me_in_production", "replace_with_at_least_32_random_characters":
		return "", errors.New("SECRET_KEY still uses a placeholder value")
	}
	if len(secret) < 32 {
		return "", errors.New("SECRET_KEY must be at least 32 characters")
	}
	return secret, nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
