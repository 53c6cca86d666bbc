package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"laundry/cmd"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/pricingrepo"
	"laundry/internal/adapters/out/postgres/requestrepo"
	"laundry/internal/adapters/out/postgres/userrepo"
	"laundry/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	ensureAdminAccount(&app, configs.AdminPassword)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		UploadsDir:      goDotEnvVariableOr("UPLOADS_DIR", "uploads"),
		ReceiptsDir:     goDotEnvVariableOr("RECEIPTS_DIR", "receipts"),
		AdminPassword:   goDotEnvVariableOr("ADMIN_PASSWORD", "admin123"),
		ReceiptTTLHours: goDotEnvIntOr("RECEIPT_TTL_HOURS", 168),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvVariableOr(key, fallback string) string {
	value := goDotEnvVariable(key)
	if value == "" {
		return fallback
	}
	return value
}

func goDotEnvIntOr(key string, fallback int) int {
	value := goDotEnvVariable(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return parsed
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&requestrepo.RequestDTO{},
		&pricingrepo.PricingDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func ensureAdminAccount(app *cmd.CompositionRoot, password string) {
	command, err := commands.NewEnsureAdminCommand(password)
	if err != nil {
		log.Fatalf("Error building admin bootstrap command: %v", err)
	}

	handler := app.CreateEnsureAdminCommandHandler()
	created, err := handler.Handle(context.Background(), command)
	if err != nil {
		log.Fatalf("Error ensuring admin account: %v", err)
	}
	if created {
		log.Infof("Admin account %q created", commands.AdminUsername)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(middleware.CORS())

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Static("/uploads", app.Images().Dir())
	e.Static("/receipts", app.Receipts().Dir())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
