package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/customerrepo"
	"fulfillment/internal/adapters/out/postgres/driverrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultDriverIdleAfter = 30 * time.Minute

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateDispatchNextOrderCommandHandler(),
		app.CreateMarkIdleDriversOfflineCommandHandler(),
		configs.DriverIdleAfter,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
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
		DriverIdleAfter: defaultDriverIdleAfter,
	}

	if raw := os.Getenv("DRIVER_IDLE_AFTER"); raw != "" {
		idleAfter, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid DRIVER_IDLE_AFTER value %q: %v", raw, err)
		}
		config.DriverIdleAfter = idleAfter
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&driverrepo.DriverDTO{},
		&customerrepo.CustomerDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCreateManualOrderCommandHandler(),
		app.CreateStartPreparingCommandHandler(),
		app.CreateAssignDriverCommandHandler(),
		app.CreateReleaseDriverCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateDispatchNextOrderCommandHandler(),
		app.CreateCreateDriverCommandHandler(),
		app.CreateUpdateDriverCommandHandler(),
		app.CreateDeleteDriverCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetAvailableDriversQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
