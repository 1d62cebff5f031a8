package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/clinicrepo"
	"fulfillment/internal/adapters/out/postgres/courierrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/stockrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := mustConnectDB(configs)
	mustMigrate(db)

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Failed to create job manager: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		ERPBaseURL:        goDotEnvVariable("ERP_BASE_URL"),
		ERPUsername:       goDotEnvVariable("ERP_USERNAME"),
		ERPPassword:       goDotEnvVariable("ERP_PASSWORD"),
		StockSyncSchedule: goDotEnvVariable("STOCK_SYNC_SCHEDULE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&stockrepo.StockRecordDTO{},
		&courierrepo.CourierDTO{},
		&clinicrepo.ClinicDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateTakeForAssemblyCommandHandler(),
		app.CreateMarkItemUnavailableCommandHandler(),
		app.CreateResolveReplacementCommandHandler(),
		app.CreateMarkAssembledCommandHandler(),
		app.CreateCompleteTaxiDeliveryCommandHandler(),
		app.CreateAssignRouteCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateReconcileStockCommandHandler(),
		app.CreateCreateCourierCommandHandler(),
		app.CreateCreateClinicCommandHandler(),
		app.CreateGetReadyOrdersQueryHandler(),
		app.CreatePlanRouteQueryHandler(),
		app.CreateGetStockQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
