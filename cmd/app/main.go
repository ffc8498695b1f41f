package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"courierhub/cmd"
	httpin "courierhub/internal/adapters/in/http"
	"courierhub/internal/adapters/out/postgres/exceptionrepo"
	"courierhub/internal/adapters/out/postgres/manifestrepo"
	"courierhub/internal/adapters/out/postgres/rtorepo"
	"courierhub/internal/adapters/out/postgres/scanrepo"
	"courierhub/internal/adapters/out/postgres/shipmentrepo"
	"courierhub/internal/jobs"
	"courierhub/internal/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateCountStrandedShipmentsQueryHandler(),
		configs.ReconciliationSchedule,
		slog.Default(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaStatusTopic:       goDotEnvVariable("KAFKA_STATUS_TOPIC"),
		PasetoPublicKeyHex:     goDotEnvVariable("PASETO_PUBLIC_KEY_HEX"),
		ReconciliationSchedule: goDotEnvVariable("RECONCILIATION_SCHEDULE"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&manifestrepo.ManifestDTO{},
		&manifestrepo.RemovalDTO{},
		&scanrepo.ScanEventDTO{},
		&exceptionrepo.ExceptionDTO{},
		&rtorepo.RTOManifestDTO{},
		&rtorepo.RTOMemberDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	auth, err := httpin.NewTenantAuth(configs.PasetoPublicKeyHex)
	if err != nil {
		log.Fatalf("Invalid PASETO public key: %v", err)
	}

	server := httpin.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateBulkCreateShipmentsCommandHandler(),
		app.CreateUpdateShipmentStatusCommandHandler(),
		app.CreateDeleteShipmentCommandHandler(),
		app.CreateCreateManifestCommandHandler(),
		app.CreateCloseManifestCommandHandler(),
		app.CreateRemanifestCommandHandler(),
		app.CreateHubInScanCommandHandler(),
		app.CreateHubOutScanCommandHandler(),
		app.CreateRaiseExceptionCommandHandler(),
		app.CreateResolveExceptionCommandHandler(),
		app.CreateInitiateRTOCommandHandler(),
		app.CreateCompleteRTOCommandHandler(),
		app.CreateResolveRTOCommandHandler(),
		app.CreateListShipmentsQueryHandler(),
		app.CreateGetShipmentByIDQueryHandler(),
		app.CreateGetManifestsQueryHandler(),
		app.CreateGetManifestByIDQueryHandler(),
		app.CreateListExceptionsQueryHandler(),
		app.CreateListRTOManifestsQueryHandler(),
	)

	e := echo.New()
	e.Validator = httpin.NewRequestValidator()
	e.Use(middleware.Recover())
	e.Use(metrics.HTTPMiddleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server.RegisterRoutes(e, auth)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
