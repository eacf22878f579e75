package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/kenmoh/servipal-backend/cmd"
	httpin "github.com/kenmoh/servipal-backend/internal/adapters/in/http"
	"github.com/kenmoh/servipal-backend/internal/adapters/out/postgres/deliveryrepo"
	"github.com/kenmoh/servipal-backend/internal/adapters/out/postgres/riderrepo"
	"github.com/kenmoh/servipal-backend/internal/adapters/out/postgres/transactionrepo"
	"github.com/kenmoh/servipal-backend/internal/adapters/out/postgres/walletrepo"
	"github.com/kenmoh/servipal-backend/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateReleaseStaleAssignmentsCommandHandler(),
		configs.AssignmentTimeout,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
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
		AssignmentTimeout: goDotEnvDuration("ASSIGNMENT_TIMEOUT"),
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

func goDotEnvDuration(key string) time.Duration {
	value, err := time.ParseDuration(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&deliveryrepo.DeliveryOrderDTO{},
		&riderrepo.RiderProfileDTO{},
		&walletrepo.WalletDTO{},
		&transactionrepo.TransactionDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateAssignRiderCommandHandler(),
		app.CreateAcceptDeliveryCommandHandler(),
		app.CreateDeclineDeliveryCommandHandler(),
		app.CreatePickupDeliveryCommandHandler(),
		app.CreateMarkInTransitCommandHandler(),
		app.CreateMarkDeliveredCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateCancelBySenderCommandHandler(),
		app.CreateCancelByRiderCommandHandler(),
		app.CreateGetWalletQueryHandler(),
		app.CreateGetDeliveryOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
