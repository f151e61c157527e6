package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mediorder/cmd"
	httpin "mediorder/internal/adapters/in/http"
	"mediorder/internal/adapters/out/geo"
	"mediorder/internal/generated/servers"
)

const (
	defaultGeocoderTimeout      = 5 * time.Second
	defaultReassignmentCronSpec = "0 * * * * *" // once a minute
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := gorm.Open(gorm_postgres.Open(postgresDSN(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	geocoder, err := geo.NewOpenCageGeocoder(
		configs.GeocoderBaseURL, configs.GeocoderAPIKey, geocoderTimeout(configs))
	if err != nil {
		log.Fatalf("Failed to create geocoder: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, db, geocoder, logger)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		GeocoderBaseURL:      goDotEnvVariable("GEOCODER_BASE_URL"),
		GeocoderAPIKey:       goDotEnvVariable("GEOCODER_API_KEY"),
		GeocoderTimeout:      goDotEnvVariable("GEOCODER_TIMEOUT"),
		ReassignmentCronSpec: goDotEnvVariable("REASSIGNMENT_CRON_SPEC"),
	}

	if config.ReassignmentCronSpec == "" {
		config.ReassignmentCronSpec = defaultReassignmentCronSpec
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

func postgresDSN(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
}

func geocoderTimeout(configs cmd.Config) time.Duration {
	if configs.GeocoderTimeout == "" {
		return defaultGeocoderTimeout
	}

	timeout, err := time.ParseDuration(configs.GeocoderTimeout)
	if err != nil {
		log.Fatalf("Invalid GEOCODER_TIMEOUT %q: %v", configs.GeocoderTimeout, err)
	}
	return timeout
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateAcceptOrderCommandHandler(),
		root.CreateRejectOrderCommandHandler(),
		root.CreateUpdateOrderStatusCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetOrderByNumberQueryHandler(),
		root.CreateGetPendingOrdersQueryHandler(),
		root.CreateGetNearbyPharmaciesQueryHandler(),
		root.CreateGetDeliveryEstimateQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
