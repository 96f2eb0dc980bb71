package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nagaralert/nagarhub/internal/pkg/config"
	"github.com/nagaralert/nagarhub/internal/pkg/database"
	"github.com/nagaralert/nagarhub/internal/pkg/health"
	"github.com/nagaralert/nagarhub/internal/pkg/logger"
	"github.com/nagaralert/nagarhub/internal/pkg/middleware"
	natspkg "github.com/nagaralert/nagarhub/internal/pkg/nats"
	nrpkg "github.com/nagaralert/nagarhub/internal/pkg/newrelic"
	"github.com/nagaralert/nagarhub/internal/pkg/server"
	authGateway "github.com/nagaralert/nagarhub/services/auth/gateway"
	authHandlerPkg "github.com/nagaralert/nagarhub/services/auth/handler"
	authHTTP "github.com/nagaralert/nagarhub/services/auth/handler/http"
	authRepository "github.com/nagaralert/nagarhub/services/auth/repository"
	authUsecase "github.com/nagaralert/nagarhub/services/auth/usecase"
	reportGateway "github.com/nagaralert/nagarhub/services/reports/gateway"
	reportHandlerPkg "github.com/nagaralert/nagarhub/services/reports/handler"
	reportHTTP "github.com/nagaralert/nagarhub/services/reports/handler/http"
	reportNATS "github.com/nagaralert/nagarhub/services/reports/handler/nats"
	reportRepository "github.com/nagaralert/nagarhub/services/reports/repository"
	reportUsecase "github.com/nagaralert/nagarhub/services/reports/usecase"
)

func main() {
	appName := "nagarhub"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/nagarhub.env"
	}
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Report service wiring
	reportRepo := reportRepository.NewReportRepo(configs, postgresClient.GetDB())
	reportGW := reportGateway.NewReportGW(configs, natsClient)
	reportUC := reportUsecase.NewReportUC(configs, reportRepo, reportGW)
	reportHandler := reportHTTP.NewReportHandler(reportUC)
	reportNatsHandler := reportNATS.NewNatsHandler(reportUC, natsClient)
	reportsHandler := reportHandlerPkg.NewHandler(reportHandler, reportNatsHandler, configs)

	// Auth service wiring
	authRepo := authRepository.NewAuthRepo(configs, postgresClient.GetDB(), redisClient)
	authGW := authGateway.NewAuthGW(configs)
	authUC := authUsecase.NewAuthUC(configs, authRepo, authGW)
	authHandler := authHTTP.NewAuthHandler(authUC)
	authsHandler := authHandlerPkg.NewHandler(authHandler)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	if err := reportsHandler.RegisterRoutes(e); err != nil {
		zapLogger.Fatal("Failed to register report routes", zap.Error(err))
	}
	authsHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error", zap.Error(err))
	}
}
