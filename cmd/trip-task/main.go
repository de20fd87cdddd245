package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Lupao-eth/trip-task/internal/pkg/config"
	"github.com/Lupao-eth/trip-task/internal/pkg/database"
	"github.com/Lupao-eth/trip-task/internal/pkg/health"
	"github.com/Lupao-eth/trip-task/internal/pkg/logger"
	"github.com/Lupao-eth/trip-task/internal/pkg/middleware"
	natspkg "github.com/Lupao-eth/trip-task/internal/pkg/nats"
	"github.com/Lupao-eth/trip-task/internal/pkg/server"
	"github.com/Lupao-eth/trip-task/internal/pkg/storage"
	wspkg "github.com/Lupao-eth/trip-task/internal/pkg/websocket"
	bookingsGateway "github.com/Lupao-eth/trip-task/services/bookings/gateway"
	bookingsHandler "github.com/Lupao-eth/trip-task/services/bookings/handler"
	bookingsRepository "github.com/Lupao-eth/trip-task/services/bookings/repository"
	bookingsUsecase "github.com/Lupao-eth/trip-task/services/bookings/usecase"
	chatGateway "github.com/Lupao-eth/trip-task/services/chat/gateway"
	chatHandler "github.com/Lupao-eth/trip-task/services/chat/handler"
	chatRepository "github.com/Lupao-eth/trip-task/services/chat/repository"
	chatUsecase "github.com/Lupao-eth/trip-task/services/chat/usecase"
	usersHandler "github.com/Lupao-eth/trip-task/services/users/handler"
	usersRepository "github.com/Lupao-eth/trip-task/services/users/repository"
	usersUsecase "github.com/Lupao-eth/trip-task/services/users/usecase"
)

func main() {
	appName := "trip-task"
	configPath := config.GetEnv("CONFIG_PATH", "config/app.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize blob storage for chat attachments
	blobStore, err := storage.NewS3Client(configs.Storage)
	if err != nil {
		zapLogger.Fatal("Failed to initialize blob storage", logger.Err(err))
	}

	// Repositories
	userRepo := usersRepository.NewUserRepository(configs, postgresClient.GetDB(), redisClient)
	bookingRepo := bookingsRepository.NewBookingRepository(configs, postgresClient.GetDB())
	chatRepo := chatRepository.NewChatRepository(configs, postgresClient.GetDB(), redisClient)

	// Gateways
	bookingGW := bookingsGateway.NewBookingGW(natsClient)
	chatGW := chatGateway.NewChatGW(natsClient)

	// Usecases
	userUC, err := usersUsecase.NewUserUC(configs, userRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize users usecase", logger.Err(err))
	}

	// The users usecase doubles as the rider gate for booking acceptance checks
	bookingUC, err := bookingsUsecase.NewBookingUC(configs, bookingRepo, bookingGW, userUC)
	if err != nil {
		zapLogger.Fatal("Failed to initialize bookings usecase", logger.Err(err))
	}

	chatUC, err := chatUsecase.NewChatUC(configs, chatRepo, chatGW, bookingRepo, blobStore)
	if err != nil {
		zapLogger.Fatal("Failed to initialize chat usecase", logger.Err(err))
	}

	// Handlers
	wsManager := wspkg.NewManager(configs.JWT)
	usersH := usersHandler.NewHandler(userUC, natsClient, configs)
	bookingsH := bookingsHandler.NewHandler(bookingUC, configs)
	chatH := chatHandler.NewHandler(chatUC, wsManager, configs)

	if err := usersH.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Health endpoints with dependency probes
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, healthService)

	// Service routes
	usersH.RegisterRoutes(e)
	bookingsH.RegisterRoutes(e)
	chatH.RegisterRoutes(e)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		usersH.Close()
		return nil
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Shutdown finished with errors", logger.Err(err))
	}
}
