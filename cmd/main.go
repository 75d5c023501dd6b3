package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/dimassfeb-09/sima-app-web/internal/auth"
	"github.com/dimassfeb-09/sima-app-web/internal/config"
	v1 "github.com/dimassfeb-09/sima-app-web/internal/handler/http/v1"
	"github.com/dimassfeb-09/sima-app-web/internal/handler/ws"
	"github.com/dimassfeb-09/sima-app-web/internal/realtime"
	"github.com/dimassfeb-09/sima-app-web/internal/repository"
	"github.com/dimassfeb-09/sima-app-web/internal/routing"
	"github.com/dimassfeb-09/sima-app-web/internal/service"
	"github.com/dimassfeb-09/sima-app-web/pkg/logger"
	"github.com/dimassfeb-09/sima-app-web/pkg/postgres"
	redisclient "github.com/dimassfeb-09/sima-app-web/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/dimassfeb-09/sima-app-web/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SIMA Dispatch API
// @version 1.0
// @description Emergency report dispatch dashboard API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация менеджера токенов
	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(dbpool)
	orgRepo := repository.NewOrganizationRepository(dbpool, redisClient, cfg.OrgCacheTTL)
	reportRepo := repository.NewReportRepository(dbpool)
	countsRepo := repository.NewCountsRepository(dbpool)

	// Инициализация канала событий отчетов
	broadcaster := realtime.NewRedisBroadcaster(redisClient)
	eventSource := realtime.NewRedisEventSource(redisClient)

	// Инициализация клиента маршрутизации
	routes := routing.NewClient(cfg.RoutingBaseURL, cfg.RoutingTimeout, log)

	// Инициализация сервисов
	authService := service.NewAuthService(userRepo, countsRepo, tokens, log)
	orgService := service.NewOrganizationService(orgRepo, log)
	reportService := service.NewReportService(reportRepo, orgRepo, broadcaster, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(authService, orgService, reportService, log, cfg)
	gateway := ws.NewGateway(orgService, reportService, eventSource, routes, log)

	// Настройка Gin роутера
	router := gin.Default()

	// CORS для дашборда
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, tokens)

	// Websocket-шлюз дашборда (токен передается query-параметром)
	api.GET("/ws", v1.AuthMiddleware(tokens, log), gateway.Handle)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
