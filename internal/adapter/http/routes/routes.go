package routes

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"

	_ "mecanica_workorder/docs"
	"mecanica_workorder/internal/adapter/http/handlers"
	"mecanica_workorder/internal/infrastructure/config"
	"mecanica_workorder/internal/infrastructure/logging"
	"mecanica_workorder/internal/infrastructure/notifications"
	"mecanica_workorder/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(context.Background(), cfg, logger); err != nil {
		logger.Fatal("failed to wire the application", zap.Error(err))
	}

	logger.Info("http server starting", zap.Int("port", cfg.HTTPPort), zap.String("store", cfg.StoreDriver))
	if err := router.Run(":" + strconv.Itoa(cfg.HTTPPort)); err != nil {
		logger.Fatal("failed to startup the application", zap.Error(err))
	}
}

func getRoutes(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	stores, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}

	catalog := usecase.NewStageCatalog(stores.templates)
	seeded, err := catalog.EnsureSeeded(ctx, usecase.ParseStageSeed(cfg.StageCatalogSeed))
	if err != nil {
		return fmt.Errorf("seed stage catalog: %w", err)
	}
	if seeded {
		logger.Info("stage catalog seeded")
	}

	lifecycleCfg := usecase.DefaultLifecycleConfig()
	lifecycleCfg.MaxAttempts = cfg.LifecycleMaxAttempts
	lifecycleCfg.NotifyTimeout = cfg.NotifyTimeout
	lifecycleUseCase := usecase.NewWorkOrderLifecycle(
		stores.workOrders,
		catalog,
		notifications.New(cfg, logger),
		logger,
		lifecycleCfg,
	)

	workOrderHandler := handlers.NewWorkOrderHandler(lifecycleUseCase, logger)
	stageCatalogHandler := handlers.NewStageCatalogHandler(catalog)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkOrderRoutes(v1, workOrderHandler, stageCatalogHandler)
	return nil
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
