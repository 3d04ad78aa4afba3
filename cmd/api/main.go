package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/fruver-api/internal/application/notification"
	"github.com/jhoicas/fruver-api/internal/application/usecase"
	"github.com/jhoicas/fruver-api/internal/domain/expiry"
	"github.com/jhoicas/fruver-api/internal/infrastructure/postgres"
	"github.com/jhoicas/fruver-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/fruver-api/internal/interfaces/http"
	"github.com/jhoicas/fruver-api/pkg/config"
	"github.com/jhoicas/fruver-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	inventoryRepo := postgres.NewInventoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)

	rules := expiry.Rules{
		NearExpiryDays:    cfg.Alerts.NearExpiryDays,
		LowStockThreshold: cfg.Alerts.LowStockThreshold,
	}
	today := expiry.SystemClock(cfg.App.Location())

	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, xlsx.NewInventoryExporter(), rules, today)
	alertUC := usecase.NewAlertUseCase(inventoryRepo, rules, today, cfg.Alerts.RecentLimit)
	lotUC := usecase.NewLotUseCase(lotRepo, log, cfg.Alerts.RecentLimit)
	productUC := usecase.NewProductUseCase(productRepo, cfg.Alerts.RecentLimit)
	userUC := usecase.NewUserUseCase(userRepo)
	reportUC := usecase.NewReportUseCase(reportRepo, cfg.Alerts.ReportLimit)
	notificationUC := notification.NewUseCase(notificationRepo, today, cfg.Notification.LookupTimeout, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.CORSOrigins}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Fruver API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger no disponible, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName:    cfg.App.Name,
		DB:             pool,
		InventoryUC:    inventoryUC,
		AlertUC:        alertUC,
		LotUC:          lotUC,
		ProductUC:      productUC,
		UserUC:         userUC,
		ReportUC:       reportUC,
		NotificationUC: notificationUC,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
