package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/manufacturing-pro/internal/application/production"
	"github.com/tu-usuario/manufacturing-pro/internal/application/stock"
	"github.com/tu-usuario/manufacturing-pro/internal/application/usecase"
	"github.com/tu-usuario/manufacturing-pro/internal/infrastructure/events"
	"github.com/tu-usuario/manufacturing-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/manufacturing-pro/internal/interfaces/http"
	"github.com/tu-usuario/manufacturing-pro/pkg/config"
	"github.com/tu-usuario/manufacturing-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	bomRepo := postgres.NewBOMRepository(pool)
	centerRepo := postgres.NewWorkCenterRepository(pool)
	orderRepo := postgres.NewManufacturingOrderRepository(pool)
	workRepo := postgres.NewWorkOrderRepository(pool)
	entryRepo := postgres.NewStockEntryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Publicador de eventos: Kafka si hay brokers configurados, si no al log.
	var publisher interface {
		production.EventPublisher
		stock.EventPublisher
	}
	if len(cfg.Events.Brokers) > 0 {
		kafkaPub := events.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic, log.Zerolog())
		defer func() {
			if err := kafkaPub.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar publicador Kafka")
			}
		}()
		publisher = kafkaPub
		log.Info().Strs("brokers", cfg.Events.Brokers).Str("topic", cfg.Events.Topic).Msg("eventos hacia Kafka")
	} else {
		publisher = events.NewLogPublisher(log.Zerolog())
		log.Info().Msg("eventos hacia el log (sin brokers Kafka)")
	}

	productUC := usecase.NewProductUseCase(productRepo)
	bomUC := usecase.NewBOMUseCase(productRepo, bomRepo)
	workCenterUC := usecase.NewWorkCenterUseCase(centerRepo)
	ledgerUC := stock.NewLedgerUseCase(txRunner, entryRepo, productRepo, publisher)
	createOrderUC := production.NewCreateOrderUseCase(txRunner, orderRepo, workRepo, publisher)
	cancelOrderUC := production.NewCancelOrderUseCase(txRunner, publisher)
	workOrderUC := production.NewWorkOrderUseCase(txRunner, publisher)
	availability := production.NewAvailabilityChecker(orderRepo, entryRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	httpRouter.RegisterSwagger(app, "./docs/swagger.json", "Manufacturing Pro API", log.Zerolog())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		BOMUC:        bomUC,
		WorkCenterUC: workCenterUC,
		LedgerUC:     ledgerUC,
		CreateOrder:  createOrderUC,
		CancelOrder:  cancelOrderUC,
		WorkOrderUC:  workOrderUC,
		Availability: availability,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
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
