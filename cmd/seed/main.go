// seed carga datos de demostración: materias primas, un producto terminado
// con BOM y ruta, centros de trabajo y stock inicial.
//
// Uso: go run ./cmd/seed
// Requiere la misma configuración de BD que cmd/api (DATABASE_URL o DB_*).
package main

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/application/stock"
	"github.com/tu-usuario/manufacturing-pro/internal/application/usecase"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/routing"
	"github.com/tu-usuario/manufacturing-pro/internal/infrastructure/events"
	"github.com/tu-usuario/manufacturing-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/manufacturing-pro/pkg/config"
	"github.com/tu-usuario/manufacturing-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: "seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	bomRepo := postgres.NewBOMRepository(pool)
	routeRepo := postgres.NewRouteRepository(pool)
	centerRepo := postgres.NewWorkCenterRepository(pool)
	entryRepo := postgres.NewStockEntryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	publisher := events.NewLogPublisher(log.Zerolog())

	productUC := usecase.NewProductUseCase(productRepo)
	bomUC := usecase.NewBOMUseCase(productRepo, bomRepo)
	centerUC := usecase.NewWorkCenterUseCase(centerRepo)
	ledgerUC := stock.NewLedgerUseCase(txRunner, entryRepo, productRepo, publisher)

	// Materias primas
	tablero, err := productUC.Create(ctx, usecase.CreateProductInput{
		SKU: "MAT-TABLERO", Name: "Tablero melamina 18mm",
		MinStock: decimal.NewFromInt(20),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear material tablero")
	}
	tornillos, err := productUC.Create(ctx, usecase.CreateProductInput{
		SKU: "MAT-TORNILLO", Name: "Tornillo 4x40 (caja x100)",
		MinStock: decimal.NewFromInt(50),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear material tornillos")
	}

	// Producto terminado con BOM y ruta propia
	escritorio, err := productUC.Create(ctx, usecase.CreateProductInput{
		SKU: "PROD-ESCRITORIO", Name: "Escritorio de oficina 120cm",
		Description: "Escritorio melamina con estructura metálica",
		IsFinished:  true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear producto terminado")
	}

	err = bomUC.Replace(ctx, escritorio.ID, []entity.BOMLine{
		{MaterialID: tablero.ID, QuantityPerUnit: decimal.NewFromInt(2)},
		{MaterialID: tornillos.ID, QuantityPerUnit: decimal.NewFromInt(3)},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cargar BOM")
	}

	// Ruta explícita igual a la por defecto, como ejemplo de configuración
	if err := routeRepo.ReplaceForProduct(escritorio.ID, routing.Resolve(true, nil)); err != nil {
		log.Fatal().Err(err).Msg("cargar ruta")
	}

	// Centros de trabajo con nombres que calzan con los pasos de la ruta
	for _, wc := range []struct {
		name     string
		capacity int64
	}{
		{"Ensamblaje", 4},
		{"Control de Calidad", 8},
		{"Empaque", 10},
	} {
		if _, err := centerUC.Create(ctx, wc.name, decimal.NewFromInt(wc.capacity)); err != nil {
			log.Fatal().Err(err).Str("centro", wc.name).Msg("crear centro de trabajo")
		}
	}

	// Stock inicial de materiales
	for _, opening := range []struct {
		productID string
		qty       int64
	}{
		{tablero.ID, 100},
		{tornillos.ID, 300},
	} {
		_, _, err := ledgerUC.RegisterEntry(ctx, stock.PostInput{
			ProductID:  opening.productID,
			Direction:  entity.EntryDirectionIN,
			Quantity:   decimal.NewFromInt(opening.qty),
			SourceType: entity.EntrySourceSeed,
			Note:       "carga inicial",
			CreatedBy:  "seed",
		})
		if err != nil {
			log.Fatal().Err(err).Str("producto", opening.productID).Msg("stock inicial")
		}
	}

	log.Info().
		Str("terminado", escritorio.SKU).
		Msg("datos de demostración cargados")
}
