package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de un asiento de stock.
const (
	EntryDirectionIN  = "IN"  // entrada
	EntryDirectionOUT = "OUT" // salida
)

// Orígenes de un asiento de stock.
const (
	EntrySourceManual     = "MANUAL"     // ajuste manual
	EntrySourceSeed       = "SEED"       // carga inicial
	EntrySourceSettlement = "SETTLEMENT" // liquidación de orden de producción
)

// StockEntry asiento del libro de stock de un producto. Inmutable una vez
// escrito: el libro es append-only y el saldo vigente es el BalanceAfter del
// asiento más reciente. Seq es el orden de creación y el desempate
// determinista frente a timestamps iguales.
type StockEntry struct {
	ID           string
	Seq          int64
	ProductID    string
	Direction    string
	Quantity     decimal.Decimal // siempre positiva
	Change       decimal.Decimal // con signo: +Quantity o -Quantity
	BalanceAfter decimal.Decimal
	SourceType   string
	SourceID     string
	Note         string
	CreatedBy    string
	CreatedAt    time.Time
}
