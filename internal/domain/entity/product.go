package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU. IsFinished marca los productos
// terminados (fabricables, con BOM y ruta); el resto son materias primas.
// La identidad (ID, SKU, IsFinished) es inmutable; los metadatos no.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	IsFinished  bool
	MinStock    decimal.Decimal // umbral de stock mínimo (0 = sin umbral)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
