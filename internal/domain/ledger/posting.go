package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
)

// Post calcula el cambio con signo y el saldo resultante de un asiento
// (servicio de dominio, sin efectos).
// BalanceAfter = SaldoAnterior + Change; Change = +Quantity (IN) o -Quantity (OUT).
// Una salida puede dejar el saldo negativo: el libro no lo impide.
func Post(prev decimal.Decimal, direction string, quantity decimal.Decimal) (change, balanceAfter decimal.Decimal, err error) {
	if !quantity.GreaterThan(decimal.Zero) {
		return decimal.Zero, decimal.Zero, domain.ErrInvalidInput
	}
	switch direction {
	case entity.EntryDirectionIN:
		change = quantity
	case entity.EntryDirectionOUT:
		change = quantity.Neg()
	default:
		return decimal.Zero, decimal.Zero, domain.ErrInvalidInput
	}
	return change, prev.Add(change), nil
}

// Verify repite la cadena de asientos de un producto desde cero y comprueba
// que cada BalanceAfter coincide con SaldoAnterior + Change. Los asientos
// deben venir en orden de creación (Seq ascendente).
func Verify(entries []*entity.StockEntry) error {
	balance := decimal.Zero
	for i, e := range entries {
		balance = balance.Add(e.Change)
		if !balance.Equal(e.BalanceAfter) {
			return fmt.Errorf("asiento %d (seq %d): balance_after %s, esperado %s",
				i, e.Seq, e.BalanceAfter.String(), balance.String())
		}
	}
	return nil
}
