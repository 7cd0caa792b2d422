package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/ledger"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestPost_Entrada(t *testing.T) {
	change, balance, err := ledger.Post(d(10), entity.EntryDirectionIN, d(5))
	require.NoError(t, err)
	assert.True(t, change.Equal(d(5)))
	assert.True(t, balance.Equal(d(15)))
}

func TestPost_Salida(t *testing.T) {
	change, balance, err := ledger.Post(d(10), entity.EntryDirectionOUT, d(4))
	require.NoError(t, err)
	assert.True(t, change.Equal(d(-4)))
	assert.True(t, balance.Equal(d(6)))
}

func TestPost_SalidaPuedeDejarSaldoNegativo(t *testing.T) {
	// El libro registra la realidad, no la bloquea: una salida mayor al
	// saldo deja el balance en negativo.
	_, balance, err := ledger.Post(d(3), entity.EntryDirectionOUT, d(10))
	require.NoError(t, err)
	assert.True(t, balance.Equal(d(-7)))
}

func TestPost_CantidadInvalida(t *testing.T) {
	_, _, err := ledger.Post(d(10), entity.EntryDirectionIN, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = ledger.Post(d(10), entity.EntryDirectionIN, d(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPost_DireccionInvalida(t *testing.T) {
	_, _, err := ledger.Post(d(10), "SIDEWAYS", d(1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func cadena(changes ...int64) []*entity.StockEntry {
	var entries []*entity.StockEntry
	balance := decimal.Zero
	for i, c := range changes {
		balance = balance.Add(d(c))
		entries = append(entries, &entity.StockEntry{
			Seq:          int64(i + 1),
			Change:       d(c),
			BalanceAfter: balance,
		})
	}
	return entries
}

func TestVerify_CadenaConsistente(t *testing.T) {
	assert.NoError(t, ledger.Verify(cadena(10, -4, 7, -13)))
	assert.NoError(t, ledger.Verify(nil), "libro vacío")
}

func TestVerify_DetectaCorrupcion(t *testing.T) {
	entries := cadena(10, -4, 7)
	entries[1].BalanceAfter = d(99)

	err := ledger.Verify(entries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seq 2")
}
