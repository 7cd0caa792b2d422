package production

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
)

func TestAvailability_ConStockSuficiente(t *testing.T) {
	s, runner, pub := escenarioBase(t, 20, 30)
	cadena := crearOrden(t, s, runner, pub, 10)
	checker := NewAvailabilityChecker(&memOrderRepo{s}, &memEntryRepo{s})

	result, err := checker.Check(context.Background(), cadena.Order.ID)
	require.NoError(t, err)

	// Requeridos exactos (20 y 30): justo alcanza.
	assert.True(t, result.CanProduce)
	assert.Empty(t, result.Shortages)
}

func TestAvailability_ReportaSoloLosFaltantes(t *testing.T) {
	// Tableros: 10×2=20 requeridos y 15 disponibles (falta 5).
	// Tornillos: 10×3=30 requeridos y 40 disponibles (alcanza).
	s, runner, pub := escenarioBase(t, 15, 40)
	cadena := crearOrden(t, s, runner, pub, 10)
	checker := NewAvailabilityChecker(&memOrderRepo{s}, &memEntryRepo{s})

	result, err := checker.Check(context.Background(), cadena.Order.ID)
	require.NoError(t, err)

	assert.False(t, result.CanProduce)
	require.Len(t, result.Shortages, 1)
	falta := result.Shortages[0]
	assert.Equal(t, materialTablero, falta.MaterialID)
	assert.True(t, falta.Required.Equal(decimal.NewFromInt(20)))
	assert.True(t, falta.Available.Equal(decimal.NewFromInt(15)))
	assert.True(t, falta.Shortage.Equal(decimal.NewFromInt(5)))
}

func TestAvailability_MaterialSinAsientosCuentaComoCero(t *testing.T) {
	s, runner, pub := escenarioBase(t, 0, 0)
	cadena := crearOrden(t, s, runner, pub, 4)
	checker := NewAvailabilityChecker(&memOrderRepo{s}, &memEntryRepo{s})

	result, err := checker.Check(context.Background(), cadena.Order.ID)
	require.NoError(t, err)

	assert.False(t, result.CanProduce)
	require.Len(t, result.Shortages, 2)
	for _, falta := range result.Shortages {
		assert.True(t, falta.Available.IsZero(), "material %s sin libro", falta.MaterialID)
		assert.True(t, falta.Shortage.Equal(falta.Required))
	}
}

func TestAvailability_OrdenInexistente(t *testing.T) {
	s, _, _ := escenarioBase(t, 0, 0)
	checker := NewAvailabilityChecker(&memOrderRepo{s}, &memEntryRepo{s})

	_, err := checker.Check(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = checker.Check(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
