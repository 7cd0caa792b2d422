package routing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/routing"
)

func TestResolve_RutaPorDefecto(t *testing.T) {
	steps := routing.Resolve(true, nil)
	assert.Equal(t, []string{"Ensamblaje", "Control de Calidad", "Empaque"}, steps)
}

func TestResolve_RutaConfigurada(t *testing.T) {
	steps := routing.Resolve(true, []string{"Corte", "Soldadura"})
	assert.Equal(t, []string{"Corte", "Soldadura"}, steps)
}

func TestResolve_ProductoNoTerminadoSinRuta(t *testing.T) {
	assert.Nil(t, routing.Resolve(false, []string{"Corte"}))
}

func TestResolve_DevuelveCopia(t *testing.T) {
	configured := []string{"Corte", "Soldadura"}
	steps := routing.Resolve(true, configured)
	steps[0] = "mutado"
	assert.Equal(t, "Corte", configured[0], "la ruta configurada no se muta")

	defaults := routing.Resolve(true, nil)
	defaults[0] = "mutado"
	assert.Equal(t, "Ensamblaje", routing.Resolve(true, nil)[0], "la ruta por defecto no se muta")
}

func TestMatchWorkCenter_SinDistinguirMayusculas(t *testing.T) {
	centers := []*entity.WorkCenter{
		{ID: "wc-1", Name: "ENSAMBLAJE", CapacityPerHour: decimal.NewFromInt(4)},
		{ID: "wc-2", Name: "Empaque"},
	}

	wc := routing.MatchWorkCenter("Ensamblaje", centers)
	require.NotNil(t, wc)
	assert.Equal(t, "wc-1", wc.ID)

	assert.Nil(t, routing.MatchWorkCenter("Pintura", centers), "paso sin centro")
}
