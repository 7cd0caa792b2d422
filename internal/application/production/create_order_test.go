package production

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/manufacturing-pro/internal/domain"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
)

const (
	productoTerminado = "11111111-1111-1111-1111-111111111111"
	materialTablero   = "22222222-2222-2222-2222-222222222222"
	materialTornillo  = "33333333-3333-3333-3333-333333333333"
	actorTest         = "usuario-test"
)

// escenarioBase producto terminado con BOM de dos materiales (2 y 3 por
// unidad) y saldos iniciales configurables.
func escenarioBase(t *testing.T, saldoTablero, saldoTornillo int64) (*memStore, *fakeTxRunner, *capturePublisher) {
	t.Helper()
	s := newMemStore()
	s.addProduct(productoTerminado, "PROD-ESCRITORIO", true, 0)
	s.addProduct(materialTablero, "MAT-TABLERO", false, saldoTablero)
	s.addProduct(materialTornillo, "MAT-TORNILLO", false, saldoTornillo)
	s.boms[productoTerminado] = []entity.BOMLine{
		{MaterialID: materialTablero, QuantityPerUnit: decimal.NewFromInt(2)},
		{MaterialID: materialTornillo, QuantityPerUnit: decimal.NewFromInt(3)},
	}
	return s, &fakeTxRunner{s}, &capturePublisher{}
}

func crearOrden(t *testing.T, s *memStore, runner *fakeTxRunner, pub *capturePublisher, qty int64) *OrderWithSteps {
	t.Helper()
	uc := NewCreateOrderUseCase(runner, &memOrderRepo{s}, &memWorkOrderRepo{s}, pub)
	result, _, err := uc.Create(context.Background(), CreateOrderInput{
		ProductID: productoTerminado,
		Quantity:  decimal.NewFromInt(qty),
		Actor:     actorTest,
	})
	require.NoError(t, err)
	return result
}

func TestCreateOrder_OrdenYPasosAtomicos(t *testing.T) {
	s, runner, pub := escenarioBase(t, 100, 100)

	result := crearOrden(t, s, runner, pub, 10)

	order := result.Order
	assert.Equal(t, entity.OrderStatePlanned, order.State)
	assert.Equal(t, actorTest, order.CreatedBy)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "OP-"), "número de orden: %s", order.OrderNumber)
	assert.Equal(t, order.OrderNumber, order.Name, "sin nombre explícito usa el número de orden")

	// Ruta por defecto: tres pasos en orden, todos PENDING.
	require.Len(t, result.WorkOrders, 3)
	pasos := []string{"Ensamblaje", "Control de Calidad", "Empaque"}
	for i, wo := range result.WorkOrders {
		assert.Equal(t, pasos[i], wo.Step)
		assert.Equal(t, i+1, wo.Position)
		assert.Equal(t, entity.WorkOrderPending, wo.Status)
		assert.Equal(t, order.ID, wo.OrderID)
	}

	// Snapshot completo de la BOM activa.
	require.Len(t, order.BOMSnapshot, 2)
	assert.True(t, order.BOMSnapshot[0].QuantityPerUnit.Equal(decimal.NewFromInt(2)))

	assert.Equal(t, []string{entity.EventOrderCreated}, pub.types())
}

func TestCreateOrder_SnapshotInmuneAEdicionesDeBOM(t *testing.T) {
	s, runner, pub := escenarioBase(t, 100, 100)
	result := crearOrden(t, s, runner, pub, 5)

	// Editar la BOM activa después de crear la orden.
	s.boms[productoTerminado] = []entity.BOMLine{
		{MaterialID: materialTablero, QuantityPerUnit: decimal.NewFromInt(99)},
	}

	order := s.orders[result.Order.ID]
	require.Len(t, order.BOMSnapshot, 2, "el snapshot conserva las líneas originales")
	assert.True(t, order.BOMSnapshot[0].QuantityPerUnit.Equal(decimal.NewFromInt(2)),
		"la cantidad del snapshot no cambia con la BOM activa")
}

func TestCreateOrder_HorasEstimadasPorCapacidad(t *testing.T) {
	s, runner, pub := escenarioBase(t, 100, 100)
	// Centro que calza con el primer paso: 4 unidades/hora.
	s.centers = append(s.centers, &entity.WorkCenter{
		ID: "wc-1", Name: "ensamblaje", CapacityPerHour: decimal.NewFromInt(4),
	})

	result := crearOrden(t, s, runner, pub, 10)

	// Paso con centro (match sin distinguir mayúsculas): 10/4 = 2.5 horas.
	ensamblaje := result.WorkOrders[0]
	assert.Equal(t, "wc-1", ensamblaje.WorkCenterID)
	assert.True(t, ensamblaje.EstimatedHours.Equal(decimal.NewFromFloat(2.5)),
		"horas estimadas: %s", ensamblaje.EstimatedHours)

	// Pasos sin centro: 1 hora por defecto.
	assert.Empty(t, result.WorkOrders[1].WorkCenterID)
	assert.True(t, result.WorkOrders[1].EstimatedHours.Equal(decimal.NewFromInt(1)))
}

func TestCreateOrder_RutaConfiguradaReemplazaLaPorDefecto(t *testing.T) {
	s, runner, pub := escenarioBase(t, 100, 100)
	s.routes[productoTerminado] = []string{"Corte", "Soldadura"}

	result := crearOrden(t, s, runner, pub, 1)

	require.Len(t, result.WorkOrders, 2)
	assert.Equal(t, "Corte", result.WorkOrders[0].Step)
	assert.Equal(t, "Soldadura", result.WorkOrders[1].Step)
}

func TestCreateOrder_Validaciones(t *testing.T) {
	s, runner, pub := escenarioBase(t, 0, 0)
	uc := NewCreateOrderUseCase(runner, &memOrderRepo{s}, &memWorkOrderRepo{s}, pub)
	ctx := context.Background()

	_, _, err := uc.Create(ctx, CreateOrderInput{ProductID: productoTerminado, Quantity: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, _, err = uc.Create(ctx, CreateOrderInput{ProductID: productoTerminado, Quantity: decimal.NewFromInt(-3)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")

	_, _, err = uc.Create(ctx, CreateOrderInput{ProductID: "no-existe", Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = uc.Create(ctx, CreateOrderInput{ProductID: materialTablero, Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFinished, "una materia prima no se fabrica")

	assert.Empty(t, pub.types(), "sin orden creada no hay eventos")
	assert.Empty(t, s.orders, "ninguna orden persistida")
	assert.Empty(t, s.works, "ninguna orden de trabajo persistida")
}

func TestNewOrderNumber_Formato(t *testing.T) {
	n := newOrderNumber(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
	require.Len(t, n, len("OP-20260315-")+8)
	assert.True(t, strings.HasPrefix(n, "OP-20260315-"))
	frag := strings.TrimPrefix(n, "OP-20260315-")
	assert.Equal(t, strings.ToUpper(frag), frag, "fragmento en mayúsculas")
}
