package events

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tu-usuario/manufacturing-pro/internal/application/production"
	"github.com/tu-usuario/manufacturing-pro/internal/application/stock"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
)

var _ production.EventPublisher = (*LogPublisher)(nil)
var _ stock.EventPublisher = (*LogPublisher)(nil)

// LogPublisher escribe los eventos de dominio al log estructurado. Es el
// publicador por defecto cuando no hay brokers de Kafka configurados.
type LogPublisher struct {
	log zerolog.Logger
}

func NewLogPublisher(log zerolog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, evs ...entity.DomainEvent) {
	for _, ev := range evs {
		p.log.Info().
			Str("evento", ev.Type).
			Str("order_id", ev.OrderID).
			Str("work_order_id", ev.WorkOrderID).
			Str("product_id", ev.ProductID).
			Str("actor", ev.Actor).
			Time("at", ev.At).
			Msg("evento de dominio")
	}
}
