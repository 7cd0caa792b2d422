package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/tu-usuario/manufacturing-pro/internal/application/production"
	"github.com/tu-usuario/manufacturing-pro/internal/application/stock"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
)

var _ production.EventPublisher = (*KafkaPublisher)(nil)
var _ stock.EventPublisher = (*KafkaPublisher)(nil)

// KafkaPublisher publica eventos de dominio en un topic de Kafka.
// La publicación es fire-and-forget: un broker caído nunca revierte ni
// bloquea la transacción que originó el evento, solo deja registro en el log.
type KafkaPublisher struct {
	writer *kafka.Writer
	log    zerolog.Logger
}

// NewKafkaPublisher construye el publicador. La key de cada mensaje es el
// OrderID para que los eventos de una misma orden conserven su orden relativo.
func NewKafkaPublisher(brokers []string, topic string, log zerolog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error().Err(err).Int("mensajes", len(messages)).Msg("publicar eventos en Kafka")
			}
		},
	}
	return &KafkaPublisher{writer: writer, log: log}
}

// Publish serializa y envía los eventos. No devuelve error: los fallos se
// registran en el log vía el callback de completion del writer.
func (p *KafkaPublisher) Publish(ctx context.Context, evs ...entity.DomainEvent) {
	if len(evs) == 0 {
		return
	}
	msgs := make([]kafka.Message, 0, len(evs))
	for _, ev := range evs {
		payload, err := json.Marshal(ev)
		if err != nil {
			p.log.Error().Err(err).Str("tipo", ev.Type).Msg("serializar evento")
			continue
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(ev.OrderID),
			Value: payload,
			Time:  ev.At,
		})
	}
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.writer.WriteMessages(writeCtx, msgs...); err != nil {
		p.log.Error().Err(err).Msg("encolar eventos en Kafka")
	}
}

// Close cierra el writer y drena los mensajes pendientes.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
