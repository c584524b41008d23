package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/HilmiTuncay/yemek-siparis/internal/domain"
)

// KafkaPublisher emits order lifecycle events for out-of-process consumers
// (chat notifiers and the like).
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}
