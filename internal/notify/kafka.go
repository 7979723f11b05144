package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"aquadrop/internal/logx"
)

// TypeOrderAssigned marks an event telling the vendor a new order is theirs.
const TypeOrderAssigned = "order.assigned"

// Event is the payload published to the vendor notifications topic.
type Event struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	VendorID   int64     `json:"vendor_id"`
	OrderID    string    `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// KafkaNotifier publishes vendor notifications through a Sarama sync
// producer. A nil KafkaNotifier is valid and drops everything, so callers
// need no special casing when Kafka is not configured.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
	now      func() time.Time
}

// NewKafkaNotifier connects to the brokers and returns a notifier for the
// topic. Returns (nil, nil) when brokers or topic are not configured.
func NewKafkaNotifier(brokers []string, topic string, logger logx.Logger) (*KafkaNotifier, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Retry.Backoff = 100 * time.Millisecond
	cfg.Producer.Return.Successes = true // required by SyncProducer

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return newWithProducer(producer, topic, logger), nil
}

func newWithProducer(producer sarama.SyncProducer, topic string, logger logx.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		producer: producer,
		topic:    topic,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// NotifyOrderAssigned publishes an order.assigned event keyed by vendor ID,
// so all notifications for one vendor stay in partition order.
func (n *KafkaNotifier) NotifyOrderAssigned(_ context.Context, vendorID int64, orderID string) error {
	if n == nil {
		return nil
	}

	ev := Event{
		EventID:    uuid.NewString(),
		Type:       TypeOrderAssigned,
		VendorID:   vendorID,
		OrderID:    orderID,
		OccurredAt: n.now(),
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	partition, offset, err := n.producer.SendMessage(&sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(fmt.Sprintf("%d", vendorID)),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	n.logger.Debug("notification published",
		logx.String("event_id", ev.EventID),
		logx.Int64("vendor_id", vendorID),
		logx.String("order_id", orderID),
		logx.Int64("offset", offset),
		logx.Int("partition", int(partition)),
	)
	return nil
}

// Close shuts the underlying producer down.
func (n *KafkaNotifier) Close() error {
	if n == nil {
		return nil
	}
	return n.producer.Close()
}
