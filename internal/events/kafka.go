package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
	"github.com/evgeniy-krivenko/bookshelf/pkg/logger/slogx"
)

const schemaVersion = "v1"

type Kafka struct {
	producer sarama.SyncProducer
	topic    string
	source   string
}

func NewKafka(brokers []string, topic, source string) (*Kafka, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_8_0_0
	config.ClientID = source

	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return NewKafkaWithProducer(producer, topic, source), nil
}

func NewKafkaWithProducer(producer sarama.SyncProducer, topic, source string) *Kafka {
	return &Kafka{producer: producer, topic: topic, source: source}
}

func (k *Kafka) Publish(ctx context.Context, ev entity.ChangeEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", ev.Type(), err)
	}

	msg := &sarama.ProducerMessage{
		Topic: k.topic,
		// same key keeps one entity's changes ordered within a partition
		Key:   sarama.StringEncoder(ev.Entity + ":" + strconv.FormatInt(ev.ID, 10)),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			header("event_id", uuid.NewString()),
			header("event_type", ev.Type()),
			header("entity_type", ev.Entity),
			header("source_service", k.source),
			header("schema_version", schemaVersion),
		},
		Timestamp: ev.OccurredAt,
	}

	partition, offset, err := k.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send %s event to %s: %w", ev.Type(), k.topic, err)
	}

	slogx.Debug(ctx, "change event published",
		slogx.EntityName(ev.Entity),
		slogx.EntityID(ev.ID),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)

	return nil
}

func (k *Kafka) Close() error {
	return k.producer.Close()
}

func header(key, value string) sarama.RecordHeader {
	return sarama.RecordHeader{Key: []byte(key), Value: []byte(value)}
}
