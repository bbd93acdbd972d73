package queue

import (
	"context"
	"encoding/json"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/sirupsen/logrus"
)

var _ Queue = (*Kafka)(nil)

// Kafka publishes site events to a kafka topic.
type Kafka struct {
	producer *kafka.Producer
	topic    string
}

func NewKafka(brokers, topic string) (*Kafka, error) {
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
	})
	if err != nil {
		return nil, err
	}

	return &Kafka{producer: producer, topic: topic}, nil
}

func (k *Kafka) EmitSitePublished(ctx context.Context, event *SitePublished) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	logrus.Infof("emitting publish event for site %s", event.SiteName)

	return k.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &k.topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.SiteName),
		Value:          data,
	}, nil)
}

func (k *Kafka) Close() {
	k.producer.Flush(5000)
	k.producer.Close()
}
