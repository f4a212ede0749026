/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package out

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"clam-gateway/domain/entities"
	"clam-gateway/logging"

	"github.com/segmentio/kafka-go"
)

const metadataTimeout = 10 * time.Second

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	brokers []string
	writer  messageWriter

	// topics is refreshed on miss. A racing double refresh is harmless;
	// the swap under lock prevents lost updates.
	mu         sync.RWMutex
	topics     map[string]struct{}
	listTopics func(ctx context.Context) ([]string, error)

	logger logging.Logger
}

func NewKafkaPublisher(brokers []string, logger logging.Logger) *KafkaPublisher {
	return &KafkaPublisher{brokers: brokers, topics: make(map[string]struct{}), logger: logger}
}

// Connect builds the shared writer and primes the topic cache. A failed
// metadata call means no usable broker connection, so nothing is kept.
func (k *KafkaPublisher) Connect() bool {
	client := &kafka.Client{Addr: kafka.TCP(k.brokers...), Timeout: metadataTimeout}

	k.listTopics = func(ctx context.Context) ([]string, error) {
		metadata, err := client.Metadata(ctx, &kafka.MetadataRequest{Addr: client.Addr})
		if err != nil {
			return nil, err
		}

		names := make([]string, 0, len(metadata.Topics))
		for _, topic := range metadata.Topics {
			names = append(names, topic.Name)
		}

		return names, nil
	}

	if err := k.refreshTopics(context.Background()); err != nil {
		k.logger.Errorw("Failed to connect to kafka", "error", err, "brokers", k.brokers)
		k.listTopics = nil

		return false
	}

	k.writer = &kafka.Writer{
		Addr:         kafka.TCP(k.brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}

	k.logger.Infow("Connected to kafka", "brokers", k.brokers)

	return true
}

func (k *KafkaPublisher) Connected() bool {
	return k.writer != nil
}

func (k *KafkaPublisher) TopicExists(topic string) bool {
	k.mu.RLock()
	_, ok := k.topics[topic]
	k.mu.RUnlock()

	if ok {
		return true
	}

	if err := k.refreshTopics(context.Background()); err != nil {
		k.logger.Errorw("Failed to refresh kafka topics", "error", err)
		return false
	}

	k.mu.RLock()
	defer k.mu.RUnlock()
	_, ok = k.topics[topic]

	return ok
}

func (k *KafkaPublisher) refreshTopics(ctx context.Context) error {
	if k.listTopics == nil {
		return fmt.Errorf("kafka client not connected")
	}

	ctx, cancel := context.WithTimeout(ctx, metadataTimeout)
	defer cancel()

	names, err := k.listTopics(ctx)
	if err != nil {
		return err
	}

	topics := make(map[string]struct{}, len(names))
	for _, name := range names {
		topics[name] = struct{}{}
	}

	k.mu.Lock()
	k.topics = topics
	k.mu.Unlock()

	return nil
}

// Publish sends one message to the topic. A missing topic wraps
// entities.ErrDestinationNotFound so the async error path can report it
// distinctly; other failures are plain errors the caller logs.
func (k *KafkaPublisher) Publish(ctx context.Context, topic string, message entities.ScanMessage, key string) error {
	if k.writer == nil {
		return fmt.Errorf("kafka producer not connected")
	}

	if !k.TopicExists(topic) {
		return fmt.Errorf("%w: kafka topic %q", entities.ErrDestinationNotFound, topic)
	}

	if key == "" {
		key = message.RequestID
	}

	value, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to encode scan message: %w", err)
	}

	err = k.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish to kafka topic %q: %w", topic, err)
	}

	k.logger.Infow("Published scan message to kafka", "topic", topic, "key", key)

	return nil
}

func (k *KafkaPublisher) Close() error {
	if writer, ok := k.writer.(*kafka.Writer); ok {
		return writer.Close()
	}

	return nil
}
