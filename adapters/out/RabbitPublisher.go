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

	"clam-gateway/domain/entities"
	"clam-gateway/logging"

	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitPublisher struct {
	url     string
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  logging.Logger
}

func NewRabbitPublisher(url string, logger logging.Logger) *RabbitPublisher {
	return &RabbitPublisher{url: url, logger: logger}
}

func (r *RabbitPublisher) Connect() bool {
	conn, err := amqp.Dial(r.url)
	if err != nil {
		r.logger.Errorw("Failed to connect to rabbitmq", "error", err)
		return false
	}

	channel, err := conn.Channel()
	if err != nil {
		r.logger.Errorw("Failed to open rabbitmq channel", "error", err)
		conn.Close()

		return false
	}

	r.conn = conn
	r.channel = channel
	r.logger.Infow("Connected to rabbitmq")

	return true
}

func (r *RabbitPublisher) Connected() bool {
	return r.channel != nil
}

// EnsureQueue declares the durable queue, creating it when absent.
func (r *RabbitPublisher) EnsureQueue(queue string) bool {
	if r.channel == nil {
		r.logger.Errorw("Rabbitmq channel not connected", "queue", queue)
		return false
	}

	if _, err := r.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		r.logger.Errorw("Failed to declare rabbitmq queue", "error", err, "queue", queue)
		return false
	}

	return true
}

func (r *RabbitPublisher) Publish(ctx context.Context, queue string, message entities.ScanMessage) error {
	if r.channel == nil {
		return fmt.Errorf("rabbitmq channel not connected")
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to encode scan message: %w", err)
	}

	err = r.channel.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish to rabbitmq queue %q: %w", queue, err)
	}

	r.logger.Infow("Published scan message to rabbitmq", "queue", queue)

	return nil
}

func (r *RabbitPublisher) Close() error {
	if r.conn != nil && !r.conn.IsClosed() {
		return r.conn.Close()
	}

	return nil
}
