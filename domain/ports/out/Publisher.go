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

	"clam-gateway/domain/entities"
)

// StreamPublisher delivers scan messages to an event-stream topic. Publish
// wraps entities.ErrDestinationNotFound when the topic vanished after
// admission; any other failure is a plain error the caller logs but does not
// retry. An empty key defaults to the message request id.
//
//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_publisher.go -package=mocks -source=Publisher.go
type StreamPublisher interface {
	TopicExists(topic string) bool
	Publish(ctx context.Context, topic string, message entities.ScanMessage, key string) error
	Connected() bool
}

// QueuePublisher delivers scan messages to a message queue, declaring the
// queue if absent.
type QueuePublisher interface {
	EnsureQueue(queue string) bool
	Publish(ctx context.Context, queue string, message entities.ScanMessage) error
	Connected() bool
}

// Notifier raises an out-of-band alert for infected files.
type Notifier interface {
	NotifyInfected(filename, signature, sha256 string) error
}
