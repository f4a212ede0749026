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

package in

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	adapterentities "clam-gateway/adapters/entities"
	"clam-gateway/domain/entities"
	"clam-gateway/domain/services/scan"
	"clam-gateway/logging"
	"clam-gateway/pkg/awsutils"

	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/uber-go/tally/v4"
)

const (
	consumeCount     = "consume_count"
	singleMessageInc = 1
)

// QueueController turns S3 bucket notifications arriving on SQS into async
// scan requests. Verdicts for these go to the default kafka topic.
type QueueController struct {
	orchestrator scan.Orchestration

	sqsService awsutils.SQS
	queue      string

	logger       logging.Logger
	metricsScope tally.Scope
}

func NewQueueController(queue string, orchestrator scan.Orchestration, sqsService awsutils.SQS, metricsScope tally.Scope, logger logging.Logger) QueueController {
	return QueueController{queue: queue, orchestrator: orchestrator, sqsService: sqsService, logger: logger, metricsScope: metricsScope}
}

func (q *QueueController) AsyncScan(ctx context.Context) {
	if q.queue == "" {
		q.logger.Infow("Won't attempt to read SQS queue, because none was configured")
		return
	}

	q.logger.Infow("Start of async queue processing")

	for {
		select {
		case <-ctx.Done():
			q.logger.Infow("End of async queue processing")
			return

		default:
			messages, err := q.sqsService.Receive(q.queue)
			if err != nil {
				q.logger.Errorw("failed to obtain scan request", "error", err)
				continue
			}

			for _, m := range messages {
				events, err := q.extractEvents(m)
				if err != nil {
					q.logger.Errorw("failed to extract events", "error", err)
					continue
				}

				if q.submitEvents(ctx, events) {
					if err := q.sqsService.Delete(q.queue, m); err != nil {
						q.logger.Errorw("deleting message from sqs service failed", "error", err)
					}
				}
			}
		}
	}
}

func (q *QueueController) extractEvents(m *sqs.Message) ([]adapterentities.S3Event, error) {
	var notification adapterentities.SQSNotification

	err := json.Unmarshal([]byte(*m.Body), &notification)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal message. %w", err)
	}

	var events adapterentities.Events
	if err = json.Unmarshal([]byte(notification.Message), &events); err != nil {
		// Attempt second type of unmarshalling, only needed for localstack
		err = json.Unmarshal([]byte(*m.Body), &events)
	}

	// Message could not be decoded, should be removed from the queue.
	if err != nil {
		q.logger.Errorw("failed to unmarshal message.", "error", err, "message field", notification.Message, "message", m)

		if delErr := q.sqsService.Delete(q.queue, m); delErr != nil {
			q.logger.Errorw("deleting invalid message from sqs service failed", "error", delErr, "message", m)
		}

		return nil, err
	}

	return events.Record, nil
}

// submitEvents reports whether the message can be deleted. Transient
// dependency outages keep it on the queue for redelivery.
func (q *QueueController) submitEvents(ctx context.Context, events []adapterentities.S3Event) bool {
	done := true

	for _, event := range events {
		if !strings.HasPrefix(event.EventName, "ObjectCreated:") {
			continue
		}

		q.logger.Debugw("Received new request", "region", event.AwsRegion, "bucket", event.S3.Bucket.Name, "key", event.S3.Object.Key, "size", event.S3.Object.Size)

		job, err := q.orchestrator.AdmitStreamScan(ctx, event.S3.Object.Key, event.S3.Bucket.Name, "")
		if err != nil {
			q.logger.Errorw("Failed to admit scan for bucket event", "error", err, "bucket", event.S3.Bucket.Name, "key", event.S3.Object.Key)

			if errors.Is(err, entities.ErrUnavailable) {
				done = false
			}

			continue
		}

		q.logger.Infow("Bucket event admitted for scan", "request_id", job.RequestID, "key", job.Key)
		q.metricsScope.Counter(consumeCount).Inc(singleMessageInc)
	}

	return done
}
