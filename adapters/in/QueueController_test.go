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
	"fmt"
	"testing"

	"clam-gateway/domain/entities"
	"clam-gateway/logging"
	"clam-gateway/mocks"
	"clam-gateway/pkg/awsutils"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally/v4"
)

const objectCreatedEvents = `{"Records":[
	{"awsRegion":"us-east-1","eventName":"ObjectCreated:Put","s3":{"bucket":{"name":"uploads"},"object":{"key":"a.bin","size":10}}},
	{"awsRegion":"us-east-1","eventName":"ObjectRemoved:Delete","s3":{"bucket":{"name":"uploads"},"object":{"key":"b.bin","size":10}}}
]}`

func queueControllerForTest(orchestrator *mocks.MockOrchestration) QueueController {
	return NewQueueController("https://sqs.local/queue", orchestrator, awsutils.SQS{}, tally.NoopScope, logging.NewDiscardLog())
}

func TestExtractEventsFromPlainBody(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	controller := queueControllerForTest(mocks.NewMockOrchestration(mockCtrl))

	message := &sqs.Message{Body: aws.String(objectCreatedEvents), ReceiptHandle: aws.String("handle")}
	events, err := controller.extractEvents(message)

	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "a.bin", events[0].S3.Object.Key)
	assert.Equal(t, "uploads", events[0].S3.Bucket.Name)
}

func TestExtractEventsFromSNSEnvelope(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	controller := queueControllerForTest(mocks.NewMockOrchestration(mockCtrl))

	envelope, err := snsEnvelope(objectCreatedEvents)
	assert.NoError(t, err)

	message := &sqs.Message{Body: aws.String(envelope), ReceiptHandle: aws.String("handle")}
	events, err := controller.extractEvents(message)

	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "ObjectCreated:Put", events[0].EventName)
}

func snsEnvelope(inner string) (string, error) {
	type envelope struct {
		Message string `json:"Message"`
	}

	data, err := json.Marshal(envelope{Message: inner})

	return string(data), err
}

func TestSubmitEventsSkipsNonCreateEvents(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockOrchestration := mocks.NewMockOrchestration(mockCtrl)
	mockOrchestration.EXPECT().AdmitStreamScan(gomock.Any(), "a.bin", "uploads", "").
		Return(entities.AsyncScanRequest{RequestID: "req-1"}, nil)

	controller := queueControllerForTest(mockOrchestration)

	message := &sqs.Message{Body: aws.String(objectCreatedEvents), ReceiptHandle: aws.String("handle")}
	events, err := controller.extractEvents(message)
	assert.NoError(t, err)

	done := controller.submitEvents(context.Background(), events)
	assert.True(t, done)
}

func TestSubmitEventsKeepsMessageOnOutage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockOrchestration := mocks.NewMockOrchestration(mockCtrl)
	mockOrchestration.EXPECT().AdmitStreamScan(gomock.Any(), "a.bin", "uploads", "").
		Return(entities.AsyncScanRequest{}, fmt.Errorf("%w: kafka service", entities.ErrUnavailable))

	controller := queueControllerForTest(mockOrchestration)

	message := &sqs.Message{Body: aws.String(objectCreatedEvents), ReceiptHandle: aws.String("handle")}
	events, err := controller.extractEvents(message)
	assert.NoError(t, err)

	done := controller.submitEvents(context.Background(), events)
	assert.False(t, done)
}

func TestSubmitEventsDropsPermanentFailures(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockOrchestration := mocks.NewMockOrchestration(mockCtrl)
	mockOrchestration.EXPECT().AdmitStreamScan(gomock.Any(), "a.bin", "uploads", "").
		Return(entities.AsyncScanRequest{}, fmt.Errorf("%w: file %q in bucket %q", entities.ErrNotFound, "a.bin", "uploads"))

	controller := queueControllerForTest(mockOrchestration)

	message := &sqs.Message{Body: aws.String(objectCreatedEvents), ReceiptHandle: aws.String("handle")}
	events, err := controller.extractEvents(message)
	assert.NoError(t, err)

	done := controller.submitEvents(context.Background(), events)
	assert.True(t, done)
}
