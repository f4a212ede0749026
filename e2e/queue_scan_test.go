//go:build e2e

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

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/segmentio/kafka-go"

	adapterentities "clam-gateway/adapters/entities"
	"clam-gateway/common"
	"clam-gateway/domain/entities"
)

// readResultMessage consumes the result topic until a message matches, so
// tests sharing the topic do not interfere with each other.
func (suite *E2E) readResultMessage(ctx context.Context, matches func(entities.ScanMessage) bool) entities.ScanMessage {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{"localhost:9092"},
		Topic:       resultTopic,
		GroupID:     "e2e-" + suite.T().Name(),
		StartOffset: kafka.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithTimeout(ctx, 3*time.Minute)
	defer cancel()

	for {
		raw, err := reader.ReadMessage(ctx)
		suite.Require().NoError(err)

		var message entities.ScanMessage
		suite.Require().NoError(json.Unmarshal(raw.Value, &message))

		if matches(message) {
			return message
		}
	}
}

func (suite *E2E) TestKafkaScanOfStoredObject() {
	ctx := context.Background()

	suite.uploadObjectForTest(ctx, "samples/invoice.txt", []byte("monthly invoice, nothing exciting\n"))

	payload := common.GetObjectJSON(suite.T(), adapterentities.KafkaScanRequest{
		S3Key:      "samples/invoice.txt",
		S3Bucket:   bucketName,
		KafkaTopic: resultTopic,
	})

	response, err := http.Post(baseURL+"/api/v1/scan/kafka", "application/json", bytes.NewReader([]byte(payload)))
	suite.Require().NoError(err)
	defer response.Body.Close()

	suite.Require().Equal(http.StatusAccepted, response.StatusCode)

	var accepted adapterentities.ScanAcceptedResponse
	suite.Require().NoError(json.NewDecoder(response.Body).Decode(&accepted))
	suite.Require().NotEmpty(accepted.RequestID)
	suite.Assert().Equal("accepted", accepted.Status)

	message := suite.readResultMessage(ctx, func(m entities.ScanMessage) bool {
		return m.RequestID == accepted.RequestID
	})

	suite.Assert().Equal("samples/invoice.txt", message.S3Key)
	suite.Assert().Equal(bucketName, message.S3Bucket)
	suite.Assert().Equal(entities.StatusClean, message.Status)
	suite.Assert().Len(message.Sha256, 64)
	suite.Assert().Empty(message.Error)
}

func (suite *E2E) TestKafkaScanOfMissingObjectRejected() {
	payload := common.GetObjectJSON(suite.T(), adapterentities.KafkaScanRequest{
		S3Key:      "samples/does-not-exist",
		S3Bucket:   bucketName,
		KafkaTopic: resultTopic,
	})

	response, err := http.Post(baseURL+"/api/v1/scan/kafka", "application/json", bytes.NewReader([]byte(payload)))
	suite.Require().NoError(err)
	defer response.Body.Close()

	suite.Assert().Equal(http.StatusNotFound, response.StatusCode)
}

// Object uploads trigger a bucket notification, the SQS intake picks it up
// and the verdict lands on the default topic without any HTTP request.
func (suite *E2E) TestQueueDrivenScan() {
	ctx := context.Background()

	suite.uploadObjectForTest(ctx, "incoming/dropped.bin", eicarBody())

	message := suite.readResultMessage(ctx, func(m entities.ScanMessage) bool {
		return m.S3Key == "incoming/dropped.bin"
	})

	suite.Assert().Equal(bucketName, message.S3Bucket)
	suite.Assert().Equal(entities.StatusInfected, message.Status)
	suite.Require().NotNil(message.VirusSignature)
	suite.Assert().NotEmpty(*message.VirusSignature)
}
