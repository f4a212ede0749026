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
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	adapterentities "clam-gateway/adapters/entities"
	"clam-gateway/common"
	"clam-gateway/domain/entities"
	clamhttp "clam-gateway/http"
	"clam-gateway/logging"
	"clam-gateway/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func scanTestApp(orchestrator *mocks.MockOrchestration, rateLimiter common.RateLimiter) *fiber.App {
	scanController := NewScanController(orchestrator, rateLimiter, logging.NewDiscardLog())

	handlers := []clamhttp.Handler{
		{HTTPMethod: "POST", Path: "/scan", HandlerFunc: scanController.ScanFiles},
		{HTTPMethod: "POST", Path: "/scan/kafka", HandlerFunc: scanController.ScanToKafka},
		{HTTPMethod: "POST", Path: "/scan/rabbitmq", HandlerFunc: scanController.ScanToRabbitmq},
	}

	return common.CreateFiberAppForTest(handlers)
}

func TestValidUploadScan(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockOrchestration := mocks.NewMockOrchestration(mockCtrl)
	mockOrchestration.EXPECT().ScanBatch(gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ interface{}, files []entities.FileUpload) (entities.BatchResult, error) {
			assert.Equal(t, "sample.bin", files[0].Filename)

			var batch entities.BatchResult
			batch.Add(entities.ScanVerdict{Filename: files[0].Filename, Status: entities.StatusClean})
			return batch, nil
		})

	app := scanTestApp(mockOrchestration, nil)
	body, contentType := common.PrepareRequestBody(t, "files", map[string][]byte{"sample.bin": {0xca, 0xfe, 0xba, 0xbe}})

	request := httptest.NewRequest("POST", "/api/v1/scan", body)
	request.Header.Add("Content-type", contentType)

	httpResponse, err := app.Test(request, -1)
	if err != nil {
		t.Errorf("failed to send request. %v", err)
	}
	defer httpResponse.Body.Close()

	var batchResponse adapterentities.BatchScanResponse
	assert.NoError(t, json.NewDecoder(httpResponse.Body).Decode(&batchResponse))

	assert.Equal(t, fiber.StatusOK, httpResponse.StatusCode)
	assert.Equal(t, 1, batchResponse.TotalFiles)
	assert.Equal(t, 1, batchResponse.CleanFiles)
	assert.Empty(t, batchResponse.Error)
}

func TestUploadWithoutFilesIsRejected(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockOrchestration := mocks.NewMockOrchestration(mockCtrl)
	app := scanTestApp(mockOrchestration, nil)

	request := httptest.NewRequest("POST", "/api/v1/scan", strings.NewReader(""))
	request.Header.Add("Content-type", "multipart/form-data; boundary=x")

	httpResponse, err := app.Test(request, -1)
	if err != nil {
		t.Errorf("failed to send request. %v", err)
	}
	defer httpResponse.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, httpResponse.StatusCode)
}

func TestUploadRejectedWhenEngineUnavailable(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockOrchestration := mocks.NewMockOrchestration(mockCtrl)
	mockOrchestration.EXPECT().ScanBatch(gomock.Any(), gomock.Any()).
		Return(entities.BatchResult{}, fmt.Errorf("%w: clamav service", entities.ErrUnavailable))

	app := scanTestApp(mockOrchestration, nil)
	body, contentType := common.PrepareRequestBody(t, "files", map[string][]byte{"sample.bin": {0x01}})

	request := httptest.NewRequest("POST", "/api/v1/scan", body)
	request.Header.Add("Content-type", contentType)

	httpResponse, err := app.Test(request, -1)
	if err != nil {
		t.Errorf("failed to send request. %v", err)
	}
	defer httpResponse.Body.Close()

	assert.Equal(t, fiber.StatusServiceUnavailable, httpResponse.StatusCode)
}

func TestUploadRateLimited(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockOrchestration := mocks.NewMockOrchestration(mockCtrl)
	mockRateLimiter := mocks.NewMockRateLimiter(mockCtrl)
	mockRateLimiter.EXPECT().IsRequestAllowed().Return(false)

	app := scanTestApp(mockOrchestration, mockRateLimiter)
	body, contentType := common.PrepareRequestBody(t, "files", map[string][]byte{"sample.bin": {0x01}})

	request := httptest.NewRequest("POST", "/api/v1/scan", body)
	request.Header.Add("Content-type", contentType)

	httpResponse, err := app.Test(request, -1)
	if err != nil {
		t.Errorf("failed to send request. %v", err)
	}
	defer httpResponse.Body.Close()

	assert.Equal(t, fiber.StatusTooManyRequests, httpResponse.StatusCode)
}

func TestValidKafkaScanRequest(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockOrchestration := mocks.NewMockOrchestration(mockCtrl)
	mockOrchestration.EXPECT().AdmitStreamScan(gomock.Any(), "docs/file.pdf", "uploads", "verdicts").
		Return(entities.AsyncScanRequest{RequestID: "req-1", Kind: entities.DestinationStream}, nil)

	app := scanTestApp(mockOrchestration, nil)

	body := `{"s3_key":"docs/file.pdf","s3_bucket":"uploads","kafka_topic":"verdicts"}`
	request := httptest.NewRequest("POST", "/api/v1/scan/kafka", strings.NewReader(body))
	request.Header.Add("Content-type", "application/json")

	httpResponse, err := app.Test(request, -1)
	if err != nil {
		t.Errorf("failed to send request. %v", err)
	}
	defer httpResponse.Body.Close()

	var accepted adapterentities.ScanAcceptedResponse
	assert.NoError(t, json.NewDecoder(httpResponse.Body).Decode(&accepted))

	assert.Equal(t, fiber.StatusAccepted, httpResponse.StatusCode)
	assert.Equal(t, "req-1", accepted.RequestID)
	assert.Equal(t, "accepted", accepted.Status)
	assert.Empty(t, accepted.Error)
}

func TestKafkaScanRequestMissingKey(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockOrchestration := mocks.NewMockOrchestration(mockCtrl)
	app := scanTestApp(mockOrchestration, nil)

	tests := []struct {
		testName string
		body     string
	}{
		{testName: "missing required fields", body: `{"s3_bucket":"uploads"}`},
		{testName: "not json", body: "not-json"},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			request := httptest.NewRequest("POST", "/api/v1/scan/kafka", strings.NewReader(test.body))
			request.Header.Add("Content-type", "application/json")

			httpResponse, err := app.Test(request, -1)
			if err != nil {
				t.Errorf("failed to send request. %v", err)
			}
			defer httpResponse.Body.Close()

			assert.Equal(t, fiber.StatusBadRequest, httpResponse.StatusCode)
		})
	}
}

func TestScanRequestErrorMapping(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		testName string
		err      error
		expected int
	}{
		{testName: "feature disabled", err: fmt.Errorf("%w: s3 scanning", entities.ErrNotEnabled), expected: fiber.StatusNotImplemented},
		{testName: "dependency offline", err: fmt.Errorf("%w: kafka service", entities.ErrUnavailable), expected: fiber.StatusServiceUnavailable},
		{testName: "object missing", err: fmt.Errorf("%w: file \"a\" in bucket \"b\"", entities.ErrNotFound), expected: fiber.StatusNotFound},
		{testName: "topic missing", err: fmt.Errorf("%w: kafka topic \"t\"", entities.ErrDestinationNotFound), expected: fiber.StatusBadRequest},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			mockOrchestration := mocks.NewMockOrchestration(mockCtrl)
			mockOrchestration.EXPECT().AdmitStreamScan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(entities.AsyncScanRequest{}, test.err)

			app := scanTestApp(mockOrchestration, nil)

			request := httptest.NewRequest("POST", "/api/v1/scan/kafka", strings.NewReader(`{"s3_key":"a"}`))
			request.Header.Add("Content-type", "application/json")

			httpResponse, err := app.Test(request, -1)
			if err != nil {
				t.Errorf("failed to send request. %v", err)
			}
			defer httpResponse.Body.Close()

			assert.Equal(t, test.expected, httpResponse.StatusCode)
		})
	}
}

func TestValidRabbitmqScanRequest(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockOrchestration := mocks.NewMockOrchestration(mockCtrl)
	mockOrchestration.EXPECT().AdmitQueueScan(gomock.Any(), "docs/file.pdf", "", "").
		Return(entities.AsyncScanRequest{RequestID: "req-2", Kind: entities.DestinationQueue}, nil)

	app := scanTestApp(mockOrchestration, nil)

	request := httptest.NewRequest("POST", "/api/v1/scan/rabbitmq", strings.NewReader(`{"s3_key":"docs/file.pdf"}`))
	request.Header.Add("Content-type", "application/json")

	httpResponse, err := app.Test(request, -1)
	if err != nil {
		t.Errorf("failed to send request. %v", err)
	}
	defer httpResponse.Body.Close()

	var accepted adapterentities.ScanAcceptedResponse
	assert.NoError(t, json.NewDecoder(httpResponse.Body).Decode(&accepted))

	assert.Equal(t, fiber.StatusAccepted, httpResponse.StatusCode)
	assert.Equal(t, "req-2", accepted.RequestID)
}
