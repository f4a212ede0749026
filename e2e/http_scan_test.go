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
	"encoding/json"
	"net/http"

	adapterentities "clam-gateway/adapters/entities"
	"clam-gateway/common"
)

// Standard antivirus test file, assembled at runtime so the source tree does
// not trip signature scanners.
func eicarBody() []byte {
	return []byte(`X5O!P%@AP[4\PZX54(P^)7CC)7}$EICAR-STANDARD-AN` + `TIVIRUS-TEST-FILE!$H+H*`)
}

func (suite *E2E) postFiles(files map[string][]byte) adapterentities.BatchScanResponse {
	body, contentType := common.PrepareRequestBody(suite.T(), "files", files)

	request, err := http.NewRequest("POST", baseURL+"/api/v1/scan", body)
	suite.Require().NoError(err)
	request.Header.Add("Content-Type", contentType)

	response, err := http.DefaultClient.Do(request)
	suite.Require().NoError(err)
	defer response.Body.Close()

	suite.Require().Equal(http.StatusOK, response.StatusCode)

	var batch adapterentities.BatchScanResponse
	suite.Require().NoError(json.NewDecoder(response.Body).Decode(&batch))

	return batch
}

func (suite *E2E) TestUploadScanCleanFile() {
	batch := suite.postFiles(map[string][]byte{"notes.txt": []byte("nothing to see here\n")})

	suite.Assert().Equal(1, batch.TotalFiles)
	suite.Assert().Equal(1, batch.CleanFiles)
	suite.Require().Len(batch.Results, 1)
	suite.Assert().Equal("clean", batch.Results[0].Status)
	suite.Assert().Len(batch.Results[0].Sha256Hash, 64)
	suite.Assert().Nil(batch.Results[0].VirusSignature)
}

func (suite *E2E) TestUploadScanDetectsTestSignature() {
	batch := suite.postFiles(map[string][]byte{"payload.com": eicarBody()})

	suite.Assert().Equal(1, batch.TotalFiles)
	suite.Assert().Equal(1, batch.InfectedFiles)
	suite.Require().Len(batch.Results, 1)
	suite.Assert().Equal("infected", batch.Results[0].Status)
	suite.Require().NotNil(batch.Results[0].VirusSignature)
	suite.Assert().NotEmpty(*batch.Results[0].VirusSignature)
}

func (suite *E2E) TestRepeatedUploadIsServedFromCache() {
	content := []byte("cache me if you can\n")

	first := suite.postFiles(map[string][]byte{"original.txt": content})
	suite.Require().Len(first.Results, 1)
	suite.Assert().False(first.Results[0].Cached)

	second := suite.postFiles(map[string][]byte{"renamed.txt": content})
	suite.Require().Len(second.Results, 1)
	suite.Assert().True(second.Results[0].Cached)
	suite.Assert().Equal("renamed.txt", second.Results[0].Filename)
	suite.Assert().Equal(first.Results[0].Sha256Hash, second.Results[0].Sha256Hash)
	suite.Assert().Zero(second.Results[0].ScanTimeSeconds)
}

func (suite *E2E) TestHealthReportsAllServices() {
	response, err := http.Get(baseURL + "/api/v1/health")
	suite.Require().NoError(err)
	defer response.Body.Close()

	suite.Require().Equal(http.StatusOK, response.StatusCode)

	var health adapterentities.HealthResponse
	suite.Require().NoError(json.NewDecoder(response.Body).Decode(&health))

	suite.Assert().Equal("healthy", health.Status)
	for _, service := range []string{"clamav", "redis", "s3", "kafka"} {
		suite.Require().Contains(health.Services, service)
		suite.Assert().True(health.Services[service].Enabled)
	}

	suite.Require().Contains(health.Services, "rabbitmq")
	suite.Assert().False(health.Services["rabbitmq"].Enabled)
}

func (suite *E2E) TestRabbitmqRouteDisabled() {
	payload := common.GetObjectJSON(suite.T(), adapterentities.RabbitScanRequest{S3Key: "samples/anything"})

	response, err := http.Post(baseURL+"/api/v1/scan/rabbitmq", "application/json", bytes.NewReader([]byte(payload)))
	suite.Require().NoError(err)
	defer response.Body.Close()

	suite.Assert().Equal(http.StatusNotImplemented, response.StatusCode)
}
