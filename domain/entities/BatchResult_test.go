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

package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBatchCountersStayConsistent(t *testing.T) {
	signature := "Eicar-Test-Signature"

	var batch BatchResult
	batch.Add(ScanVerdict{Filename: "a", Status: StatusClean})
	batch.Add(ScanVerdict{Filename: "b", Status: StatusInfected, VirusSignature: &signature})
	batch.Add(ScanVerdict{Filename: "c", Status: StatusError})
	batch.Add(ScanVerdict{Filename: "d", Status: StatusClean})

	assert.Equal(t, 4, batch.TotalFiles)
	assert.Equal(t, 2, batch.CleanFiles)
	assert.Equal(t, 1, batch.InfectedFiles)
	assert.Equal(t, 1, batch.ErrorFiles)
	assert.Equal(t, batch.TotalFiles, batch.CleanFiles+batch.InfectedFiles+batch.ErrorFiles)

	// Submission order survives aggregation.
	assert.Equal(t, "a", batch.Results[0].Filename)
	assert.Equal(t, "d", batch.Results[3].Filename)
}

func TestUnknownStatusCountsAsError(t *testing.T) {
	var batch BatchResult
	batch.Add(ScanVerdict{Filename: "weird", Status: ScanStatus("unknown")})

	assert.Equal(t, 1, batch.ErrorFiles)
}

func TestErrorVerdictShape(t *testing.T) {
	verdict := NewErrorVerdict("huge.bin", 1<<30, "")

	assert.Equal(t, StatusError, verdict.Status)
	assert.Empty(t, verdict.Sha256)
	assert.Nil(t, verdict.VirusSignature)
	assert.Zero(t, verdict.ScanTimeSeconds)
	assert.WithinDuration(t, time.Now().UTC(), verdict.Timestamp, time.Minute)
}

func TestScanMessageCarriesVerdictAndCorrelation(t *testing.T) {
	signature := "Win.Test.EICAR_HDB-1"
	job := AsyncScanRequest{
		RequestID:   "req-1",
		Key:         "docs/file.pdf",
		Bucket:      "uploads",
		Destination: "scan-results",
		Kind:        DestinationStream,
	}

	verdict := ScanVerdict{
		Filename:        "docs/file.pdf",
		SizeBytes:       321,
		Sha256:          "cafe",
		Status:          StatusInfected,
		VirusSignature:  &signature,
		ScanTimeSeconds: 0.42,
		Timestamp:       time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
	}

	message := NewScanMessage(job, verdict)
	data, err := json.Marshal(message)
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "req-1", decoded["request_id"])
	assert.Equal(t, "docs/file.pdf", decoded["s3_key"])
	assert.Equal(t, "uploads", decoded["s3_bucket"])
	assert.Equal(t, "infected", decoded["status"])
	assert.Equal(t, signature, decoded["virus_signature"])
	assert.Equal(t, "2024-05-01T10:30:00Z", decoded["timestamp"])
	assert.NotContains(t, decoded, "error")
}

func TestScanMessageAlwaysEmitsVerdictKeys(t *testing.T) {
	job := AsyncScanRequest{RequestID: "req-3", Key: "docs/file.pdf", Bucket: "uploads", Destination: "scan-results", Kind: DestinationStream}

	// A cache hit: clean verdict, zero duration. All zero-valued verdict
	// fields still have to reach consumers.
	verdict := ScanVerdict{
		Filename:        "docs/file.pdf",
		SizeBytes:       321,
		Sha256:          "cafe",
		Status:          StatusClean,
		ScanTimeSeconds: 0,
		Timestamp:       time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		Cached:          true,
	}

	data, err := json.Marshal(NewScanMessage(job, verdict))
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "scan_time_seconds")
	assert.Equal(t, float64(0), decoded["scan_time_seconds"])
	assert.Contains(t, decoded, "virus_signature")
	assert.Nil(t, decoded["virus_signature"])
	assert.Equal(t, true, decoded["cached"])

	// Fresh clean scans emit cached:false rather than dropping the key.
	verdict.Cached = false
	data, err = json.Marshal(NewScanMessage(job, verdict))
	assert.NoError(t, err)
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, false, decoded["cached"])
}

func TestErrorMessageCarriesErrorDetail(t *testing.T) {
	job := AsyncScanRequest{RequestID: "req-2", Key: "gone.bin", Bucket: "uploads", Destination: "q", Kind: DestinationQueue}

	message := NewErrorMessage(job, "Failed to download file from S3")
	data, err := json.Marshal(message)
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "error", decoded["status"])
	assert.Equal(t, "Failed to download file from S3", decoded["error"])
	assert.Equal(t, "", decoded["sha256_hash"])
	assert.Nil(t, decoded["virus_signature"])
}
