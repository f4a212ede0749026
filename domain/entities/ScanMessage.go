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

import "time"

// ScanMessage is the outbound payload published for async scans: the verdict
// fields flattened, plus the request correlation fields. Every verdict key is
// always emitted, a nil VirusSignature marshals as null; consumers can rely
// on the keys being present. Only the error detail is conditional.
type ScanMessage struct {
	RequestID       string     `json:"request_id"`
	S3Key           string     `json:"s3_key"`
	S3Bucket        string     `json:"s3_bucket"`
	Filename        string     `json:"filename"`
	SizeBytes       int64      `json:"size_bytes"`
	Sha256          string     `json:"sha256_hash"`
	Status          ScanStatus `json:"status"`
	VirusSignature  *string    `json:"virus_signature"`
	ScanTimeSeconds float64    `json:"scan_time_seconds"`
	Timestamp       string     `json:"timestamp"`
	Cached          bool       `json:"cached"`
	Error           string     `json:"error,omitempty"`
}

func NewScanMessage(job AsyncScanRequest, verdict ScanVerdict) ScanMessage {
	return ScanMessage{
		RequestID:       job.RequestID,
		S3Key:           job.Key,
		S3Bucket:        job.Bucket,
		Filename:        verdict.Filename,
		SizeBytes:       verdict.SizeBytes,
		Sha256:          verdict.Sha256,
		Status:          verdict.Status,
		VirusSignature:  verdict.VirusSignature,
		ScanTimeSeconds: verdict.ScanTimeSeconds,
		Timestamp:       verdict.Timestamp.UTC().Format(time.RFC3339),
		Cached:          verdict.Cached,
	}
}

func NewErrorMessage(job AsyncScanRequest, reason string) ScanMessage {
	return ScanMessage{
		RequestID: job.RequestID,
		S3Key:     job.Key,
		S3Bucket:  job.Bucket,
		Status:    StatusError,
		Error:     reason,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
