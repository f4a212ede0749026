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
	"clam-gateway/domain/entities"
)

// ScanResultResponse is the wire form of a single file verdict.
type ScanResultResponse struct {
	Filename        string  `json:"filename"`
	SizeBytes       int64   `json:"size_bytes"`
	Sha256Hash      string  `json:"sha256_hash"`
	Status          string  `json:"status"`
	VirusSignature  *string `json:"virus_signature"`
	ScanTimeSeconds float64 `json:"scan_time_seconds"`
	Timestamp       string  `json:"timestamp"`
	Cached          bool    `json:"cached"`
}

type BatchScanResponse struct {
	TotalFiles    int                  `json:"total_files"`
	CleanFiles    int                  `json:"clean_files"`
	InfectedFiles int                  `json:"infected_files"`
	ErrorFiles    int                  `json:"error_files"`
	Results       []ScanResultResponse `json:"results"`
	Error         string               `json:"error,omitempty"`
}

func MapToScanResultResponse(verdict entities.ScanVerdict) ScanResultResponse {
	return ScanResultResponse{
		Filename:        verdict.Filename,
		SizeBytes:       verdict.SizeBytes,
		Sha256Hash:      verdict.Sha256,
		Status:          string(verdict.Status),
		VirusSignature:  verdict.VirusSignature,
		ScanTimeSeconds: verdict.ScanTimeSeconds,
		Timestamp:       verdict.Timestamp.UTC().Format("2006-01-02T15:04:05.999999"),
		Cached:          verdict.Cached,
	}
}

func MapToBatchResponse(batch entities.BatchResult) BatchScanResponse {
	results := make([]ScanResultResponse, 0, len(batch.Results))
	for _, verdict := range batch.Results {
		results = append(results, MapToScanResultResponse(verdict))
	}

	return BatchScanResponse{
		TotalFiles:    batch.TotalFiles,
		CleanFiles:    batch.CleanFiles,
		InfectedFiles: batch.InfectedFiles,
		ErrorFiles:    batch.ErrorFiles,
		Results:       results,
	}
}

// ScanAcceptedResponse acknowledges an admitted async scan request.
type ScanAcceptedResponse struct {
	RequestID string `json:"request_id,omitempty"`
	Status    string `json:"status,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status   string                            `json:"status"`
	Message  string                            `json:"message,omitempty"`
	Services map[string]entities.ServiceStatus `json:"services"`
}

func MapToHealthResponse(health entities.HealthStatus) HealthResponse {
	status := "healthy"
	message := ""

	if !health.Healthy {
		status = "unhealthy"
		message = "ClamAV service not available"
	}

	return HealthResponse{Status: status, Message: message, Services: health.Services}
}

type VersionResponse struct {
	APIVersion    string `json:"api_version"`
	ClamavVersion string `json:"clamav_version,omitempty"`
	Error         string `json:"error,omitempty"`
}
