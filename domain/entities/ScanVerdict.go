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

type ScanStatus string

const (
	StatusClean    ScanStatus = "clean"
	StatusInfected ScanStatus = "infected"
	StatusError    ScanStatus = "error"
)

// ScanVerdict is the outcome of examining one file.
// Invariant: VirusSignature != nil iff Status == StatusInfected.
// Sha256 is empty only when the file was rejected before hashing.
type ScanVerdict struct {
	Filename        string     `json:"filename"`
	SizeBytes       int64      `json:"size_bytes"`
	Sha256          string     `json:"sha256_hash"`
	Status          ScanStatus `json:"status"`
	VirusSignature  *string    `json:"virus_signature"`
	ScanTimeSeconds float64    `json:"scan_time_seconds"`
	Timestamp       time.Time  `json:"timestamp"`
	Cached          bool       `json:"cached"`
}

// NewErrorVerdict builds the verdict used for files that could not be
// scanned. sha256 stays empty for pre-hash rejections.
func NewErrorVerdict(filename string, size int64, sha256 string) ScanVerdict {
	return ScanVerdict{
		Filename:  filename,
		SizeBytes: size,
		Sha256:    sha256,
		Status:    StatusError,
		Timestamp: time.Now().UTC(),
	}
}
