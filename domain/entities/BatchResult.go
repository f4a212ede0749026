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

// BatchResult aggregates the verdicts of one scan request.
// Invariant: CleanFiles + InfectedFiles + ErrorFiles == TotalFiles,
// with results kept in submission order.
type BatchResult struct {
	TotalFiles    int           `json:"total_files"`
	CleanFiles    int           `json:"clean_files"`
	InfectedFiles int           `json:"infected_files"`
	ErrorFiles    int           `json:"error_files"`
	Results       []ScanVerdict `json:"results"`
}

func (b *BatchResult) Add(verdict ScanVerdict) {
	b.TotalFiles++
	b.Results = append(b.Results, verdict)

	switch verdict.Status {
	case StatusClean:
		b.CleanFiles++
	case StatusInfected:
		b.InfectedFiles++
	default:
		b.ErrorFiles++
	}
}
