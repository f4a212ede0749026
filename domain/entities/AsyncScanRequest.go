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

type DestinationKind string

const (
	DestinationStream DestinationKind = "kafka"
	DestinationQueue  DestinationKind = "rabbitmq"
)

// AsyncScanRequest is a deferred scan job minted after all admission checks
// pass. It lives in memory only; a crash mid-flight loses the job.
type AsyncScanRequest struct {
	RequestID   string
	Key         string
	Bucket      string
	Destination string
	Kind        DestinationKind
}

// FileUpload carries one inline file submitted to the synchronous endpoint.
type FileUpload struct {
	Filename string
	Data     []byte
}
