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

import "errors"

// Error taxonomy shared by the orchestrator and the HTTP layer. Controllers
// map these to status codes; everything else is an internal error.
var (
	// ErrValidation covers rejected client input: empty batches, too many
	// files, malformed destination requests.
	ErrValidation = errors.New("invalid request")

	// ErrNotEnabled marks a feature-flagged integration that is switched off.
	ErrNotEnabled = errors.New("feature not enabled")

	// ErrUnavailable marks a dependency with no live connection.
	ErrUnavailable = errors.New("service not available")

	// ErrNotFound marks a missing source object.
	ErrNotFound = errors.New("not found")

	// ErrDestinationNotFound marks a publish destination that does not exist.
	// Distinct from ErrNotFound so a vanished topic surfaces on the async
	// error path with its own reason.
	ErrDestinationNotFound = errors.New("destination not found")
)

// HealthStatus reports per-service connectivity. Connected is nil when the
// service is disabled, mirroring the "not applicable" health entry.
type ServiceStatus struct {
	Enabled   bool  `json:"enabled"`
	Connected *bool `json:"connected"`
}

type HealthStatus struct {
	Healthy  bool
	Services map[string]ServiceStatus
}
