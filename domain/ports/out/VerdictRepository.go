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

package out

import "clam-gateway/domain/entities"

// VerdictRepository caches scan verdicts by content hash. The cache is
// best-effort: Get treats any backend or decode failure as a miss, and Save
// reports success without ever failing the caller.
//
//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_verdict_repository.go -package=mocks -source=VerdictRepository.go
type VerdictRepository interface {
	Get(sha256 string) (entities.ScanVerdict, bool)
	Save(sha256 string, verdict entities.ScanVerdict) bool
	Connected() bool
}
