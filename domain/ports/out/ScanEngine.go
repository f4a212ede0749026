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

// ScanEngine is the external detection daemon. Scan always returns a usable
// verdict; the error is secondary detail for logging and must not abort
// batch processing. Ping and Version degrade to false/absent, never fail.
//
//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_scan_engine.go -package=mocks -source=ScanEngine.go
type ScanEngine interface {
	Scan(data []byte, filename, sha256 string) (entities.ScanVerdict, error)
	Ping() bool
	Version() (string, bool)
	Connected() bool
}
