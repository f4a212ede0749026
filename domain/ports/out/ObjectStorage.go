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

// ObjectStorage retrieves source bytes by key. Not-found and transport
// errors both come back as false: callers only need to know the bytes could
// not be obtained, the adapter logs the distinction.
//
//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_object_storage.go -package=mocks -source=ObjectStorage.go
type ObjectStorage interface {
	Exists(key, bucket string) bool
	Fetch(key, bucket string) ([]byte, bool)
	Connected() bool
}
