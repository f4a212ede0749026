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

package fileutils

import (
	"github.com/gabriel-vasile/mimetype"
)

const maxHeaderBuffer = 1024

// DetectMime sniffs the media type from the leading bytes. Used for request
// logging and alert detail only; the scan itself never branches on type.
func DetectMime(data []byte) string {
	if len(data) > maxHeaderBuffer {
		data = data[:maxHeaderBuffer]
	}

	return mimetype.Detect(data).String()
}
