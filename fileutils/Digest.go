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
	"crypto/sha256"
	"encoding/hex"
)

// Sha256Hex fingerprints the full byte content. The digest is the cache key
// and the default partitioning key for published results.
func Sha256Hex(data []byte) string {
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:])
}

// ShortHash trims a digest for log lines. Full hashes make log entries hard
// to scan and the prefix is unique enough for correlation.
func ShortHash(sha256 string) string {
	const logHashLen = 16
	if len(sha256) <= logHashLen {
		return sha256
	}

	return sha256[:logHashLen]
}
