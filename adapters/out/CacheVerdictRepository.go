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

import (
	"encoding/json"
	"fmt"
	"time"

	"clam-gateway/domain/entities"
	"clam-gateway/domain/ports/out"
	"clam-gateway/fileutils"
	"clam-gateway/logging"

	"github.com/pkg/errors"
)

// verdictKeyFormat namespaces entries so the gateway can share a Redis with
// unrelated data.
const verdictKeyFormat = "scan:%s"

type CacheVerdictRepository struct {
	cache   out.Cache
	ttl     time.Duration
	enabled bool
	logger  logging.Logger
}

func NewCacheVerdictRepository(cache out.Cache, ttl time.Duration, enabled bool, logger logging.Logger) *CacheVerdictRepository {
	return &CacheVerdictRepository{cache: cache, ttl: ttl, enabled: enabled, logger: logger}
}

// Get returns the cached verdict for a content hash. Backend failures and
// undecodable entries both count as a miss so an ailing cache can never fail
// a scan request.
func (c *CacheVerdictRepository) Get(sha256 string) (entities.ScanVerdict, bool) {
	if !c.enabled || sha256 == "" {
		return entities.ScanVerdict{}, false
	}

	data, err := c.cache.Get(c.verdictKey(sha256))
	if err != nil {
		return entities.ScanVerdict{}, false
	}

	var verdict entities.ScanVerdict
	if err := json.Unmarshal([]byte(data), &verdict); err != nil {
		c.logger.Errorw("Failed to decode cached verdict, treating as miss", "error", err, "hash", fileutils.ShortHash(sha256))
		return entities.ScanVerdict{}, false
	}

	return verdict, true
}

// Save stores a verdict under its content hash. Verdicts without a hash
// (pre-scan rejections) have no identity and are never stored.
func (c *CacheVerdictRepository) Save(sha256 string, verdict entities.ScanVerdict) bool {
	if !c.enabled || sha256 == "" {
		return false
	}

	data, err := json.Marshal(verdict)
	if err != nil {
		c.logger.Errorw("Failed to encode verdict for cache", "error", errors.Wrap(err, "verdict marshal"), "hash", fileutils.ShortHash(sha256))
		return false
	}

	if err := c.cache.Set(c.verdictKey(sha256), string(data), c.ttl); err != nil {
		c.logger.Errorw("Failed to cache verdict", "error", err, "hash", fileutils.ShortHash(sha256))
		return false
	}

	c.logger.Debugw("Cached scan verdict", "hash", fileutils.ShortHash(sha256), "status", verdict.Status)

	return true
}

func (c *CacheVerdictRepository) Connected() bool {
	if !c.enabled {
		return false
	}

	return c.cache.Ping() == nil
}

func (c *CacheVerdictRepository) verdictKey(sha256 string) string {
	return fmt.Sprintf(verdictKeyFormat, sha256)
}
