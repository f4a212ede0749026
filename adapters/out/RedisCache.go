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
	"time"

	"clam-gateway/pkg/redisutils"
)

type RedisCache struct {
	rdb redisutils.Redis
}

func NewCache(url, password string, useTLS bool) *RedisCache {
	rdb := redisutils.Redis{}
	rdb.InitRedis(url, password, useTLS)

	return &RedisCache{rdb: rdb}
}

func (r *RedisCache) Get(key string) (string, error) {
	return r.rdb.GetKey(key)
}

func (r *RedisCache) Set(key string, value any, expiration time.Duration) error {
	return r.rdb.SetKey(key, value, expiration)
}

func (r *RedisCache) Ping() error {
	return r.rdb.Ping()
}

func (r *RedisCache) Close() error {
	return r.rdb.Close()
}
