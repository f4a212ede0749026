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

package redisutils

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/go-redis/redis/v9"
)

type Redis struct {
	ctx context.Context
	rdb *redis.Client
}

func (r *Redis) InitRedis(url, password string, useTLS bool) {
	options := redis.Options{
		Addr:     url,
		Password: password,
		DB:       0, // use default DB
	}

	if useTLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	r.ctx = context.Background()
	r.rdb = redis.NewClient(&options)
}

func (r *Redis) GetKey(key string) (string, error) {
	return r.rdb.Get(r.ctx, key).Result()
}

func (r *Redis) SetKey(key string, value any, expiration time.Duration) error {
	return r.rdb.Set(r.ctx, key, value, expiration).Err()
}

func (r *Redis) Ping() error {
	return r.rdb.Ping(r.ctx).Err()
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
