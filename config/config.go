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

package config

import (
	"bytes"
	"fmt"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
)

const AppVersion = "1.0.0"

const (
	defaultPort           = 8080
	defaultMaxRequestSize = 110 * 1024 * 1024
	defaultMaxFileSize    = 100 * 1024 * 1024
	defaultMaxFiles       = 10
	defaultCacheTTL       = 86400
	defaultClamdPort      = 3310
	defaultClamdTimeout   = 30
	defaultMaxAsyncJobs   = 8
)

type AppConfig struct {
	Clamd        Clamd
	Scanner      Scanner
	Redis        Redis
	Aws          AWS
	S3           S3
	Kafka        Kafka
	Rabbitmq     Rabbitmq
	Notification Notification
	HTTPServer   HTTPServer
}

type HTTPServer struct {
	AuthorizationKeys []string
	Profiler          bool
	Swagger           bool
	Metrics           bool
	MaxRequestSize    int
	Port              int
}

// Clamd locates the clamav daemon. Type is either "unix" or "tcp".
type Clamd struct {
	Type       string
	UnixSocket string
	Host       string
	Port       int
	Timeout    int
}

type Scanner struct {
	MaxFileSize  int64
	MaxFiles     int
	CacheEnabled bool
	CacheTTL     int
	MaxAsyncJobs int
	DebugLog     bool
}

type Redis struct {
	URL      string
	Password string
	UseTLS   bool
}

type AWS struct {
	Queue    string
	Region   string
	Resolver string
}

type S3 struct {
	Enabled bool
	Bucket  string
}

type Kafka struct {
	Enabled bool
	Brokers []string
	Topic   string
}

type Rabbitmq struct {
	Enabled bool
	URL     string
	Queue   string
}

type Notification struct {
	Slack     Slack
	RateLimit RateLimit
}

type Slack struct {
	ChannelID string
	Webhook   string
}

// RateLimit bounds accepted upload requests per api key. Zero disables the bound.
type RateLimit struct {
	Minute int
	Hour   int
}

func NewConfig() *AppConfig {
	return &AppConfig{
		Clamd: Clamd{
			Type:       "unix",
			UnixSocket: "/var/run/clamav/clamd.ctl",
			Host:       "localhost",
			Port:       defaultClamdPort,
			Timeout:    defaultClamdTimeout,
		},
		Scanner: Scanner{
			MaxFileSize:  defaultMaxFileSize,
			MaxFiles:     defaultMaxFiles,
			CacheEnabled: true,
			CacheTTL:     defaultCacheTTL,
			MaxAsyncJobs: defaultMaxAsyncJobs,
		},
		Aws: AWS{
			Region: "us-east-1",
		},
		HTTPServer: HTTPServer{
			Port:           defaultPort,
			MaxRequestSize: defaultMaxRequestSize,
		},
	}
}

func validateConfig(config AppConfig) error {
	if config.Scanner.CacheEnabled && config.Redis.URL == "" {
		return fmt.Errorf("no Redis URL specified")
	}

	if config.Clamd.Type != "unix" && config.Clamd.Type != "tcp" {
		return fmt.Errorf("unknown clamd connection type %q", config.Clamd.Type)
	}

	if config.S3.Enabled && config.Aws.Region == "" {
		return fmt.Errorf("no AWS region specified")
	}

	if config.Aws.Queue != "" && !config.S3.Enabled {
		return fmt.Errorf("SQS queue configured but S3 is disabled")
	}

	if config.Kafka.Enabled && len(config.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka enabled but no brokers specified")
	}

	if config.Rabbitmq.Enabled && config.Rabbitmq.URL == "" {
		return fmt.Errorf("rabbitmq enabled but no URL specified")
	}

	return nil
}

// see supershal approach https://github.com/spf13/viper/issues/188
func LoadConfig() (AppConfig, error) {
	const keyDelimiter = "/"
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	// set default values in viper.
	// Viper needs to know if a key exists in order to override it.
	// https://github.com/spf13/viper/issues/188
	b, err := yaml.Marshal(NewConfig())
	if err != nil {
		return AppConfig{}, err
	}

	defaultConfig := bytes.NewReader(b)

	v.AddConfigPath(os.Getenv("CONFIG_DIR"))
	v.AddConfigPath("../resources/")
	v.AddConfigPath(".")
	v.AddConfigPath("/app/data/")
	v.AddConfigPath("/app/config/")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.MergeConfig(defaultConfig); err != nil {
		return AppConfig{}, err
	}

	// If file not found, return error
	if err := v.MergeInConfig(); err != nil {
		return AppConfig{}, err
	}

	// tell viper to overwrite env variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))
	// refresh configuration with all merged values
	config := AppConfig{}
	err = v.Unmarshal(&config)

	if err != nil {
		return AppConfig{}, err
	}

	err = validateConfig(config)
	if err != nil {
		return AppConfig{}, err
	}

	return config, nil
}
