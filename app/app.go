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

package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	adaptersin "clam-gateway/adapters/in"
	adaptersout "clam-gateway/adapters/out"
	"clam-gateway/common"
	"clam-gateway/config"
	portsout "clam-gateway/domain/ports/out"
	"clam-gateway/domain/services/scan"
	clamhttp "clam-gateway/http"
	"clam-gateway/logging"
	"clam-gateway/metrics"
	"clam-gateway/pkg/awsutils"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/uber-go/tally/v4"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"
)

func Start(ctx context.Context) error {
	appConfig, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Enable Datadog tracer
	tracer.Start()
	defer tracer.Stop()

	// Enable Datadog Profiler
	if err = profiler.Start(); err != nil {
		return err
	}
	defer profiler.Stop()

	logger, err := logging.NewZapLogger(appConfig.Scanner.DebugLog)
	if err != nil {
		return err
	}

	var metricsHandler http.Handler
	var metricsScope tally.Scope
	var metricsClose io.Closer

	if appConfig.HTTPServer.Metrics {
		metricsScope, metricsHandler, metricsClose = metrics.NewPrometheusScope()
		defer metricsClose.Close()
	} else {
		metricsScope, metricsHandler, _ = metrics.NewNoopScope()
	}

	cache := adaptersout.NewCache(appConfig.Redis.URL, appConfig.Redis.Password, appConfig.Redis.UseTLS)
	defer cache.Close()

	verdictRepo := adaptersout.NewCacheVerdictRepository(cache,
		time.Duration(appConfig.Scanner.CacheTTL)*time.Second, appConfig.Scanner.CacheEnabled, logger)

	scanner := adaptersout.NewClamdScanner(appConfig.Clamd, logger)
	if !scanner.Connect() {
		// Degraded start: health reports the outage, scans fail until the
		// daemon comes back.
		logger.Warnw("ClamAV daemon unreachable at startup", "type", appConfig.Clamd.Type)
	}

	var storage *adaptersout.S3Storage
	var sqsService awsutils.SQS

	if appConfig.S3.Enabled {
		session, err := awsutils.NewSession(appConfig.Aws.Region, appConfig.Aws.Resolver)
		if err != nil {
			return fmt.Errorf("failed to initialize aws client. Error: %s, Region: %s, Resolver: %s", err, appConfig.Aws.Region, appConfig.Aws.Resolver)
		}

		storage = adaptersout.NewS3Storage(session, nil, logger)
		if !storage.Connect() {
			logger.Warnw("S3 service unreachable at startup", "region", appConfig.Aws.Region)
		}

		sqsService.Init(session, nil)
	} else {
		storage = adaptersout.NewS3Storage(nil, nil, logger)
	}

	kafkaPublisher := adaptersout.NewKafkaPublisher(appConfig.Kafka.Brokers, logger)
	if appConfig.Kafka.Enabled {
		if !kafkaPublisher.Connect() {
			logger.Warnw("Kafka brokers unreachable at startup", "brokers", appConfig.Kafka.Brokers)
		}
		defer kafkaPublisher.Close()
	}

	rabbitPublisher := adaptersout.NewRabbitPublisher(appConfig.Rabbitmq.URL, logger)
	if appConfig.Rabbitmq.Enabled {
		if !rabbitPublisher.Connect() {
			logger.Warnw("Rabbitmq unreachable at startup")
		}
		defer rabbitPublisher.Close()
	}

	var notifier portsout.Notifier = adaptersout.NoopNotifier{}
	if appConfig.Notification.Slack.Webhook != "" {
		notifier = adaptersout.NewSlackNotifier(appConfig.Notification.Slack.Webhook, appConfig.Notification.Slack.ChannelID)
	}

	var rateLimiter common.RateLimiter
	if appConfig.Notification.RateLimit.Minute != 0 || appConfig.Notification.RateLimit.Hour != 0 {
		rateLimiter = common.NewRateLimiter(appConfig.Redis.URL, appConfig.Redis.Password, appConfig.Redis.UseTLS, common.RateLimitConfig{
			Minute: appConfig.Notification.RateLimit.Minute,
			Hour:   appConfig.Notification.RateLimit.Hour,
			Key:    "upload-scan",
		})
	}

	orchestrator := scan.NewOrchestrator(scanner, verdictRepo, storage, kafkaPublisher, rabbitPublisher, notifier,
		scan.Options{
			MaxFileSize:     appConfig.Scanner.MaxFileSize,
			MaxFiles:        appConfig.Scanner.MaxFiles,
			MaxAsyncJobs:    appConfig.Scanner.MaxAsyncJobs,
			DefaultBucket:   appConfig.S3.Bucket,
			DefaultTopic:    appConfig.Kafka.Topic,
			DefaultQueue:    appConfig.Rabbitmq.Queue,
			S3Enabled:       appConfig.S3.Enabled,
			KafkaEnabled:    appConfig.Kafka.Enabled,
			RabbitmqEnabled: appConfig.Rabbitmq.Enabled,
		}, metricsScope, logger)

	// Controllers. The SQS consumer only runs with an initialized client;
	// validateConfig rejects a queue without S3, this guards the same line.
	if appConfig.S3.Enabled {
		queueController := adaptersin.NewQueueController(appConfig.Aws.Queue, orchestrator, sqsService, metricsScope, logger)
		go queueController.AsyncScan(ctx)
	}

	scanController := adaptersin.NewScanController(orchestrator, rateLimiter, logger)
	statusController := adaptersin.NewStatusController(orchestrator, logger)

	fiberConfig := clamhttp.FiberConfig{
		MaxRequestSize:    appConfig.HTTPServer.MaxRequestSize,
		AuthorizationKeys: appConfig.HTTPServer.AuthorizationKeys,
		Profiler:          appConfig.HTTPServer.Profiler,
		Swagger:           appConfig.HTTPServer.Swagger,
		Metrics:           adaptor.HTTPHandler(metricsHandler),
		RequestLogger: func(c *fiber.Ctx) error {
			// Prevent generating lots of requests because of healthcheck
			if !strings.HasPrefix(c.Path(), "/healthcheck/") && !strings.HasPrefix(c.Path(), "/metrics") {
				logger.Infow("Received webapi request", "ip", c.IP(), "method", c.Method(),
					"url", c.BaseURL(), "path", c.Path(), "response_status", c.Response().StatusCode())
			}
			return c.Next()
		},
		Readiness: func(c *fiber.Ctx) error {
			if err := cache.Ping(); err != nil {
				logger.Errorw("Failed to connect to the cache in readiness.", "error", err)
				return c.Status(fiber.StatusServiceUnavailable).SendString(fmt.Sprintf("Redis not connectable. %s", err))
			}

			return c.SendStatus(fiber.StatusOK)
		},
		Liveness: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
		Handlers: []clamhttp.Handler{
			{HTTPMethod: "POST", Path: "/scan", HandlerFunc: scanController.ScanFiles},
			{HTTPMethod: "POST", Path: "/scan/kafka", HandlerFunc: scanController.ScanToKafka},
			{HTTPMethod: "POST", Path: "/scan/rabbitmq", HandlerFunc: scanController.ScanToRabbitmq},
			{HTTPMethod: "GET", Path: "/health", HandlerFunc: statusController.Health},
			{HTTPMethod: "GET", Path: "/version", HandlerFunc: statusController.Version},
		},
	}

	app, err := clamhttp.CreateFiberApp(fiberConfig, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize fiber framework. Error: %s", err)
	}

	return app.Listen(fmt.Sprintf(":%d", appConfig.HTTPServer.Port))
}
