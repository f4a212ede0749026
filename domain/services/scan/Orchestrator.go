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

package scan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clam-gateway/common"
	"clam-gateway/domain/entities"
	"clam-gateway/domain/ports/out"
	"clam-gateway/fileutils"
	"clam-gateway/logging"

	"github.com/google/uuid"
	"github.com/uber-go/tally/v4"
)

const (
	scanCount     = "scan_count"
	cacheHitCount = "cache_hit_count"
	asyncJobCount = "async_job_count"
	asyncErrCount = "async_error_count"
)

// Options carries the limits and feature flags the orchestrator enforces.
type Options struct {
	MaxFileSize  int64
	MaxFiles     int
	MaxAsyncJobs int

	DefaultBucket string
	DefaultTopic  string
	DefaultQueue  string

	S3Enabled       bool
	KafkaEnabled    bool
	RabbitmqEnabled bool
}

// Orchestration is the scan surface the controllers depend on.
//
//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../../mocks/mock_orchestration.go -package=mocks -source=Orchestrator.go
type Orchestration interface {
	ScanBatch(ctx context.Context, files []entities.FileUpload) (entities.BatchResult, error)
	AdmitStreamScan(ctx context.Context, key, bucket, topic string) (entities.AsyncScanRequest, error)
	AdmitQueueScan(ctx context.Context, key, bucket, queue string) (entities.AsyncScanRequest, error)
	Health() entities.HealthStatus
	EngineVersion() (string, bool)
}

// Orchestrator drives each file through size check, cache lookup, engine
// scan, cache store and delivery. All backing clients are injected once at
// startup and shared across requests.
type Orchestrator struct {
	engine   out.ScanEngine
	verdicts out.VerdictRepository
	storage  out.ObjectStorage
	stream   out.StreamPublisher
	queue    out.QueuePublisher
	notifier out.Notifier

	options Options

	// sem bounds concurrently running background jobs. Admission is not
	// blocked by a full pool; the job waits inside its own goroutine.
	sem chan struct{}

	metrics tally.Scope
	logger  logging.Logger
}

func NewOrchestrator(engine out.ScanEngine, verdicts out.VerdictRepository, storage out.ObjectStorage,
	stream out.StreamPublisher, queue out.QueuePublisher, notifier out.Notifier,
	options Options, metricsScope tally.Scope, logger logging.Logger) *Orchestrator {
	if options.MaxAsyncJobs <= 0 {
		options.MaxAsyncJobs = 1
	}

	return &Orchestrator{
		engine:   engine,
		verdicts: verdicts,
		storage:  storage,
		stream:   stream,
		queue:    queue,
		notifier: notifier,
		options:  options,
		sem:      make(chan struct{}, options.MaxAsyncJobs),
		metrics:  metricsScope,
		logger:   logger,
	}
}

// ScanBatch processes files sequentially in submission order. A per-file
// scan failure becomes an error verdict and never aborts the batch.
func (o *Orchestrator) ScanBatch(ctx context.Context, files []entities.FileUpload) (entities.BatchResult, error) {
	if !o.engine.Connected() {
		return entities.BatchResult{}, fmt.Errorf("%w: clamav service", entities.ErrUnavailable)
	}

	if len(files) == 0 {
		return entities.BatchResult{}, fmt.Errorf("%w: at least one file must be provided", entities.ErrValidation)
	}

	if len(files) > o.options.MaxFiles {
		return entities.BatchResult{}, fmt.Errorf("%w: maximum %d files allowed per request", entities.ErrValidation, o.options.MaxFiles)
	}

	var batch entities.BatchResult
	for _, file := range files {
		batch.Add(o.scanOne(file))
	}

	return batch, nil
}

func (o *Orchestrator) scanOne(file entities.FileUpload) entities.ScanVerdict {
	o.metrics.Counter(scanCount).Inc(1)

	size := int64(len(file.Data))
	if size > o.options.MaxFileSize {
		o.logger.Warnw("File exceeds max size", "filename", file.Filename, "size", size, "limit", o.options.MaxFileSize)
		return entities.NewErrorVerdict(file.Filename, size, "")
	}

	sha256 := fileutils.Sha256Hex(file.Data)

	if cached, ok := o.verdicts.Get(sha256); ok {
		o.metrics.Counter(cacheHitCount).Inc(1)
		o.logger.Infow("Cache hit", "filename", file.Filename, "hash", fileutils.ShortHash(sha256))

		return renameOnHit(cached, file.Filename)
	}

	o.logger.Debugw("Scanning file", "filename", file.Filename, "size", size,
		"mimetype", fileutils.DetectMime(file.Data), "hash", fileutils.ShortHash(sha256))

	verdict, err := o.engine.Scan(file.Data, file.Filename, sha256)
	if err != nil {
		o.logger.Errorw("Scan error", "error", err, "filename", file.Filename)
	}

	o.verdicts.Save(sha256, verdict)
	o.alertIfInfected(verdict)

	return verdict
}

// renameOnHit rebinds a cached verdict to the current request: the stored
// filename, timestamp and duration belong to the original scan.
func renameOnHit(cached entities.ScanVerdict, filename string) entities.ScanVerdict {
	cached.Filename = filename
	cached.Timestamp = time.Now().UTC()
	cached.ScanTimeSeconds = 0
	cached.Cached = true

	return cached
}

func (o *Orchestrator) alertIfInfected(verdict entities.ScanVerdict) {
	if o.notifier == nil || verdict.Status != entities.StatusInfected || verdict.VirusSignature == nil {
		return
	}

	if err := o.notifier.NotifyInfected(verdict.Filename, *verdict.VirusSignature, verdict.Sha256); err != nil {
		o.logger.Errorw("Failed to send infection alert", "error", err, "filename", verdict.Filename)
	}
}

// AdmitStreamScan validates an object-storage scan request and, only after
// every check passes, mints a request id and detaches the job.
func (o *Orchestrator) AdmitStreamScan(ctx context.Context, key, bucket, topic string) (entities.AsyncScanRequest, error) {
	if !o.options.S3Enabled {
		return entities.AsyncScanRequest{}, fmt.Errorf("%w: s3 scanning", entities.ErrNotEnabled)
	}

	if !o.options.KafkaEnabled {
		return entities.AsyncScanRequest{}, fmt.Errorf("%w: kafka integration", entities.ErrNotEnabled)
	}

	if !o.storage.Connected() {
		return entities.AsyncScanRequest{}, fmt.Errorf("%w: s3 service", entities.ErrUnavailable)
	}

	if !o.stream.Connected() {
		return entities.AsyncScanRequest{}, fmt.Errorf("%w: kafka service", entities.ErrUnavailable)
	}

	bucket = common.GetFirstNonEmpty(bucket, o.options.DefaultBucket)
	topic = common.GetFirstNonEmpty(topic, o.options.DefaultTopic)

	if !o.storage.Exists(key, bucket) {
		return entities.AsyncScanRequest{}, fmt.Errorf("%w: file %q in bucket %q", entities.ErrNotFound, key, bucket)
	}

	if !o.stream.TopicExists(topic) {
		return entities.AsyncScanRequest{}, fmt.Errorf("%w: kafka topic %q", entities.ErrDestinationNotFound, topic)
	}

	job := entities.AsyncScanRequest{
		RequestID:   uuid.New().String(),
		Key:         key,
		Bucket:      bucket,
		Destination: topic,
		Kind:        entities.DestinationStream,
	}
	o.start(job)

	return job, nil
}

// AdmitQueueScan mirrors AdmitStreamScan for the queue destination, with
// declare-if-absent semantics instead of an existence check.
func (o *Orchestrator) AdmitQueueScan(ctx context.Context, key, bucket, queue string) (entities.AsyncScanRequest, error) {
	if !o.options.S3Enabled {
		return entities.AsyncScanRequest{}, fmt.Errorf("%w: s3 scanning", entities.ErrNotEnabled)
	}

	if !o.options.RabbitmqEnabled {
		return entities.AsyncScanRequest{}, fmt.Errorf("%w: rabbitmq integration", entities.ErrNotEnabled)
	}

	if !o.storage.Connected() {
		return entities.AsyncScanRequest{}, fmt.Errorf("%w: s3 service", entities.ErrUnavailable)
	}

	if !o.queue.Connected() {
		return entities.AsyncScanRequest{}, fmt.Errorf("%w: rabbitmq service", entities.ErrUnavailable)
	}

	bucket = common.GetFirstNonEmpty(bucket, o.options.DefaultBucket)
	queue = common.GetFirstNonEmpty(queue, o.options.DefaultQueue)

	if !o.storage.Exists(key, bucket) {
		return entities.AsyncScanRequest{}, fmt.Errorf("%w: file %q in bucket %q", entities.ErrNotFound, key, bucket)
	}

	if !o.queue.EnsureQueue(queue) {
		return entities.AsyncScanRequest{}, fmt.Errorf("%w: rabbitmq queue %q could not be declared", entities.ErrUnavailable, queue)
	}

	job := entities.AsyncScanRequest{
		RequestID:   uuid.New().String(),
		Key:         key,
		Bucket:      bucket,
		Destination: queue,
		Kind:        entities.DestinationQueue,
	}
	o.start(job)

	return job, nil
}

func (o *Orchestrator) start(job entities.AsyncScanRequest) {
	o.metrics.Counter(asyncJobCount).Inc(1)
	o.logger.Infow("Accepted async scan request", "request_id", job.RequestID,
		"key", job.Key, "bucket", job.Bucket, "destination", job.Destination, "kind", job.Kind)

	go func() {
		o.sem <- struct{}{}
		defer func() { <-o.sem }()

		o.runAsync(context.Background(), job)
	}()
}

// runAsync executes one detached job to completion. Every failure turns
// into an error payload published to the job's own destination; failing to
// even deliver the error is logged only, the original caller is long gone.
func (o *Orchestrator) runAsync(ctx context.Context, job entities.AsyncScanRequest) {
	data, ok := o.storage.Fetch(job.Key, job.Bucket)
	if !ok {
		o.publishError(ctx, job, "Failed to download file from S3")
		return
	}

	sha256 := fileutils.Sha256Hex(data)
	o.logger.Infow("Fetched object for async scan", "request_id", job.RequestID, "hash", fileutils.ShortHash(sha256))

	if cached, ok := o.verdicts.Get(sha256); ok {
		o.metrics.Counter(cacheHitCount).Inc(1)
		o.deliver(ctx, job, entities.NewScanMessage(job, renameOnHit(cached, job.Key)))

		return
	}

	if !o.engine.Connected() {
		o.publishError(ctx, job, "ClamAV service not available")
		return
	}

	verdict, err := o.engine.Scan(data, job.Key, sha256)
	if err != nil {
		o.logger.Errorw("Async scan error", "error", err, "request_id", job.RequestID)
	}

	o.metrics.Counter(scanCount).Inc(1)
	o.verdicts.Save(sha256, verdict)
	o.alertIfInfected(verdict)

	o.deliver(ctx, job, entities.NewScanMessage(job, verdict))
	o.logger.Infow("Async scan complete", "request_id", job.RequestID, "status", verdict.Status)
}

func (o *Orchestrator) deliver(ctx context.Context, job entities.AsyncScanRequest, message entities.ScanMessage) {
	err := o.publish(ctx, job, message)
	if err == nil {
		return
	}

	if errors.Is(err, entities.ErrDestinationNotFound) {
		// The destination vanished between admission and publish; report
		// that with its own reason, still best-effort to the same place.
		o.publishError(ctx, job, err.Error())
		return
	}

	o.metrics.Counter(asyncErrCount).Inc(1)
	o.logger.Errorw("Failed to publish scan result", "error", err, "request_id", job.RequestID, "destination", job.Destination)
}

func (o *Orchestrator) publishError(ctx context.Context, job entities.AsyncScanRequest, reason string) {
	o.metrics.Counter(asyncErrCount).Inc(1)
	o.logger.Errorw("Async scan failed", "request_id", job.RequestID, "reason", reason)

	if err := o.publish(ctx, job, entities.NewErrorMessage(job, reason)); err != nil {
		o.logger.Errorw("Failed to publish error payload", "error", err, "request_id", job.RequestID, "destination", job.Destination)
	}
}

func (o *Orchestrator) publish(ctx context.Context, job entities.AsyncScanRequest, message entities.ScanMessage) error {
	if job.Kind == entities.DestinationQueue {
		return o.queue.Publish(ctx, job.Destination, message)
	}

	return o.stream.Publish(ctx, job.Destination, message, "")
}

// Health reports per-service connectivity. The gateway is healthy when the
// scan engine answers a ping; disabled integrations report a nil connected
// flag.
func (o *Orchestrator) Health() entities.HealthStatus {
	enabledFlag := func(enabled, connected bool) entities.ServiceStatus {
		status := entities.ServiceStatus{Enabled: enabled}
		if enabled {
			status.Connected = &connected
		}

		return status
	}

	engineOK := o.engine.Ping()

	return entities.HealthStatus{
		Healthy: engineOK,
		Services: map[string]entities.ServiceStatus{
			"clamav":   enabledFlag(true, engineOK),
			"redis":    enabledFlag(true, o.verdicts.Connected()),
			"s3":       enabledFlag(o.options.S3Enabled, o.storage.Connected()),
			"kafka":    enabledFlag(o.options.KafkaEnabled, o.stream.Connected()),
			"rabbitmq": enabledFlag(o.options.RabbitmqEnabled, o.queue.Connected()),
		},
	}
}

func (o *Orchestrator) EngineVersion() (string, bool) {
	return o.engine.Version()
}
