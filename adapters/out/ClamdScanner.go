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
	"bytes"
	"fmt"
	"math"
	"time"

	"clam-gateway/config"
	"clam-gateway/domain/entities"
	"clam-gateway/fileutils"
	"clam-gateway/logging"

	"github.com/dutchcoders/go-clamd"
)

type replyKind int

const (
	replyClean replyKind = iota
	replyDetected
	replyError
)

// engineReply is the normalized clamd answer. The daemon reports a result
// line per scanned path; only this reduced form reaches the orchestrator.
type engineReply struct {
	kind      replyKind
	signature string
	message   string
}

type ClamdScanner struct {
	address string
	timeout time.Duration
	client  *clamd.Clamd
	logger  logging.Logger
}

func NewClamdScanner(cfg config.Clamd, logger logging.Logger) *ClamdScanner {
	address := fmt.Sprintf("unix://%s", cfg.UnixSocket)
	if cfg.Type == "tcp" {
		address = fmt.Sprintf("tcp://%s:%d", cfg.Host, cfg.Port)
	}

	return &ClamdScanner{address: address, timeout: time.Duration(cfg.Timeout) * time.Second, logger: logger}
}

// Connect probes the daemon and keeps the client only on success. There is
// no inline reconnect later; a failed startup leaves the scanner reporting
// unavailable until the process restarts.
func (c *ClamdScanner) Connect() bool {
	client := clamd.NewClamd(c.address)
	if err := client.Ping(); err != nil {
		c.logger.Errorw("Failed to connect to clamd", "error", err, "address", c.address)
		return false
	}

	c.client = client

	version, _ := c.versionString()
	c.logger.Infow("Connected to clamd", "address", c.address, "version", version)

	return true
}

func (c *ClamdScanner) Connected() bool {
	return c.client != nil
}

func (c *ClamdScanner) Ping() bool {
	if c.client == nil {
		return false
	}

	if err := c.client.Ping(); err != nil {
		c.logger.Errorw("clamd ping failed", "error", err)
		return false
	}

	return true
}

func (c *ClamdScanner) Version() (string, bool) {
	if c.client == nil {
		return "", false
	}

	return c.versionString()
}

func (c *ClamdScanner) versionString() (string, bool) {
	response, err := c.client.Version()
	if err != nil {
		c.logger.Errorw("Failed to get clamd version", "error", err)
		return "", false
	}

	for result := range response {
		if result.Raw != "" {
			return result.Raw, true
		}
	}

	return "", false
}

// Scan streams the buffer through clamd INSTREAM. It always assembles a
// verdict; the returned error carries transport detail for logging and must
// not be treated as fatal by callers. sha256 may be passed precomputed so
// the miss path hashes each buffer once; an empty value is derived here.
func (c *ClamdScanner) Scan(data []byte, filename, sha256 string) (entities.ScanVerdict, error) {
	if sha256 == "" {
		sha256 = fileutils.Sha256Hex(data)
	}

	if c.client == nil {
		return entities.NewErrorVerdict(filename, int64(len(data)), sha256), fmt.Errorf("clamd client not connected")
	}

	start := time.Now()
	reply, err := c.roundTrip(data)
	elapsed := roundSeconds(time.Since(start))

	verdict := entities.ScanVerdict{
		Filename:        filename,
		SizeBytes:       int64(len(data)),
		Sha256:          sha256,
		Status:          entities.StatusClean,
		ScanTimeSeconds: elapsed,
		Timestamp:       time.Now().UTC(),
	}

	if err != nil {
		verdict.Status = entities.StatusError
		c.logger.Errorw("Error scanning file", "error", err, "filename", filename)

		return verdict, err
	}

	switch reply.kind {
	case replyDetected:
		signature := reply.signature
		verdict.Status = entities.StatusInfected
		verdict.VirusSignature = &signature
	case replyError:
		verdict.Status = entities.StatusError
		err = fmt.Errorf("clamd scan error: %s", reply.message)
		c.logger.Errorw("Error scanning file", "error", err, "filename", filename)
	case replyClean:
	}

	return verdict, err
}

func (c *ClamdScanner) roundTrip(data []byte) (engineReply, error) {
	response, err := c.client.ScanStream(bytes.NewReader(data), make(chan bool))
	if err != nil {
		return engineReply{}, fmt.Errorf("clamd stream scan failed: %w", err)
	}

	return c.collectReplies(response)
}

func (c *ClamdScanner) collectReplies(response chan *clamd.ScanResult) (engineReply, error) {
	var results []*clamd.ScanResult

	deadline := time.After(c.timeout)
	for {
		select {
		case result, ok := <-response:
			if !ok {
				return normalizeReplies(results), nil
			}

			results = append(results, result)
		case <-deadline:
			// The library's reader goroutine blocks sending on the unbuffered
			// channel and closes the daemon connection only afterwards. Drain
			// it so neither leaks when the daemon eventually answers.
			go func() {
				for range response {
				}
			}()

			return engineReply{}, fmt.Errorf("clamd scan timed out after %s", c.timeout)
		}
	}
}

// normalizeReplies reduces the daemon's per-path result lines to a single
// answer. The first detection wins; there is no severity ranking.
func normalizeReplies(results []*clamd.ScanResult) engineReply {
	for _, result := range results {
		if result.Status == clamd.RES_FOUND {
			return engineReply{kind: replyDetected, signature: result.Description}
		}
	}

	for _, result := range results {
		if result.Status == clamd.RES_ERROR || result.Status == clamd.RES_PARSE_ERROR {
			message := result.Description
			if message == "" {
				message = result.Raw
			}

			return engineReply{kind: replyError, message: message}
		}
	}

	return engineReply{kind: replyClean}
}

func roundSeconds(d time.Duration) float64 {
	const centis = 100
	return math.Round(d.Seconds()*centis) / centis
}
