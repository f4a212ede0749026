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
	"testing"
	"time"

	"clam-gateway/config"
	"clam-gateway/domain/entities"
	"clam-gateway/fileutils"
	"clam-gateway/logging"

	"github.com/dutchcoders/go-clamd"
	"github.com/stretchr/testify/assert"
)

func TestScannerAddressFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Clamd
		expected string
	}{
		{
			name:     "unix socket",
			cfg:      config.Clamd{Type: "unix", UnixSocket: "/var/run/clamav/clamd.ctl"},
			expected: "unix:///var/run/clamav/clamd.ctl",
		},
		{
			name:     "tcp endpoint",
			cfg:      config.Clamd{Type: "tcp", Host: "clamav.internal", Port: 3310},
			expected: "tcp://clamav.internal:3310",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			scanner := NewClamdScanner(test.cfg, logging.NewDiscardLog())
			assert.Equal(t, test.expected, scanner.address)
		})
	}
}

func TestDisconnectedScannerDegradesSafely(t *testing.T) {
	scanner := NewClamdScanner(config.Clamd{Type: "tcp", Host: "localhost", Port: 3310, Timeout: 1}, logging.NewDiscardLog())

	assert.False(t, scanner.Connected())
	assert.False(t, scanner.Ping())

	_, ok := scanner.Version()
	assert.False(t, ok)

	data := []byte{0xca, 0xfe}
	verdict, err := scanner.Scan(data, "sample.bin", "")

	assert.Error(t, err)
	assert.Equal(t, entities.StatusError, verdict.Status)
	assert.Equal(t, "sample.bin", verdict.Filename)
	assert.Equal(t, int64(2), verdict.SizeBytes)
	// Hash is derived even when the daemon is unreachable, so the error
	// verdict stays correlatable.
	assert.Equal(t, fileutils.Sha256Hex(data), verdict.Sha256)
}

func TestNormalizeRepliesFirstDetectionWins(t *testing.T) {
	results := []*clamd.ScanResult{
		{Status: clamd.RES_OK},
		{Status: clamd.RES_FOUND, Description: "Eicar-Test-Signature"},
		{Status: clamd.RES_FOUND, Description: "Win.Test.Other"},
		{Status: clamd.RES_ERROR, Description: "late error"},
	}

	reply := normalizeReplies(results)
	assert.Equal(t, replyDetected, reply.kind)
	assert.Equal(t, "Eicar-Test-Signature", reply.signature)
}

func TestNormalizeRepliesErrorWithoutDetection(t *testing.T) {
	results := []*clamd.ScanResult{
		{Status: clamd.RES_OK},
		{Status: clamd.RES_PARSE_ERROR, Raw: "unparseable reply"},
	}

	reply := normalizeReplies(results)
	assert.Equal(t, replyError, reply.kind)
	assert.Equal(t, "unparseable reply", reply.message)
}

func TestNormalizeRepliesCleanByDefault(t *testing.T) {
	reply := normalizeReplies([]*clamd.ScanResult{{Status: clamd.RES_OK}})
	assert.Equal(t, replyClean, reply.kind)

	reply = normalizeReplies(nil)
	assert.Equal(t, replyClean, reply.kind)
}

func TestRoundSeconds(t *testing.T) {
	assert.Equal(t, 0.15, roundSeconds(151*time.Millisecond))
	assert.Equal(t, 0.0, roundSeconds(time.Millisecond))
	assert.Equal(t, 2.0, roundSeconds(2*time.Second))
}

func TestScanTimeoutDrainsPendingReplies(t *testing.T) {
	scanner := NewClamdScanner(config.Clamd{Type: "tcp", Host: "localhost", Port: 3310, Timeout: 0}, logging.NewDiscardLog())

	response := make(chan *clamd.ScanResult)
	delivered := make(chan struct{})

	// Emulates the library's reader: a reply sent on the unbuffered channel
	// after the deadline already fired, then a clean close.
	go func() {
		time.Sleep(50 * time.Millisecond)
		response <- &clamd.ScanResult{Status: clamd.RES_OK}
		close(response)
		close(delivered)
	}()

	_, err := scanner.collectReplies(response)
	assert.ErrorContains(t, err, "timed out")

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("pending reply was never consumed after the timeout")
	}
}
