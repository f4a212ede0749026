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
	"clam-gateway/logging"
	"clam-gateway/pkg/awsutils"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type S3Storage struct {
	svc       awsutils.S3
	connected bool
	logger    logging.Logger
}

func NewS3Storage(awsSession *session.Session, awsConfig *aws.Config, logger logging.Logger) *S3Storage {
	svc := awsutils.S3{}
	// A nil session means the integration is switched off; the adapter then
	// permanently reports not connected.
	if awsSession != nil {
		svc.Init(awsSession, awsConfig)
	}

	return &S3Storage{svc: svc, logger: logger}
}

// Connect probes the endpoint once at startup. Like the scan engine, a
// failed probe leaves the adapter reporting unavailable.
func (s *S3Storage) Connect() bool {
	if err := s.svc.ListBuckets(); err != nil {
		s.logger.Errorw("Failed to connect to object storage", "error", err)
		return false
	}

	s.connected = true

	return true
}

func (s *S3Storage) Connected() bool {
	return s.connected
}

// Exists reports whether the object is retrievable. Both a missing key and
// a transport failure come back false; only the log line distinguishes them.
func (s *S3Storage) Exists(key, bucket string) bool {
	if !s.connected {
		s.logger.Errorw("Object storage not connected", "key", key, "bucket", bucket)
		return false
	}

	err := s.svc.HeadObject(bucket, key)
	if err == nil {
		return true
	}

	if awsErr, ok := err.(awserr.Error); ok && (awsErr.Code() == s3.ErrCodeNoSuchKey || awsErr.Code() == "NotFound") {
		s.logger.Warnw("Object not found in bucket", "key", key, "bucket", bucket)
	} else {
		s.logger.Errorw("Failed to check object in bucket", "error", err, "key", key, "bucket", bucket)
	}

	return false
}

func (s *S3Storage) Fetch(key, bucket string) ([]byte, bool) {
	if !s.connected {
		s.logger.Errorw("Object storage not connected", "key", key, "bucket", bucket)
		return nil, false
	}

	buffer := aws.NewWriteAtBuffer([]byte{})

	written, err := s.svc.DownloadFromS3Bucket(buffer, bucket, key)
	if err != nil {
		s.logger.Errorw("Failed to download object", "error", err, "key", key, "bucket", bucket)
		return nil, false
	}

	s.logger.Infow("Downloaded object from bucket", "key", key, "bucket", bucket, "size", written)

	return buffer.Bytes(), true
}
