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

package awsutils

import (
	"io"
	"net/url"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const (
	downloadConcurrency = 1 // Whole object must land in one buffer before scanning
	downloadPartSize    = 64 * 1024 * 1024
)

type S3 struct {
	svc        *s3.S3
	downloader *s3manager.Downloader
}

func (s *S3) Init(awsSession *session.Session, awsConfig *aws.Config) {
	s.svc = s3.New(awsSession, awsConfig)

	s.downloader = s3manager.NewDownloaderWithClient(s.svc, func(d *s3manager.Downloader) {
		d.Concurrency = downloadConcurrency
		d.PartSize = downloadPartSize
	})
}

func (s *S3) HeadObject(bucket, item string) error {
	_, err := s.svc.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(item),
	})

	return err
}

// Downloads a full object from S3 into the writer.
// Refs https://github.com/awsdocs/aws-doc-sdk-examples/blob/main/go/example_code/s3/s3_download_object.go
func (s *S3) DownloadFromS3Bucket(file io.WriterAt, bucket, item string) (int64, error) {
	// Some items have URL encoded parts that were causing download issues.
	item, err := url.QueryUnescape(item)
	if err != nil {
		return 0, err
	}

	object := &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(item),
	}

	return s.downloader.Download(file, object)
}

// ListBuckets is used as the connectivity probe at startup.
func (s *S3) ListBuckets() error {
	_, err := s.svc.ListBuckets(&s3.ListBucketsInput{})
	return err
}
