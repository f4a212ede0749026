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

package entities

// KafkaScanRequest asks for an object scan whose verdict is delivered to a
// kafka topic. Bucket and topic fall back to the configured defaults.
type KafkaScanRequest struct {
	S3Key      string `json:"s3_key"      validate:"required"`
	S3Bucket   string `json:"s3_bucket"`
	KafkaTopic string `json:"kafka_topic"`
}

// RabbitScanRequest asks for an object scan whose verdict is delivered to a
// rabbitmq queue.
type RabbitScanRequest struct {
	S3Key         string `json:"s3_key"         validate:"required"`
	S3Bucket      string `json:"s3_bucket"`
	RabbitmqQueue string `json:"rabbitmq_queue"`
}
