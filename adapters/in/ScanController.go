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

package in

import (
	"errors"
	"io"

	adapterentities "clam-gateway/adapters/entities"
	"clam-gateway/common"
	"clam-gateway/domain/entities"
	"clam-gateway/domain/services/scan"
	"clam-gateway/logging"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	errNoFilesFound    = "no files found in request"
	errRateLimited     = "rate limit exceeded"
	errFileUnreadable  = "failed to read uploaded file"
	errScanUnavailable = "scan service unavailable"
)

type ScanController struct {
	validate     *validator.Validate
	orchestrator scan.Orchestration
	rateLimiter  common.RateLimiter
	logger       logging.Logger
}

func NewScanController(orchestrator scan.Orchestration, rateLimiter common.RateLimiter, logger logging.Logger) ScanController {
	return ScanController{orchestrator: orchestrator, rateLimiter: rateLimiter, logger: logger, validate: validator.New()}
}

// ScanFiles
// @Summary		Scans uploaded files synchronously
// @Tags		scan
// @Accept		mpfd
// @Produce		json
// @Param		files	formData	file	true	"Files to be scanned"
// @Success		200 {object} adapterentities.BatchScanResponse
// @Failure		400 {object} adapterentities.BatchScanResponse
// @Failure		429 {object} adapterentities.BatchScanResponse
// @Failure		503 {object} adapterentities.BatchScanResponse
// @Security	ApiKey
// @Router      /scan [post]
func (s *ScanController) ScanFiles(c *fiber.Ctx) error {
	var response adapterentities.BatchScanResponse

	if s.rateLimiter != nil && !s.rateLimiter.IsRequestAllowed() {
		response.Error = errRateLimited
		return c.Status(fiber.StatusTooManyRequests).JSON(response)
	}

	form, err := c.MultipartForm()
	if err != nil {
		s.logger.Errorw("Could not parse multipart form", "error", err)
		response.Error = errNoFilesFound

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		response.Error = errNoFilesFound
		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	uploads := make([]entities.FileUpload, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			s.logger.Errorw("Failed to open uploaded file", "error", err, "filename", header.Filename)
			response.Error = errFileUnreadable

			return c.Status(fiber.StatusInternalServerError).JSON(response)
		}

		data, err := io.ReadAll(file)
		file.Close()

		if err != nil {
			s.logger.Errorw("Failed to read uploaded file", "error", err, "filename", header.Filename)
			response.Error = errFileUnreadable

			return c.Status(fiber.StatusInternalServerError).JSON(response)
		}

		uploads = append(uploads, entities.FileUpload{Filename: header.Filename, Data: data})
	}

	batch, err := s.orchestrator.ScanBatch(c.UserContext(), uploads)
	if err != nil {
		s.logger.Errorw("Batch scan rejected", "error", err, "files", len(uploads))
		response.Error = err.Error()

		return c.Status(statusFromError(err)).JSON(response)
	}

	return c.Status(fiber.StatusOK).JSON(adapterentities.MapToBatchResponse(batch))
}

// ScanToKafka
// @Summary		Scans an S3 object and publishes the verdict to kafka
// @Tags		scan
// @Accept		json
// @Produce		json
// @Param		request	body	adapterentities.KafkaScanRequest	true	"Object to be scanned"
// @Success		202 {object} adapterentities.ScanAcceptedResponse
// @Failure		400 {object} adapterentities.ScanAcceptedResponse
// @Failure		404 {object} adapterentities.ScanAcceptedResponse
// @Failure		501 {object} adapterentities.ScanAcceptedResponse
// @Failure		503 {object} adapterentities.ScanAcceptedResponse
// @Security	ApiKey
// @Router      /scan/kafka [post]
func (s *ScanController) ScanToKafka(c *fiber.Ctx) error {
	var response adapterentities.ScanAcceptedResponse

	request := &adapterentities.KafkaScanRequest{}
	if err := c.BodyParser(request); err != nil {
		s.logger.Errorw("Could not parse request", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	if err := s.validate.Struct(request); err != nil {
		s.logger.Errorw("Some field is missing", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	job, err := s.orchestrator.AdmitStreamScan(c.UserContext(), request.S3Key, request.S3Bucket, request.KafkaTopic)
	if err != nil {
		s.logger.Errorw("Kafka scan request rejected", "error", err, "key", request.S3Key)
		response.Error = err.Error()

		return c.Status(statusFromError(err)).JSON(response)
	}

	response.RequestID = job.RequestID
	response.Status = "accepted"
	response.Message = "Scan request accepted, result will be published to kafka"

	return c.Status(fiber.StatusAccepted).JSON(response)
}

// ScanToRabbitmq
// @Summary		Scans an S3 object and publishes the verdict to rabbitmq
// @Tags		scan
// @Accept		json
// @Produce		json
// @Param		request	body	adapterentities.RabbitScanRequest	true	"Object to be scanned"
// @Success		202 {object} adapterentities.ScanAcceptedResponse
// @Failure		400 {object} adapterentities.ScanAcceptedResponse
// @Failure		404 {object} adapterentities.ScanAcceptedResponse
// @Failure		501 {object} adapterentities.ScanAcceptedResponse
// @Failure		503 {object} adapterentities.ScanAcceptedResponse
// @Security	ApiKey
// @Router      /scan/rabbitmq [post]
func (s *ScanController) ScanToRabbitmq(c *fiber.Ctx) error {
	var response adapterentities.ScanAcceptedResponse

	request := &adapterentities.RabbitScanRequest{}
	if err := c.BodyParser(request); err != nil {
		s.logger.Errorw("Could not parse request", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	if err := s.validate.Struct(request); err != nil {
		s.logger.Errorw("Some field is missing", "error", err)
		response.Error = err.Error()

		return c.Status(fiber.StatusBadRequest).JSON(response)
	}

	job, err := s.orchestrator.AdmitQueueScan(c.UserContext(), request.S3Key, request.S3Bucket, request.RabbitmqQueue)
	if err != nil {
		s.logger.Errorw("Rabbitmq scan request rejected", "error", err, "key", request.S3Key)
		response.Error = err.Error()

		return c.Status(statusFromError(err)).JSON(response)
	}

	response.RequestID = job.RequestID
	response.Status = "accepted"
	response.Message = "Scan request accepted, result will be published to rabbitmq"

	return c.Status(fiber.StatusAccepted).JSON(response)
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, entities.ErrValidation), errors.Is(err, entities.ErrDestinationNotFound):
		return fiber.StatusBadRequest
	case errors.Is(err, entities.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, entities.ErrNotEnabled):
		return fiber.StatusNotImplemented
	case errors.Is(err, entities.ErrUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
