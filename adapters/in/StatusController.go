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
	adapterentities "clam-gateway/adapters/entities"
	"clam-gateway/config"
	"clam-gateway/domain/services/scan"
	"clam-gateway/logging"

	"github.com/gofiber/fiber/v2"
)

type StatusController struct {
	orchestrator scan.Orchestration
	logger       logging.Logger
}

func NewStatusController(orchestrator scan.Orchestration, logger logging.Logger) StatusController {
	return StatusController{orchestrator: orchestrator, logger: logger}
}

// Health
// @Summary		Reports per-service connectivity
// @Tags		status
// @Produce		json
// @Success		200 {object} adapterentities.HealthResponse
// @Failure		503 {object} adapterentities.HealthResponse
// @Router      /health [get]
func (s *StatusController) Health(c *fiber.Ctx) error {
	health := s.orchestrator.Health()
	response := adapterentities.MapToHealthResponse(health)

	status := fiber.StatusOK
	if !health.Healthy {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(response)
}

// Version
// @Summary		Reports gateway and engine versions
// @Tags		status
// @Produce		json
// @Success		200 {object} adapterentities.VersionResponse
// @Failure		503 {object} adapterentities.VersionResponse
// @Router      /version [get]
func (s *StatusController) Version(c *fiber.Ctx) error {
	response := adapterentities.VersionResponse{APIVersion: config.AppVersion}

	engineVersion, ok := s.orchestrator.EngineVersion()
	if !ok {
		s.logger.Warnw("Engine version unavailable")
		response.Error = "ClamAV service not available"

		return c.Status(fiber.StatusServiceUnavailable).JSON(response)
	}

	response.ClamavVersion = engineVersion

	return c.Status(fiber.StatusOK).JSON(response)
}
