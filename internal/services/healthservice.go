/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package services

import (
	"net/http"

	"github.com/asgardeo/beacon/internal/system/healthcheck/handler"
)

// HealthService defines the service for handling readiness and liveness checks.
type HealthService struct {
	healthCheckHandler *handler.HealthCheckHandler
}

// NewHealthService creates a new instance of HealthService.
func NewHealthService(mux *http.ServeMux, healthCheckHandler *handler.HealthCheckHandler) ServiceInterface {
	instance := &HealthService{
		healthCheckHandler: healthCheckHandler,
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the HealthService.
func (s *HealthService) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health/liveness", s.healthCheckHandler.HandleLivenessRequest)
	mux.HandleFunc("GET /health/readiness", s.healthCheckHandler.HandleReadinessRequest)
}
