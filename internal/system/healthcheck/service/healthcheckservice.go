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

// Package service provides health check-related business logic and operations.
package service

import (
	"context"

	"github.com/asgardeo/beacon/internal/system/healthcheck/model"
	"github.com/asgardeo/beacon/internal/system/log"
)

// DependencyCheck probes a single dependency of the server.
type DependencyCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) model.ServerStatus
}

// HealthCheckService is the default implementation of the HealthCheckServiceInterface.
type HealthCheckService struct {
	checks []DependencyCheck
}

// NewHealthCheckService creates a health check service probing the given dependencies.
func NewHealthCheckService(checks ...DependencyCheck) HealthCheckServiceInterface {
	return &HealthCheckService{checks: checks}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *HealthCheckService) CheckReadiness(ctx context.Context) model.ServerStatus {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	status := model.StatusUp
	statuses := make([]model.ServiceStatus, 0, len(hcs.checks))
	for _, check := range hcs.checks {
		serviceStatus := model.ServiceStatus{ServiceName: check.Name, Status: model.StatusUp}
		if err := check.Check(ctx); err != nil {
			logger.Error("Dependency is not ready", log.String("service", check.Name), log.Error(err))
			serviceStatus.Status = model.StatusDown
			status = model.StatusDown
		}
		statuses = append(statuses, serviceStatus)
	}

	return model.ServerStatus{
		Status:        status,
		ServiceStatus: statuses,
	}
}
