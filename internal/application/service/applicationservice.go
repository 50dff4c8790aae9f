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

// Package service provides the client registry lookups used by the OAuth endpoints.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/asgardeo/beacon/internal/application/constants"
	"github.com/asgardeo/beacon/internal/application/model"
	"github.com/asgardeo/beacon/internal/application/store"
	"github.com/asgardeo/beacon/internal/system/error/serviceerror"
	"github.com/asgardeo/beacon/internal/system/log"
)

// ApplicationServiceInterface defines the interface for the application service.
type ApplicationServiceInterface interface {
	GetClientApplication(ctx context.Context, clientID string) (*model.ClientApplication, *serviceerror.ServiceError)
}

// ApplicationService is the default implementation of the ApplicationServiceInterface.
type ApplicationService struct {
	store store.ApplicationStoreInterface
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(appStore store.ApplicationStoreInterface) ApplicationServiceInterface {
	return &ApplicationService{
		store: appStore,
	}
}

// GetClientApplication parses the client id and resolves the registered client application.
func (as *ApplicationService) GetClientApplication(ctx context.Context,
	clientID string) (*model.ClientApplication, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ApplicationService"))

	if clientID == "" {
		return nil, &constants.ErrorInvalidClientID
	}
	parsedClientID, err := uuid.Parse(clientID)
	if err != nil {
		logger.Debug("Client ID is not a valid identifier", log.String(log.LoggerKeyClientID, clientID))
		return nil, &constants.ErrorInvalidClientID
	}

	app, err := as.store.GetClientApplication(ctx, parsedClientID)
	if err != nil {
		if errors.Is(err, constants.ErrApplicationNotFound) {
			return nil, &constants.ErrorApplicationNotFound
		}
		logger.Error("Failed to retrieve the client application", log.String(log.LoggerKeyClientID, clientID),
			log.Error(err))
		return nil, &serviceerror.InternalServerError
	}

	return app, nil
}
