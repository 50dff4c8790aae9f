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

package authz

import (
	"context"

	"github.com/google/uuid"

	appconstants "github.com/asgardeo/beacon/internal/application/constants"
	appmodel "github.com/asgardeo/beacon/internal/application/model"
	appservice "github.com/asgardeo/beacon/internal/application/service"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/authz/model"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/constants"
	"github.com/asgardeo/beacon/internal/system/log"
)

// AuthorizationValidatorInterface defines the interface for validating OAuth2 authorization requests.
type AuthorizationValidatorInterface interface {
	ValidateAuthorizationRequest(ctx context.Context,
		request model.AuthorizationRequest) (*appmodel.ClientApplication, *AuthorizationError)
}

// AuthorizationValidator implements the AuthorizationValidatorInterface.
type AuthorizationValidator struct {
	appService appservice.ApplicationServiceInterface
}

// NewAuthorizationValidator creates a new instance of AuthorizationValidator.
func NewAuthorizationValidator(appService appservice.ApplicationServiceInterface) AuthorizationValidatorInterface {
	return &AuthorizationValidator{
		appService: appService,
	}
}

// ValidateAuthorizationRequest validates the request against the client registration and returns
// the resolved client. The checks run in a fixed order. Until the redirect URI is known to be
// registered for the client, errors are never redirected.
func (av *AuthorizationValidator) ValidateAuthorizationRequest(ctx context.Context,
	request model.AuthorizationRequest) (*appmodel.ClientApplication, *AuthorizationError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "AuthorizationValidator"))

	if request.ResponseType != constants.ResponseTypeCode && request.ResponseType != constants.ResponseTypeToken {
		return nil, av.unsupportedResponseTypeError(ctx, request)
	}

	if request.ClientID == "" {
		return nil, newBadRequestError(constants.ErrorInvalidRequest, "Missing client_id parameter")
	}
	if request.RedirectURI == "" {
		return nil, newBadRequestError(constants.ErrorInvalidRequest, "Missing redirect_uri parameter")
	}

	if _, err := uuid.Parse(request.ClientID); err != nil {
		return nil, newBadRequestError(constants.ErrorInvalidClient, "Invalid client_id")
	}

	app, authzErr := av.getClientApplication(ctx, request.ClientID)
	if authzErr != nil {
		return nil, authzErr
	}

	if !app.IsRegisteredRedirectURI(request.RedirectURI) {
		logger.Debug("Redirect URI is not registered for the client",
			log.String(log.LoggerKeyClientID, request.ClientID))
		return nil, newBadRequestError(constants.ErrorInvalidRequest,
			"The redirect_uri does not match any registered redirect URI")
	}

	if !app.IsAllowedScope(request.Scope) {
		return nil, newRedirectError(constants.ErrorInvalidScope, "The requested scope is not allowed",
			request.RedirectURI, request.State)
	}

	return app, nil
}

// unsupportedResponseTypeError redirects the error only when the client and redirect URI
// resolve to a registration. A registry failure is reported as a server error.
func (av *AuthorizationValidator) unsupportedResponseTypeError(ctx context.Context,
	request model.AuthorizationRequest) *AuthorizationError {
	const description = "Unsupported response_type"

	if request.RedirectURI != "" && request.ClientID != "" {
		if _, err := uuid.Parse(request.ClientID); err == nil {
			app, authzErr := av.getClientApplication(ctx, request.ClientID)
			if authzErr != nil && authzErr.Outcome == OutcomeServerError {
				return authzErr
			}
			if authzErr == nil && app.IsRegisteredRedirectURI(request.RedirectURI) {
				return newRedirectError(constants.ErrorUnsupportedResponseType, description,
					request.RedirectURI, request.State)
			}
		}
	}
	return newBadRequestError(constants.ErrorUnsupportedResponseType, description)
}

func (av *AuthorizationValidator) getClientApplication(ctx context.Context,
	clientID string) (*appmodel.ClientApplication, *AuthorizationError) {
	app, svcErr := av.appService.GetClientApplication(ctx, clientID)
	if svcErr == nil {
		return app, nil
	}

	switch svcErr.Code {
	case appconstants.ErrorInvalidClientID.Code, appconstants.ErrorApplicationNotFound.Code:
		return nil, newBadRequestError(constants.ErrorInvalidClient, "Invalid client_id")
	default:
		return nil, newServerError("Failed to resolve the client application")
	}
}
