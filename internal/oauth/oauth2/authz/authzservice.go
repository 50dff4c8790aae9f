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

// Package authz implements the OAuth2 authorization endpoint: request validation, the login
// redirect of unauthenticated users and the issuing of codes and implicit tokens.
package authz

import (
	"context"
	"errors"
	"time"

	appmodel "github.com/asgardeo/beacon/internal/application/model"
	appservice "github.com/asgardeo/beacon/internal/application/service"
	authzconstants "github.com/asgardeo/beacon/internal/oauth/oauth2/authz/constants"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/authz/model"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/authz/store"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/constants"
	"github.com/asgardeo/beacon/internal/system/config"
	"github.com/asgardeo/beacon/internal/system/log"
	"github.com/asgardeo/beacon/internal/system/utils"
)

// AuthorizationServiceInterface defines the interface for running the authorization flow.
type AuthorizationServiceInterface interface {
	InitiateAuthorization(ctx context.Context, request model.AuthorizationRequest,
		userID string) (*model.AuthorizationResult, *AuthorizationError)
	CompleteAuthorization(ctx context.Context, pendingID, userID string) (*model.AuthorizationResult,
		*AuthorizationError)
	DeleteExpiredAuthorizations(ctx context.Context) (int64, error)
}

// AuthorizationService is the default implementation of the AuthorizationServiceInterface.
type AuthorizationService struct {
	validator       AuthorizationValidatorInterface
	issuer          ResponseIssuerInterface
	appService      appservice.ApplicationServiceInterface
	store           store.AuthorizationStoreInterface
	site            config.SiteConfig
	pendingValidity time.Duration
	timeNow         func() time.Time
}

// NewAuthorizationService creates a new instance of AuthorizationService.
func NewAuthorizationService(validator AuthorizationValidatorInterface, issuer ResponseIssuerInterface,
	appService appservice.ApplicationServiceInterface, authzStore store.AuthorizationStoreInterface,
	site config.SiteConfig, oauth config.OAuthConfig) AuthorizationServiceInterface {
	return &AuthorizationService{
		validator:       validator,
		issuer:          issuer,
		appService:      appService,
		store:           authzStore,
		site:            site,
		pendingValidity: time.Duration(oauth.PendingAuthorization.ValidityPeriod) * time.Second,
		timeNow:         time.Now,
	}
}

// InitiateAuthorization validates the request and records a pending authorization. An
// authenticated user is answered right away; anyone else is sent to the login page.
func (as *AuthorizationService) InitiateAuthorization(ctx context.Context, request model.AuthorizationRequest,
	userID string) (*model.AuthorizationResult, *AuthorizationError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "AuthorizationService"))

	app, authzErr := as.validator.ValidateAuthorizationRequest(ctx, request)
	if authzErr != nil {
		return nil, authzErr
	}

	pending := model.PendingAuthorization{
		ID:           utils.GenerateUUID(),
		ClientID:     request.ClientID,
		Scope:        request.Scope,
		RedirectURI:  request.RedirectURI,
		ResponseType: request.ResponseType,
		State:        request.State,
		CreatedAt:    as.timeNow(),
	}
	if err := as.store.CreatePendingAuthorization(ctx, pending); err != nil {
		logger.Error("Failed to store the pending authorization", log.Error(err))
		return nil, newServerError("Failed to process the authorization request")
	}
	logger.Debug("Pending authorization created", log.String(log.LoggerKeyAuthorizationID, pending.ID),
		log.String(log.LoggerKeyClientID, pending.ClientID))

	return as.respond(ctx, pending, app, userID)
}

// CompleteAuthorization continues a pending authorization once the login flow returns.
func (as *AuthorizationService) CompleteAuthorization(ctx context.Context, pendingID,
	userID string) (*model.AuthorizationResult, *AuthorizationError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "AuthorizationService"),
		log.String(log.LoggerKeyAuthorizationID, pendingID))

	if pendingID == "" {
		return nil, newBadRequestError(constants.ErrorInvalidRequest, "Missing authorization id")
	}

	pending, err := as.store.GetPendingAuthorization(ctx, pendingID)
	if err != nil {
		if errors.Is(err, authzconstants.ErrAuthorizationNotFound) ||
			errors.Is(err, authzconstants.ErrAuthorizationAlreadyGranted) {
			return nil, newBadRequestError(constants.ErrorInvalidRequest, "Unknown or completed authorization")
		}
		logger.Error("Failed to load the pending authorization", log.Error(err))
		return nil, newServerError("Failed to process the authorization request")
	}
	if pending.IsExpired(as.timeNow(), as.pendingValidity) {
		return nil, newBadRequestError(constants.ErrorInvalidRequest, "The authorization request has expired")
	}

	app, svcErr := as.appService.GetClientApplication(ctx, pending.ClientID)
	if svcErr != nil {
		if svcErr.IsClientError() {
			return nil, newBadRequestError(constants.ErrorInvalidClient, "Invalid client_id")
		}
		return nil, newServerError("Failed to resolve the client application")
	}

	return as.respond(ctx, pending, app, userID)
}

// DeleteExpiredAuthorizations removes pending authorizations past their validity period and
// granted authorizations past the retention of their expired access token.
func (as *AuthorizationService) DeleteExpiredAuthorizations(ctx context.Context) (int64, error) {
	now := as.timeNow()
	return as.store.DeleteExpiredAuthorizations(ctx, now.Add(-as.pendingValidity),
		now.Add(-authzconstants.ExpiredAuthorizationRetention))
}

func (as *AuthorizationService) respond(ctx context.Context, pending model.PendingAuthorization,
	app *appmodel.ClientApplication, userID string) (*model.AuthorizationResult, *AuthorizationError) {
	if userID == "" {
		return &model.AuthorizationResult{
			RedirectURL:   BuildLoginRedirectURL(app, as.site, pending.ID),
			LoginRequired: true,
			ResponseType:  pending.ResponseType,
		}, nil
	}

	redirectURL, authzErr := as.issuer.IssueResponse(ctx, pending, app, userID)
	if authzErr != nil {
		return nil, authzErr
	}
	return &model.AuthorizationResult{
		RedirectURL:  redirectURL,
		ResponseType: pending.ResponseType,
	}, nil
}
