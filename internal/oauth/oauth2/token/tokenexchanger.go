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

// Package token implements the OAuth2 token endpoint redeeming authorization codes.
package token

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	appconstants "github.com/asgardeo/beacon/internal/application/constants"
	appmodel "github.com/asgardeo/beacon/internal/application/model"
	appservice "github.com/asgardeo/beacon/internal/application/service"
	"github.com/asgardeo/beacon/internal/oauth/claims"
	authzconstants "github.com/asgardeo/beacon/internal/oauth/oauth2/authz/constants"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/authz/store"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/constants"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/model"
	"github.com/asgardeo/beacon/internal/system/config"
	"github.com/asgardeo/beacon/internal/system/jwt"
	"github.com/asgardeo/beacon/internal/system/log"
	userservice "github.com/asgardeo/beacon/internal/user/service"
)

// TokenExchangerInterface defines the interface for redeeming authorization codes.
type TokenExchangerInterface interface {
	ExchangeAuthorizationCode(ctx context.Context, request model.TokenRequest) (*model.TokenResponse, *TokenError)
}

// TokenExchanger redeems authorization codes for access tokens.
type TokenExchanger struct {
	appService      appservice.ApplicationServiceInterface
	authzStore      store.AuthorizationStoreInterface
	userService     userservice.UserServiceInterface
	jwtService      jwt.JWTServiceInterface
	site            config.SiteConfig
	idTokenValidity int64
	timeNow         func() time.Time
}

// NewTokenExchanger creates a new instance of TokenExchanger.
func NewTokenExchanger(appService appservice.ApplicationServiceInterface, authzStore store.AuthorizationStoreInterface,
	userService userservice.UserServiceInterface, jwtService jwt.JWTServiceInterface, site config.SiteConfig,
	oauth config.OAuthConfig) TokenExchangerInterface {
	return &TokenExchanger{
		appService:      appService,
		authzStore:      authzStore,
		userService:     userService,
		jwtService:      jwtService,
		site:            site,
		idTokenValidity: oauth.IDToken.ValidityPeriod,
		timeNow:         time.Now,
	}
}

// ExchangeAuthorizationCode validates the request against the stored authorization, redeems the
// code and returns the access token together with a signed identity token of the user.
func (te *TokenExchanger) ExchangeAuthorizationCode(ctx context.Context,
	request model.TokenRequest) (*model.TokenResponse, *TokenError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "TokenExchanger"),
		log.String(log.LoggerKeyClientID, request.ClientID))

	if request.GrantType != constants.GrantTypeAuthorizationCode {
		tokenErr := newTokenError(constants.ErrorUnsupportedGrantType, "Unsupported grant_type",
			http.StatusBadRequest)
		if app, _ := te.getClientApplication(ctx, request.ClientID); app != nil {
			tokenErr.RedirectURI = trustedRedirectURI(app, request.RedirectURI)
		}
		return nil, tokenErr
	}

	app, tokenErr := te.getClientApplication(ctx, request.ClientID)
	if tokenErr != nil {
		return nil, tokenErr
	}

	now := te.timeNow()
	invalidCode := func() *TokenError {
		tokenErr := newTokenError(constants.ErrorInvalidAuthorizationCode, "Invalid authorization code",
			http.StatusBadRequest)
		tokenErr.RedirectURI = trustedRedirectURI(app, request.RedirectURI)
		return tokenErr
	}

	if request.Code == "" {
		return nil, invalidCode()
	}
	granted, err := te.authzStore.GetAuthorizationByCode(ctx, request.Code)
	if err != nil {
		if errors.Is(err, authzconstants.ErrAuthorizationNotFound) {
			logger.Debug("Authorization code not found", log.String("code", log.MaskString(request.Code)))
			return nil, invalidCode()
		}
		logger.Error("Failed to load the authorization by code", log.Error(err))
		return nil, newServerError("Failed to process the token request")
	}
	if !granted.IsCodeRedeemable(now) || granted.IsExpired(now) {
		logger.Debug("Authorization code is no longer redeemable",
			log.String(log.LoggerKeyAuthorizationID, granted.ID))
		return nil, invalidCode()
	}

	if granted.RedirectURI != request.RedirectURI {
		return nil, newTokenError(constants.ErrorInvalidRequest,
			"The redirect_uri does not match the authorization request", http.StatusBadRequest)
	}
	if storedClientID, err := uuid.Parse(granted.ClientID); err != nil || storedClientID != app.ClientID {
		logger.Warn("Authorization code presented by another client",
			log.String(log.LoggerKeyAuthorizationID, granted.ID))
		return nil, newTokenError(constants.ErrorInvalidClient, "Invalid client_id", http.StatusBadRequest)
	}
	if !app.IsAllowedScope(granted.Scope) {
		tokenErr := newTokenError(constants.ErrorInvalidScope, "The granted scope is no longer allowed",
			http.StatusBadRequest)
		tokenErr.RedirectURI = trustedRedirectURI(app, request.RedirectURI)
		return nil, tokenErr
	}

	if err := te.authzStore.RedeemAuthorizationCode(ctx, request.Code); err != nil {
		if errors.Is(err, authzconstants.ErrCodeAlreadyRedeemed) ||
			errors.Is(err, authzconstants.ErrAuthorizationNotFound) {
			logger.Warn("Authorization code replayed", log.String(log.LoggerKeyAuthorizationID, granted.ID))
			return nil, invalidCode()
		}
		logger.Error("Failed to redeem the authorization code", log.Error(err))
		return nil, newServerError("Failed to process the token request")
	}

	user, svcErr := te.userService.GetUser(ctx, te.site.ID, granted.UserID)
	if svcErr != nil {
		if svcErr.IsClientError() {
			return nil, newTokenError(constants.ErrorInvalidRequest, "The authorized user no longer exists",
				http.StatusBadRequest)
		}
		return nil, newServerError("Failed to process the token request")
	}

	tokenID, _, err := te.jwtService.GenerateJWT(user.ID, request.ClientID, te.site.CanonicalHost,
		te.idTokenValidity, claims.BuildClaims(user))
	if err != nil {
		logger.Error("Failed to sign the identity token", log.Error(err))
		return nil, newServerError("Failed to process the token request")
	}

	logger.Debug("Authorization code redeemed", log.String(log.LoggerKeyAuthorizationID, granted.ID))
	return &model.TokenResponse{
		AccessToken: granted.AccessToken,
		TokenType:   constants.TokenTypeBearer,
		ExpiresIn:   granted.MinutesRemaining(now),
		TokenID:     tokenID,
	}, nil
}

func (te *TokenExchanger) getClientApplication(ctx context.Context,
	clientID string) (*appmodel.ClientApplication, *TokenError) {
	if _, err := uuid.Parse(clientID); err != nil {
		return nil, newTokenError(constants.ErrorInvalidClient, "Invalid client_id", http.StatusBadRequest)
	}

	app, svcErr := te.appService.GetClientApplication(ctx, clientID)
	if svcErr == nil {
		return app, nil
	}
	switch svcErr.Code {
	case appconstants.ErrorInvalidClientID.Code, appconstants.ErrorApplicationNotFound.Code:
		return nil, newTokenError(constants.ErrorInvalidClient, "Invalid client_id", http.StatusBadRequest)
	default:
		return nil, newServerError("Failed to resolve the client application")
	}
}

// trustedRedirectURI returns the redirect URI when it is registered for the client, or an empty
// string so that the error is written as a JSON body.
func trustedRedirectURI(app *appmodel.ClientApplication, redirectURI string) string {
	if redirectURI != "" && app.IsRegisteredRedirectURI(redirectURI) {
		return redirectURI
	}
	return ""
}
