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
	"errors"
	"strconv"
	"time"

	appmodel "github.com/asgardeo/beacon/internal/application/model"
	authzconstants "github.com/asgardeo/beacon/internal/oauth/oauth2/authz/constants"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/authz/model"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/authz/store"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/constants"
	"github.com/asgardeo/beacon/internal/system/config"
	"github.com/asgardeo/beacon/internal/system/crypto/secret"
	"github.com/asgardeo/beacon/internal/system/log"
	"github.com/asgardeo/beacon/internal/system/utils"
)

// ResponseIssuerInterface defines the interface for completing a pending authorization.
type ResponseIssuerInterface interface {
	IssueResponse(ctx context.Context, pending model.PendingAuthorization, app *appmodel.ClientApplication,
		userID string) (string, *AuthorizationError)
}

// ResponseIssuer grants pending authorizations and builds the redirect back to the client.
type ResponseIssuer struct {
	store          store.AuthorizationStoreInterface
	secretLength   int
	codeValidity   time.Duration
	generateSecret func(length int) (string, error)
	timeNow        func() time.Time
}

// NewResponseIssuer creates a new instance of ResponseIssuer.
func NewResponseIssuer(authzStore store.AuthorizationStoreInterface, oauth config.OAuthConfig) ResponseIssuerInterface {
	return &ResponseIssuer{
		store:          authzStore,
		secretLength:   oauth.SecretLength,
		codeValidity:   time.Duration(oauth.AuthorizationCode.ValidityPeriod) * time.Second,
		generateSecret: secret.GenerateDefault,
		timeNow:        time.Now,
	}
}

// IssueResponse grants the pending authorization to the user and returns the redirect carrying
// the authorization code or, for the token response type, the access token in the fragment.
func (ri *ResponseIssuer) IssueResponse(ctx context.Context, pending model.PendingAuthorization,
	app *appmodel.ClientApplication, userID string) (string, *AuthorizationError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ResponseIssuer"),
		log.String(log.LoggerKeyAuthorizationID, pending.ID))

	if pending.ResponseType != constants.ResponseTypeCode && pending.ResponseType != constants.ResponseTypeToken {
		return "", newBadRequestError(constants.ErrorUnsupportedResponseType, "Unsupported response_type")
	}
	if app.TokenExpiryMinutes <= 0 {
		logger.Error("Client application has no positive token lifetime",
			log.String(log.LoggerKeyClientID, pending.ClientID))
		return "", newServerError("Failed to issue the access token")
	}

	now := ri.timeNow()
	credentials := model.IssuedCredentials{
		ExpiryDate: now.Add(time.Duration(app.TokenExpiryMinutes) * time.Minute),
	}

	var err error
	if pending.ResponseType == constants.ResponseTypeCode {
		if credentials.Code, err = ri.generateSecret(ri.secretLength); err != nil {
			logger.Error("Failed to generate authorization code", log.Error(err))
			return "", newServerError("Failed to generate authorization code")
		}
		credentials.CodeExpiry = now.Add(ri.codeValidity)
	}
	if credentials.AccessToken, err = ri.generateSecret(ri.secretLength); err != nil {
		logger.Error("Failed to generate access token", log.Error(err))
		return "", newServerError("Failed to generate access token")
	}

	granted := pending.Grant(userID, credentials, now)
	if err := ri.store.GrantAuthorization(ctx, granted); err != nil {
		if errors.Is(err, authzconstants.ErrAuthorizationAlreadyGranted) ||
			errors.Is(err, authzconstants.ErrAuthorizationNotFound) {
			return "", newBadRequestError(constants.ErrorInvalidRequest, "The authorization request is no longer valid")
		}
		logger.Error("Failed to persist the granted authorization", log.Error(err))
		return "", newServerError("Failed to complete the authorization")
	}

	if pending.ResponseType == constants.ResponseTypeCode {
		return utils.AppendQueryParams(pending.RedirectURI,
			utils.QueryParam{Name: constants.RequestParamCode, Value: granted.Code},
			utils.QueryParam{Name: constants.RequestParamState, Value: pending.State},
		), nil
	}

	return utils.AppendFragmentParams(pending.RedirectURI,
		utils.QueryParam{Name: constants.ResponseParamAccessToken, Value: granted.AccessToken},
		utils.QueryParam{Name: constants.RequestParamState, Value: pending.State},
		utils.QueryParam{Name: constants.ResponseParamTokenType, Value: constants.TokenTypeBearerFragment},
		utils.QueryParam{Name: constants.RequestParamScope, Value: pending.Scope},
		utils.QueryParam{Name: constants.ResponseParamExpiresIn,
			Value: strconv.FormatInt(granted.MinutesRemaining(now), 10)},
	), nil
}
