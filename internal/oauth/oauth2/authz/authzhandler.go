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
	"errors"
	"net/http"

	"github.com/asgardeo/beacon/internal/authn/session"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/authz/model"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/constants"
	"github.com/asgardeo/beacon/internal/system/log"
	"github.com/asgardeo/beacon/internal/system/metrics"
	"github.com/asgardeo/beacon/internal/system/utils"
)

// AuthorizeHandlerInterface defines the interface for the authorize and respond endpoints.
type AuthorizeHandlerInterface interface {
	HandleAuthorizeRequest(w http.ResponseWriter, r *http.Request)
	HandleRespondRequest(w http.ResponseWriter, r *http.Request)
}

// AuthorizeHandler handles OAuth2 authorization requests.
type AuthorizeHandler struct {
	authzService    AuthorizationServiceInterface
	sessionResolver session.SessionResolverInterface
	metrics         *metrics.Metrics
}

// NewAuthorizeHandler creates a new instance of AuthorizeHandler.
func NewAuthorizeHandler(authzService AuthorizationServiceInterface, sessionResolver session.SessionResolverInterface,
	m *metrics.Metrics) AuthorizeHandlerInterface {
	return &AuthorizeHandler{
		authzService:    authzService,
		sessionResolver: sessionResolver,
		metrics:         m,
	}
}

// HandleAuthorizeRequest handles GET /oauth2/authorize.
func (ah *AuthorizeHandler) HandleAuthorizeRequest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := model.AuthorizationRequest{
		ResponseType: query.Get(constants.RequestParamResponseType),
		ClientID:     query.Get(constants.RequestParamClientID),
		RedirectURI:  query.Get(constants.RequestParamRedirectURI),
		Scope:        query.Get(constants.RequestParamScope),
		State:        query.Get(constants.RequestParamState),
	}

	result, authzErr := ah.authzService.InitiateAuthorization(r.Context(), request, ah.getUserID(r))
	ah.writeResult(w, r, result, authzErr)
}

// HandleRespondRequest handles GET /oauth2/respond/{id}, the return point of the login flow.
func (ah *AuthorizeHandler) HandleRespondRequest(w http.ResponseWriter, r *http.Request) {
	result, authzErr := ah.authzService.CompleteAuthorization(r.Context(), r.PathValue("id"), ah.getUserID(r))
	ah.writeResult(w, r, result, authzErr)
}

func (ah *AuthorizeHandler) getUserID(r *http.Request) string {
	userID, err := ah.sessionResolver.GetAuthenticatedUserID(r)
	if err != nil {
		if !errors.Is(err, session.ErrNotAuthenticated) {
			log.GetLogger().Error("Failed to resolve the site session", log.Error(err))
		}
		return ""
	}
	return userID
}

func (ah *AuthorizeHandler) writeResult(w http.ResponseWriter, r *http.Request, result *model.AuthorizationResult,
	authzErr *AuthorizationError) {
	if authzErr != nil {
		switch authzErr.Outcome {
		case OutcomeRedirect:
			ah.metrics.RecordAuthorizationRequest(metrics.OutcomeRedirectError)
			http.Redirect(w, r, authzErr.RedirectURL(), http.StatusFound)
		case OutcomeBadRequest:
			ah.metrics.RecordAuthorizationRequest(metrics.OutcomeClientError)
			utils.WriteJSONError(w, authzErr.Error, authzErr.ErrorDescription, http.StatusBadRequest, nil)
		default:
			ah.metrics.RecordAuthorizationRequest(metrics.OutcomeServerError)
			utils.WriteJSONError(w, constants.ErrorServerError, "Failed to process the authorization request",
				http.StatusInternalServerError, nil)
		}
		return
	}

	if result.LoginRequired {
		ah.metrics.RecordAuthorizationRequest(metrics.OutcomeLoginRequired)
	} else {
		ah.metrics.RecordAuthorizationRequest(metrics.OutcomeSuccess)
		ah.metrics.RecordTokenIssued(result.ResponseType)
	}
	http.Redirect(w, r, result.RedirectURL, http.StatusFound)
}
