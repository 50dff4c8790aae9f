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
	"github.com/asgardeo/beacon/internal/oauth/oauth2/constants"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/model"
	"github.com/asgardeo/beacon/internal/system/utils"
)

// ErrorOutcome tells how an authorization error is delivered.
type ErrorOutcome int

const (
	// OutcomeBadRequest delivers the error as a 400 JSON response. It is used whenever the
	// redirect URI cannot be trusted.
	OutcomeBadRequest ErrorOutcome = iota
	// OutcomeRedirect delivers the error to the trusted redirect URI of the client.
	OutcomeRedirect
	// OutcomeServerError delivers a generic 500 response.
	OutcomeServerError
)

// AuthorizationError is an authorization failure together with the way it must be delivered.
type AuthorizationError struct {
	model.ErrorResponse
	Outcome     ErrorOutcome
	RedirectURI string
	State       string
}

// RedirectURL returns the redirect URI with the error appended as {uri}{?|&}state={state}&error={code}.
// The state is left out when the request carried none.
func (e *AuthorizationError) RedirectURL() string {
	params := make([]utils.QueryParam, 0, 2)
	if e.State != "" {
		params = append(params, utils.QueryParam{Name: constants.RequestParamState, Value: e.State})
	}
	params = append(params, utils.QueryParam{Name: constants.RequestParamError, Value: e.Error})
	return utils.AppendQueryParams(e.RedirectURI, params...)
}

func newBadRequestError(code, description string) *AuthorizationError {
	return &AuthorizationError{
		ErrorResponse: model.ErrorResponse{Error: code, ErrorDescription: description},
		Outcome:       OutcomeBadRequest,
	}
}

func newRedirectError(code, description, redirectURI, state string) *AuthorizationError {
	return &AuthorizationError{
		ErrorResponse: model.ErrorResponse{Error: code, ErrorDescription: description},
		Outcome:       OutcomeRedirect,
		RedirectURI:   redirectURI,
		State:         state,
	}
}

func newServerError(description string) *AuthorizationError {
	return &AuthorizationError{
		ErrorResponse: model.ErrorResponse{Error: constants.ErrorServerError, ErrorDescription: description},
		Outcome:       OutcomeServerError,
	}
}
