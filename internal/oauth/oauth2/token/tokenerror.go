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

package token

import (
	"net/http"

	"github.com/asgardeo/beacon/internal/oauth/oauth2/constants"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/model"
	"github.com/asgardeo/beacon/internal/system/utils"
)

// TokenError is a token endpoint failure. A non-empty RedirectURI means the error is delivered
// as a redirect to that registered URI instead of a JSON body.
type TokenError struct {
	model.ErrorResponse
	StatusCode  int
	RedirectURI string
}

// RedirectURL returns the redirect URI with the error code appended to its query.
func (e *TokenError) RedirectURL() string {
	return utils.AppendQueryParams(e.RedirectURI,
		utils.QueryParam{Name: constants.RequestParamError, Value: e.Error})
}

func newTokenError(code, description string, statusCode int) *TokenError {
	return &TokenError{
		ErrorResponse: model.ErrorResponse{Error: code, ErrorDescription: description},
		StatusCode:    statusCode,
	}
}

func newServerError(description string) *TokenError {
	return newTokenError(constants.ErrorServerError, description, http.StatusInternalServerError)
}
