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
	serverconst "github.com/asgardeo/beacon/internal/system/constants"
	"github.com/asgardeo/beacon/internal/system/metrics"
	"github.com/asgardeo/beacon/internal/system/utils"
)

// TokenHandlerInterface defines the interface for handling OAuth2 token requests.
type TokenHandlerInterface interface {
	HandleTokenRequest(w http.ResponseWriter, r *http.Request)
}

// TokenHandler handles POST /oauth2/token.
type TokenHandler struct {
	exchanger TokenExchangerInterface
	metrics   *metrics.Metrics
}

// NewTokenHandler creates a new instance of TokenHandler.
func NewTokenHandler(exchanger TokenExchangerInterface, m *metrics.Metrics) TokenHandlerInterface {
	return &TokenHandler{
		exchanger: exchanger,
		metrics:   m,
	}
}

// HandleTokenRequest handles the token request for the authorization code grant.
func (th *TokenHandler) HandleTokenRequest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		th.metrics.RecordTokenRequest(metrics.OutcomeClientError)
		utils.WriteJSONError(w, constants.ErrorInvalidRequest, "Failed to parse request body",
			http.StatusBadRequest, nil)
		return
	}

	request := model.TokenRequest{
		GrantType:   r.FormValue(constants.RequestParamGrantType),
		ClientID:    r.FormValue(constants.RequestParamClientID),
		Code:        r.FormValue(constants.RequestParamCode),
		RedirectURI: r.FormValue(constants.RequestParamRedirectURI),
	}

	response, tokenErr := th.exchanger.ExchangeAuthorizationCode(r.Context(), request)
	if tokenErr != nil {
		switch {
		case tokenErr.RedirectURI != "":
			th.metrics.RecordTokenRequest(metrics.OutcomeRedirectError)
			http.Redirect(w, r, tokenErr.RedirectURL(), http.StatusFound)
		case tokenErr.StatusCode >= http.StatusInternalServerError:
			th.metrics.RecordTokenRequest(metrics.OutcomeServerError)
			utils.WriteJSONError(w, tokenErr.Error, tokenErr.ErrorDescription, tokenErr.StatusCode, nil)
		default:
			th.metrics.RecordTokenRequest(metrics.OutcomeClientError)
			utils.WriteJSONError(w, tokenErr.Error, tokenErr.ErrorDescription, tokenErr.StatusCode, nil)
		}
		return
	}

	th.metrics.RecordTokenRequest(metrics.OutcomeSuccess)
	utils.WriteJSON(w, http.StatusOK, response, []map[string]string{
		{serverconst.CacheControlHeaderName: "no-store"},
		{serverconst.PragmaHeaderName: "no-cache"},
	})
}
