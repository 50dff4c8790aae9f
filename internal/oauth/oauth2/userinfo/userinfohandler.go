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

package userinfo

import (
	"net/http"

	"github.com/asgardeo/beacon/internal/oauth/oauth2/constants"
	serverconst "github.com/asgardeo/beacon/internal/system/constants"
	"github.com/asgardeo/beacon/internal/system/metrics"
	"github.com/asgardeo/beacon/internal/system/utils"
)

// UserInfoHandlerInterface defines the interface for handling user info requests.
type UserInfoHandlerInterface interface {
	HandleUserInfoRequest(w http.ResponseWriter, r *http.Request)
}

// UserInfoHandler handles GET /oauth2/userinfo.
type UserInfoHandler struct {
	service UserInfoServiceInterface
	metrics *metrics.Metrics
}

// NewUserInfoHandler creates a new instance of UserInfoHandler.
func NewUserInfoHandler(service UserInfoServiceInterface, m *metrics.Metrics) UserInfoHandlerInterface {
	return &UserInfoHandler{
		service: service,
		metrics: m,
	}
}

// HandleUserInfoRequest returns the claims of the bearer token's user as a flat JSON object.
func (h *UserInfoHandler) HandleUserInfoRequest(w http.ResponseWriter, r *http.Request) {
	noCache := []map[string]string{
		{serverconst.CacheControlHeaderName: "no-store"},
		{serverconst.PragmaHeaderName: "no-cache"},
	}

	userClaims, userInfoErr := h.service.ResolveUserInfo(r.Context(), r.Header)
	if userInfoErr != nil {
		headers := noCache
		switch {
		case userInfoErr.StatusCode >= http.StatusInternalServerError:
			h.metrics.RecordUserInfoRequest(metrics.OutcomeServerError)
		default:
			h.metrics.RecordUserInfoRequest(metrics.OutcomeClientError)
			if userInfoErr.Error == constants.ErrorInvalidToken || userInfoErr.Error == constants.ErrorExpiredToken {
				headers = append(headers, map[string]string{
					"WWW-Authenticate": `Bearer error="` + userInfoErr.Error + `"`,
				})
			}
		}
		utils.WriteJSONError(w, userInfoErr.Error, userInfoErr.ErrorDescription, userInfoErr.StatusCode, headers)
		return
	}

	h.metrics.RecordUserInfoRequest(metrics.OutcomeSuccess)
	utils.WriteJSON(w, http.StatusOK, userClaims, noCache)
}
