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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/asgardeo/beacon/internal/oauth/oauth2/constants"
	"github.com/asgardeo/beacon/internal/system/metrics"
)

type userInfoServiceMock struct {
	mock.Mock
}

func (m *userInfoServiceMock) ValidateBearerToken(headers http.Header) (string, *UserInfoError) {
	ret := m.Called(headers)
	var userInfoErr *UserInfoError
	if ret.Get(1) != nil {
		userInfoErr = ret.Get(1).(*UserInfoError)
	}
	return ret.String(0), userInfoErr
}

func (m *userInfoServiceMock) ResolveUserInfo(ctx context.Context,
	headers http.Header) (map[string]interface{}, *UserInfoError) {
	ret := m.Called(ctx, headers)
	var userClaims map[string]interface{}
	if ret.Get(0) != nil {
		userClaims = ret.Get(0).(map[string]interface{})
	}
	var userInfoErr *UserInfoError
	if ret.Get(1) != nil {
		userInfoErr = ret.Get(1).(*UserInfoError)
	}
	return userClaims, userInfoErr
}

func TestHandleUserInfoRequest(t *testing.T) {
	testCases := []struct {
		name          string
		claims        map[string]interface{}
		userInfoErr   *UserInfoError
		wantStatus    int
		wantError     string
		wantChallenge string
	}{
		{
			name:       "Success",
			claims:     map[string]interface{}{"roles": []string{"Editors"}},
			wantStatus: http.StatusOK,
		},
		{
			name:          "ExpiredToken",
			userInfoErr:   newUserInfoError(constants.ErrorExpiredToken, "expired", http.StatusUnauthorized),
			wantStatus:    http.StatusUnauthorized,
			wantError:     constants.ErrorExpiredToken,
			wantChallenge: `Bearer error="expired_token"`,
		},
		{
			name:          "InvalidToken",
			userInfoErr:   newUserInfoError(constants.ErrorInvalidToken, "invalid", http.StatusBadRequest),
			wantStatus:    http.StatusBadRequest,
			wantError:     constants.ErrorInvalidToken,
			wantChallenge: `Bearer error="invalid_token"`,
		},
		{
			name:        "InvalidRequest",
			userInfoErr: newUserInfoError(constants.ErrorInvalidRequest, "header", http.StatusBadRequest),
			wantStatus:  http.StatusBadRequest,
			wantError:   constants.ErrorInvalidRequest,
		},
		{
			name:        "ServerError",
			userInfoErr: newUserInfoError(constants.ErrorServerError, "failed", http.StatusInternalServerError),
			wantStatus:  http.StatusInternalServerError,
			wantError:   constants.ErrorServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := &userInfoServiceMock{}
			if tc.userInfoErr != nil {
				service.On("ResolveUserInfo", mock.Anything, mock.Anything).Return(nil, tc.userInfoErr)
			} else {
				service.On("ResolveUserInfo", mock.Anything, mock.Anything).Return(tc.claims, nil)
			}
			handler := NewUserInfoHandler(service, metrics.NewMetrics())

			req := httptest.NewRequest(http.MethodGet, "/oauth2/userinfo", nil)
			req.Header.Set("Authorization", "Bearer token")
			rr := httptest.NewRecorder()
			handler.HandleUserInfoRequest(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
			assert.Equal(t, tc.wantChallenge, rr.Header().Get("WWW-Authenticate"))

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			if tc.wantError != "" {
				assert.Equal(t, tc.wantError, body["error"])
			} else {
				assert.Equal(t, []interface{}{"Editors"}, body["roles"])
			}
			service.AssertExpectations(t)
		})
	}
}
