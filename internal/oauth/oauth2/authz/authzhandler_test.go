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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/beacon/internal/authn/session"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/authz/model"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/constants"
	"github.com/asgardeo/beacon/internal/system/metrics"
	"github.com/asgardeo/beacon/tests/mocks/sessionmock"
)

type authorizationServiceMock struct {
	mock.Mock
}

func (m *authorizationServiceMock) InitiateAuthorization(ctx context.Context, request model.AuthorizationRequest,
	userID string) (*model.AuthorizationResult, *AuthorizationError) {
	ret := m.Called(ctx, request, userID)
	return resultArgs(ret)
}

func (m *authorizationServiceMock) CompleteAuthorization(ctx context.Context, pendingID,
	userID string) (*model.AuthorizationResult, *AuthorizationError) {
	ret := m.Called(ctx, pendingID, userID)
	return resultArgs(ret)
}

func (m *authorizationServiceMock) DeleteExpiredAuthorizations(ctx context.Context) (int64, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(int64), ret.Error(1)
}

func resultArgs(ret mock.Arguments) (*model.AuthorizationResult, *AuthorizationError) {
	var result *model.AuthorizationResult
	if ret.Get(0) != nil {
		result = ret.Get(0).(*model.AuthorizationResult)
	}
	var authzErr *AuthorizationError
	if ret.Get(1) != nil {
		authzErr = ret.Get(1).(*AuthorizationError)
	}
	return result, authzErr
}

type AuthorizeHandlerTestSuite struct {
	suite.Suite
	service  *authorizationServiceMock
	sessions *sessionmock.SessionResolverInterfaceMock
	mux      *http.ServeMux
}

func TestAuthorizeHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthorizeHandlerTestSuite))
}

func (suite *AuthorizeHandlerTestSuite) SetupTest() {
	suite.service = &authorizationServiceMock{}
	suite.sessions = sessionmock.NewSessionResolverInterfaceMock(suite.T())

	handler := NewAuthorizeHandler(suite.service, suite.sessions, metrics.NewMetrics())
	suite.mux = http.NewServeMux()
	suite.mux.HandleFunc("GET /oauth2/authorize", handler.HandleAuthorizeRequest)
	suite.mux.HandleFunc("GET /oauth2/respond/{id}", handler.HandleRespondRequest)
}

func (suite *AuthorizeHandlerTestSuite) TearDownTest() {
	suite.service.AssertExpectations(suite.T())
}

func (suite *AuthorizeHandlerTestSuite) serve(target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func (suite *AuthorizeHandlerTestSuite) TestHandleAuthorizeRequest_LoginRedirect() {
	expectedRequest := model.AuthorizationRequest{
		ResponseType: constants.ResponseTypeCode,
		ClientID:     testClientID,
		RedirectURI:  testRedirectURI,
		Scope:        "profile",
		State:        "a b",
	}
	suite.sessions.On("GetAuthenticatedUserID", mock.Anything).Return("", session.ErrNotAuthenticated)
	suite.service.On("InitiateAuthorization", mock.Anything, expectedRequest, "").Return(
		&model.AuthorizationResult{RedirectURL: "/login?returnUrl=/oauth2/respond/p1", LoginRequired: true}, nil)

	rr := suite.serve("/oauth2/authorize?response_type=code&client_id=" + testClientID +
		"&redirect_uri=https%3A%2F%2Fclient.example.com%2Fcallback&scope=profile&state=a+b")

	assert.Equal(suite.T(), http.StatusFound, rr.Code)
	assert.Equal(suite.T(), "/login?returnUrl=/oauth2/respond/p1", rr.Header().Get("Location"))
}

func (suite *AuthorizeHandlerTestSuite) TestHandleAuthorizeRequest_AuthenticatedUser() {
	suite.sessions.On("GetAuthenticatedUserID", mock.Anything).Return(testUserID, nil)
	suite.service.On("InitiateAuthorization", mock.Anything, mock.Anything, testUserID).Return(
		&model.AuthorizationResult{RedirectURL: testRedirectURI + "?code=c&state=s",
			ResponseType: constants.ResponseTypeCode}, nil)

	rr := suite.serve("/oauth2/authorize?response_type=code")

	assert.Equal(suite.T(), http.StatusFound, rr.Code)
	assert.Equal(suite.T(), testRedirectURI+"?code=c&state=s", rr.Header().Get("Location"))
}

func (suite *AuthorizeHandlerTestSuite) TestHandleAuthorizeRequest_Errors() {
	testCases := []struct {
		name         string
		authzErr     *AuthorizationError
		wantStatus   int
		wantLocation string
		wantError    string
	}{
		{
			name:         "Redirect",
			authzErr:     newRedirectError(constants.ErrorInvalidScope, "bad scope", testRedirectURI, "s"),
			wantStatus:   http.StatusFound,
			wantLocation: testRedirectURI + "?state=s&error=invalid_scope",
		},
		{
			name:       "BadRequest",
			authzErr:   newBadRequestError(constants.ErrorInvalidClient, "Invalid client_id"),
			wantStatus: http.StatusBadRequest,
			wantError:  constants.ErrorInvalidClient,
		},
		{
			name:       "ServerError",
			authzErr:   newServerError("internal detail"),
			wantStatus: http.StatusInternalServerError,
			wantError:  constants.ErrorServerError,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.sessions.On("GetAuthenticatedUserID", mock.Anything).Return("", session.ErrNotAuthenticated).Once()
			suite.service.On("InitiateAuthorization", mock.Anything, mock.Anything, "").Return(nil, tc.authzErr).Once()

			rr := suite.serve("/oauth2/authorize")

			assert.Equal(suite.T(), tc.wantStatus, rr.Code)
			if tc.wantLocation != "" {
				assert.Equal(suite.T(), tc.wantLocation, rr.Header().Get("Location"))
				return
			}
			assert.Empty(suite.T(), rr.Header().Get("Location"))
			var body map[string]string
			require.NoError(suite.T(), json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(suite.T(), tc.wantError, body["error"])
			assert.NotContains(suite.T(), body["error_description"], "internal detail")
		})
	}
}

func (suite *AuthorizeHandlerTestSuite) TestHandleRespondRequest() {
	suite.sessions.On("GetAuthenticatedUserID", mock.Anything).Return(testUserID, nil)
	suite.service.On("CompleteAuthorization", mock.Anything, "p-42", testUserID).Return(
		&model.AuthorizationResult{RedirectURL: testRedirectURI + "#access_token=t",
			ResponseType: constants.ResponseTypeToken}, nil)

	rr := suite.serve("/oauth2/respond/p-42")

	assert.Equal(suite.T(), http.StatusFound, rr.Code)
	assert.Equal(suite.T(), testRedirectURI+"#access_token=t", rr.Header().Get("Location"))
}

func (suite *AuthorizeHandlerTestSuite) TestHandleRespondRequest_UnknownAuthorization() {
	suite.sessions.On("GetAuthenticatedUserID", mock.Anything).Return(testUserID, nil)
	suite.service.On("CompleteAuthorization", mock.Anything, "gone", testUserID).Return(nil,
		newBadRequestError(constants.ErrorInvalidRequest, "Unknown or completed authorization"))

	rr := suite.serve("/oauth2/respond/gone")

	assert.Equal(suite.T(), http.StatusBadRequest, rr.Code)
	assert.Contains(suite.T(), rr.Body.String(), constants.ErrorInvalidRequest)
}
