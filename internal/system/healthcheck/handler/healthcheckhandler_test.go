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

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/beacon/internal/system/healthcheck/model"
	"github.com/asgardeo/beacon/internal/system/healthcheck/service"
)

type HealthCheckHandlerTestSuite struct {
	suite.Suite
}

func TestHealthCheckHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckHandlerTestSuite))
}

func (suite *HealthCheckHandlerTestSuite) TestHandleLivenessRequest() {
	handler := NewHealthCheckHandler(service.NewHealthCheckService())
	rr := httptest.NewRecorder()

	handler.HandleLivenessRequest(rr, httptest.NewRequest(http.MethodGet, "/health/liveness", nil))

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
}

func (suite *HealthCheckHandlerTestSuite) TestHandleReadinessRequest() {
	testCases := []struct {
		name           string
		checkErr       error
		expectedCode   int
		expectedStatus model.Status
	}{
		{"Ready", nil, http.StatusOK, model.StatusUp},
		{"NotReady", errors.New("down"), http.StatusServiceUnavailable, model.StatusDown},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			handler := NewHealthCheckHandler(service.NewHealthCheckService(service.DependencyCheck{
				Name:  "IdentityDB",
				Check: func(context.Context) error { return tc.checkErr },
			}))
			rr := httptest.NewRecorder()

			handler.HandleReadinessRequest(rr, httptest.NewRequest(http.MethodGet, "/health/readiness", nil))

			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var status model.ServerStatus
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
			assert.Equal(t, tc.expectedStatus, status.Status)
		})
	}
}
