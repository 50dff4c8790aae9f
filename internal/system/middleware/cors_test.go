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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CORSTestSuite struct {
	suite.Suite
}

func TestCORSSuite(t *testing.T) {
	suite.Run(t, new(CORSTestSuite))
}

func (suite *CORSTestSuite) TestWithCORS() {
	opts := CORSOptions{
		AllowedOrigins:   []string{"https://app.example.com"},
		AllowedMethods:   "GET, OPTIONS",
		AllowedHeaders:   "Authorization",
		ExposedHeaders:   "WWW-Authenticate",
		AllowCredentials: true,
		MaxAge:           600,
	}

	testCases := []struct {
		name              string
		method            string
		origin            string
		expectedOrigin    string
		expectedMethods   string
		expectedMaxAge    string
		expectedExposed   string
		expectCredentials bool
	}{
		{
			name:              "AllowedOrigin",
			method:            http.MethodGet,
			origin:            "https://app.example.com",
			expectedOrigin:    "https://app.example.com",
			expectedExposed:   "WWW-Authenticate",
			expectCredentials: true,
		},
		{
			name:              "Preflight",
			method:            http.MethodOptions,
			origin:            "https://app.example.com",
			expectedOrigin:    "https://app.example.com",
			expectedMethods:   "GET, OPTIONS",
			expectedMaxAge:    "600",
			expectedExposed:   "WWW-Authenticate",
			expectCredentials: true,
		},
		{name: "DisallowedOrigin", method: http.MethodOptions, origin: "https://evil.example.com"},
		{name: "NoOrigin", method: http.MethodGet},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			called := false
			pattern, handler := WithCORS("GET /oauth2/userinfo", func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}, opts)
			assert.Equal(t, "GET /oauth2/userinfo", pattern)

			req := httptest.NewRequest(tc.method, "/oauth2/userinfo", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.True(t, called)
			assert.Equal(t, "Origin", rr.Header().Get("Vary"))
			assert.Equal(t, tc.expectedOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tc.expectedMethods, rr.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, tc.expectedMaxAge, rr.Header().Get("Access-Control-Max-Age"))
			assert.Equal(t, tc.expectedExposed, rr.Header().Get("Access-Control-Expose-Headers"))
			if tc.expectCredentials {
				assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Credentials"))
			}
			if tc.expectedMethods != "" {
				assert.Equal(t, "Authorization", rr.Header().Get("Access-Control-Allow-Headers"))
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Headers"))
			}
		})
	}
}
