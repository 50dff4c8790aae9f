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

package jwks

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asgardeo/beacon/internal/system/jwt"
	"github.com/asgardeo/beacon/tests/mocks/jwtmock"
)

func TestHandleJWKSRequest(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	handler := NewJWKSHandler(jwt.NewJWTService(key, "kid-1"))

	rr := httptest.NewRecorder()
	handler.HandleJWKSRequest(rr, httptest.NewRequest(http.MethodGet, "/oauth2/jwks", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var keySet jwt.JWKS
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&keySet))
	require.Len(t, keySet.Keys, 1)
	assert.Equal(t, "kid-1", keySet.Keys[0].Kid)
	assert.Equal(t, "RS256", keySet.Keys[0].Alg)
	assert.Equal(t, "AQAB", keySet.Keys[0].E)
}

func TestHandleJWKSRequest_NoKey(t *testing.T) {
	jwtService := jwtmock.NewJWTServiceInterfaceMock(t)
	jwtService.On("GetJWKS").Return(jwt.JWKS{Keys: []jwt.JWK{}})

	rr := httptest.NewRecorder()
	NewJWKSHandler(jwtService).HandleJWKSRequest(rr, httptest.NewRequest(http.MethodGet, "/oauth2/jwks", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"keys":[]}`, rr.Body.String())
}
