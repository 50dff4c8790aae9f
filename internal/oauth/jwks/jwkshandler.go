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

// Package jwks publishes the key set clients use to verify identity tokens.
package jwks

import (
	"net/http"

	serverconst "github.com/asgardeo/beacon/internal/system/constants"
	"github.com/asgardeo/beacon/internal/system/jwt"
	"github.com/asgardeo/beacon/internal/system/log"
	"github.com/asgardeo/beacon/internal/system/utils"
)

// JWKSHandler handles requests for the JSON Web Key Set.
type JWKSHandler struct {
	jwtService jwt.JWTServiceInterface
}

// NewJWKSHandler creates a new instance of JWKSHandler.
func NewJWKSHandler(jwtService jwt.JWTServiceInterface) *JWKSHandler {
	return &JWKSHandler{
		jwtService: jwtService,
	}
}

// HandleJWKSRequest handles GET /oauth2/jwks.
func (h *JWKSHandler) HandleJWKSRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "JWKSHandler"))

	keySet := h.jwtService.GetJWKS()
	if len(keySet.Keys) == 0 {
		logger.Error("No signing key available to publish")
	}

	utils.WriteJSON(w, http.StatusOK, keySet, []map[string]string{
		{serverconst.CacheControlHeaderName: "public, max-age=3600"},
	})
}
