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

package services

import (
	"net/http"

	"github.com/asgardeo/beacon/internal/oauth/jwks"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/constants"
	"github.com/asgardeo/beacon/internal/system/middleware"
)

// JWKSAPIService defines the API service for handling JWKS requests.
type JWKSAPIService struct {
	jwksHandler    *jwks.JWKSHandler
	allowedOrigins []string
}

// NewJWKSAPIService creates a new instance of JWKSAPIService.
func NewJWKSAPIService(mux *http.ServeMux, jwksHandler *jwks.JWKSHandler, allowedOrigins []string) ServiceInterface {
	instance := &JWKSAPIService{
		jwksHandler:    jwksHandler,
		allowedOrigins: allowedOrigins,
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the JWKSAPIService.
func (s *JWKSAPIService) RegisterRoutes(mux *http.ServeMux) {
	opts := middleware.CORSOptions{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: "GET, OPTIONS",
		AllowedHeaders: "Content-Type",
	}
	registerWithCORS(mux, http.MethodGet, constants.OAuth2JWKSEndpoint, s.jwksHandler.HandleJWKSRequest, opts)
}
