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

	"github.com/asgardeo/beacon/internal/oauth/oauth2/constants"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/userinfo"
	"github.com/asgardeo/beacon/internal/system/middleware"
)

// UserInfoService defines the service for handling OAuth2 user info requests.
type UserInfoService struct {
	userInfoHandler userinfo.UserInfoHandlerInterface
	allowedOrigins  []string
}

// NewUserInfoService creates a new instance of UserInfoService.
func NewUserInfoService(mux *http.ServeMux, userInfoHandler userinfo.UserInfoHandlerInterface,
	allowedOrigins []string) ServiceInterface {
	instance := &UserInfoService{
		userInfoHandler: userInfoHandler,
		allowedOrigins:  allowedOrigins,
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the UserInfoService.
func (s *UserInfoService) RegisterRoutes(mux *http.ServeMux) {
	opts := middleware.CORSOptions{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   "GET, OPTIONS",
		AllowedHeaders:   "Authorization",
		ExposedHeaders:   "WWW-Authenticate",
		AllowCredentials: true,
	}
	registerWithCORS(mux, http.MethodGet, constants.OAuth2UserInfoEndpoint,
		s.userInfoHandler.HandleUserInfoRequest, opts)
}
