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

// Package userinfo resolves the claims of the user an access token was issued to.
package userinfo

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/asgardeo/beacon/internal/oauth/claims"
	authzconstants "github.com/asgardeo/beacon/internal/oauth/oauth2/authz/constants"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/authz/store"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/constants"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/model"
	serverconst "github.com/asgardeo/beacon/internal/system/constants"
	"github.com/asgardeo/beacon/internal/system/log"
	userservice "github.com/asgardeo/beacon/internal/user/service"
)

const bearerPrefix = "bearer "

// UserInfoError is a user info failure with the HTTP status it is delivered with.
type UserInfoError struct {
	model.ErrorResponse
	StatusCode int
}

func newUserInfoError(code, description string, statusCode int) *UserInfoError {
	return &UserInfoError{
		ErrorResponse: model.ErrorResponse{Error: code, ErrorDescription: description},
		StatusCode:    statusCode,
	}
}

// UserInfoServiceInterface defines the interface for resolving user info from a bearer token.
type UserInfoServiceInterface interface {
	ValidateBearerToken(headers http.Header) (string, *UserInfoError)
	ResolveUserInfo(ctx context.Context, headers http.Header) (map[string]interface{}, *UserInfoError)
}

// UserInfoService is the default implementation of the UserInfoServiceInterface.
type UserInfoService struct {
	authzStore  store.AuthorizationStoreInterface
	userService userservice.UserServiceInterface
	siteID      string
	timeNow     func() time.Time
}

// NewUserInfoService creates a new instance of UserInfoService.
func NewUserInfoService(authzStore store.AuthorizationStoreInterface, userService userservice.UserServiceInterface,
	siteID string) UserInfoServiceInterface {
	return &UserInfoService{
		authzStore:  authzStore,
		userService: userService,
		siteID:      siteID,
		timeNow:     time.Now,
	}
}

// ValidateBearerToken extracts the access token from the only Authorization header of the request.
func (s *UserInfoService) ValidateBearerToken(headers http.Header) (string, *UserInfoError) {
	values := headers.Values(serverconst.AuthorizationHeaderName)
	if len(values) != 1 {
		return "", newUserInfoError(constants.ErrorInvalidRequest,
			"Exactly one Authorization header is required", http.StatusBadRequest)
	}

	value := values[0]
	if len(value) < len(bearerPrefix) || !strings.EqualFold(value[:len(bearerPrefix)], bearerPrefix) {
		return "", newUserInfoError(constants.ErrorInvalidRequest,
			"The Authorization header must use the Bearer scheme", http.StatusBadRequest)
	}

	accessToken := strings.TrimSpace(value[len(bearerPrefix):])
	if accessToken == "" {
		return "", newUserInfoError(constants.ErrorInvalidToken, "Missing access token", http.StatusBadRequest)
	}
	return accessToken, nil
}

// ResolveUserInfo returns the claims of the user the bearer token was issued to.
func (s *UserInfoService) ResolveUserInfo(ctx context.Context,
	headers http.Header) (map[string]interface{}, *UserInfoError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "UserInfoService"))

	accessToken, userInfoErr := s.ValidateBearerToken(headers)
	if userInfoErr != nil {
		return nil, userInfoErr
	}

	granted, err := s.authzStore.GetAuthorizationByAccessToken(ctx, accessToken)
	if err != nil {
		if errors.Is(err, authzconstants.ErrAuthorizationNotFound) {
			logger.Debug("Unknown access token", log.String("accessToken", log.MaskString(accessToken)))
			return nil, newUserInfoError(constants.ErrorInvalidToken, "Invalid access token",
				http.StatusBadRequest)
		}
		logger.Error("Failed to load the authorization by access token", log.Error(err))
		return nil, newUserInfoError(constants.ErrorServerError, "Failed to process the user info request",
			http.StatusInternalServerError)
	}

	if granted.IsExpired(s.timeNow()) {
		return nil, newUserInfoError(constants.ErrorExpiredToken, "The access token has expired",
			http.StatusUnauthorized)
	}

	user, svcErr := s.userService.GetUser(ctx, s.siteID, granted.UserID)
	if svcErr != nil {
		if svcErr.IsClientError() {
			return nil, newUserInfoError(constants.ErrorInvalidRequest, "The user of the token no longer exists",
				http.StatusBadRequest)
		}
		return nil, newUserInfoError(constants.ErrorServerError, "Failed to process the user info request",
			http.StatusInternalServerError)
	}

	return claims.BuildClaims(user), nil
}
