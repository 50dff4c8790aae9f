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

// Package service resolves site users for the OAuth endpoints.
package service

import (
	"context"
	"errors"

	"github.com/asgardeo/beacon/internal/system/error/serviceerror"
	"github.com/asgardeo/beacon/internal/system/log"
	"github.com/asgardeo/beacon/internal/user/constants"
	"github.com/asgardeo/beacon/internal/user/model"
	"github.com/asgardeo/beacon/internal/user/store"
)

// UserServiceInterface defines the interface for resolving site users.
type UserServiceInterface interface {
	GetUser(ctx context.Context, siteID, userID string) (*model.User, *serviceerror.ServiceError)
}

// UserService is the default implementation of the UserServiceInterface.
type UserService struct {
	store store.UserStoreInterface
}

// NewUserService creates a new instance of UserService.
func NewUserService(userStore store.UserStoreInterface) UserServiceInterface {
	return &UserService{
		store: userStore,
	}
}

// GetUser resolves a user of the site with the profile values and role memberships.
func (us *UserService) GetUser(ctx context.Context, siteID, userID string) (*model.User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "UserService"))

	if userID == "" {
		return nil, &constants.ErrorInvalidUserID
	}

	user, err := us.store.GetUser(ctx, siteID, userID)
	if err != nil {
		if errors.Is(err, constants.ErrUserNotFound) {
			return nil, &constants.ErrorUserNotFound
		}
		logger.Error("Failed to retrieve the user", log.String("userId", userID), log.Error(err))
		return nil, &serviceerror.InternalServerError
	}

	return user, nil
}
