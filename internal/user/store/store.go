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

// Package store provides the persistence layer of the identity source.
package store

import (
	"context"
	"fmt"

	"github.com/asgardeo/beacon/internal/system/constants"
	"github.com/asgardeo/beacon/internal/system/database/client"
	"github.com/asgardeo/beacon/internal/system/database/provider"
	dbutils "github.com/asgardeo/beacon/internal/system/database/utils"
	userconstants "github.com/asgardeo/beacon/internal/user/constants"
	"github.com/asgardeo/beacon/internal/user/model"
)

// UserStoreInterface defines the interface for reading site users.
type UserStoreInterface interface {
	GetUser(ctx context.Context, siteID, userID string) (*model.User, error)
}

// UserStore reads site users from the identity database.
type UserStore struct {
	dbProvider provider.DBProviderInterface
}

// NewUserStore creates a new instance of UserStore.
func NewUserStore(dbProvider provider.DBProviderInterface) UserStoreInterface {
	return &UserStore{
		dbProvider: dbProvider,
	}
}

// GetUser retrieves a user with the profile values and role memberships.
func (s *UserStore) GetUser(ctx context.Context, siteID, userID string) (*model.User, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.IdentityDB)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, QueryGetUser, siteID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, userconstants.ErrUserNotFound
	}

	user := &model.User{SiteID: siteID}
	if user.ID, err = dbutils.GetString(results[0], "user_id"); err != nil {
		return nil, err
	}
	if user.Username, err = dbutils.GetString(results[0], "username"); err != nil {
		return nil, err
	}

	if user.Profile, err = getProfileValues(ctx, dbClient, siteID, userID); err != nil {
		return nil, err
	}
	if user.Roles, err = getRoles(ctx, dbClient, siteID, userID); err != nil {
		return nil, err
	}

	return user, nil
}

func getProfileValues(ctx context.Context, dbClient client.DBClientInterface,
	siteID, userID string) ([]model.ProfileValue, error) {
	results, err := dbClient.Query(ctx, QueryGetUserProfileValues, siteID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute profile query: %w", err)
	}

	values := make([]model.ProfileValue, 0, len(results))
	for _, row := range results {
		name, err := dbutils.GetString(row, "property_name")
		if err != nil {
			return nil, err
		}
		claimType, err := dbutils.GetString(row, "claim_type")
		if err != nil {
			return nil, err
		}
		value, err := dbutils.GetString(row, "property_value")
		if err != nil {
			return nil, err
		}
		values = append(values, model.ProfileValue{
			Property: model.ProfileProperty{Name: name, ClaimType: model.ClaimType(claimType)},
			Value:    value,
		})
	}
	return values, nil
}

func getRoles(ctx context.Context, dbClient client.DBClientInterface, siteID, userID string) ([]string, error) {
	results, err := dbClient.Query(ctx, QueryGetUserRoles, siteID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute role query: %w", err)
	}

	roles := make([]string, 0, len(results))
	for _, row := range results {
		role, err := dbutils.GetString(row, "role_name")
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}
