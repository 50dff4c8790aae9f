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

// Package store provides the persistence layer of the client registry.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/asgardeo/beacon/internal/application/constants"
	"github.com/asgardeo/beacon/internal/application/model"
	sysconstants "github.com/asgardeo/beacon/internal/system/constants"
	"github.com/asgardeo/beacon/internal/system/database/provider"
	dbutils "github.com/asgardeo/beacon/internal/system/database/utils"
	"github.com/asgardeo/beacon/internal/system/utils"
)

// ApplicationStoreInterface defines the interface for reading client applications.
type ApplicationStoreInterface interface {
	GetClientApplication(ctx context.Context, clientID uuid.UUID) (*model.ClientApplication, error)
}

// ApplicationStore reads client applications from the identity database.
type ApplicationStore struct {
	dbProvider provider.DBProviderInterface
}

// NewApplicationStore creates a new instance of ApplicationStore.
func NewApplicationStore(dbProvider provider.DBProviderInterface) ApplicationStoreInterface {
	return &ApplicationStore{
		dbProvider: dbProvider,
	}
}

// GetClientApplication retrieves the client application registered for the client id.
func (s *ApplicationStore) GetClientApplication(ctx context.Context,
	clientID uuid.UUID) (*model.ClientApplication, error) {
	dbClient, err := s.dbProvider.GetDBClient(sysconstants.IdentityDB)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, QueryGetClientApplication, clientID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, constants.ErrApplicationNotFound
	}

	return buildClientApplicationFromResultRow(results[0])
}

// buildClientApplicationFromResultRow constructs a client application from a database row.
func buildClientApplicationFromResultRow(row map[string]interface{}) (*model.ClientApplication, error) {
	rawClientID, err := dbutils.GetString(row, "client_id")
	if err != nil {
		return nil, err
	}
	clientID, err := uuid.Parse(rawClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client_id: %w", err)
	}

	name, err := dbutils.GetString(row, "app_name")
	if err != nil {
		return nil, err
	}
	redirectURIs, err := dbutils.GetString(row, "redirect_uris")
	if err != nil {
		return nil, err
	}
	scopes, err := dbutils.GetString(row, "scopes")
	if err != nil {
		return nil, err
	}
	tokenExpiry, err := dbutils.GetInt64(row, "token_expiry_minutes")
	if err != nil {
		return nil, err
	}
	loginPage, err := dbutils.GetString(row, "login_page")
	if err != nil {
		return nil, err
	}

	return &model.ClientApplication{
		ClientID:           clientID,
		Name:               name,
		RedirectURIs:       utils.ParseDelimitedList(redirectURIs, constants.RedirectURISeparator),
		Scopes:             utils.ParseDelimitedList(scopes, constants.ScopeSeparator),
		TokenExpiryMinutes: int(tokenExpiry),
		LoginPage:          loginPage,
	}, nil
}
