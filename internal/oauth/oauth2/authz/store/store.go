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

// Package store provides the persistence of OAuth2 authorizations through their pending and
// granted states.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asgardeo/beacon/internal/oauth/oauth2/authz/constants"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/authz/model"
	serverconst "github.com/asgardeo/beacon/internal/system/constants"
	"github.com/asgardeo/beacon/internal/system/database/client"
	dbmodel "github.com/asgardeo/beacon/internal/system/database/model"
	"github.com/asgardeo/beacon/internal/system/database/provider"
	dbutils "github.com/asgardeo/beacon/internal/system/database/utils"
	"github.com/asgardeo/beacon/internal/system/log"
)

const loggerComponentName = "AuthorizationStore"

// AuthorizationStoreInterface defines the interface for persisting authorizations.
type AuthorizationStoreInterface interface {
	CreatePendingAuthorization(ctx context.Context, pending model.PendingAuthorization) error
	GetPendingAuthorization(ctx context.Context, id string) (model.PendingAuthorization, error)
	GrantAuthorization(ctx context.Context, granted model.GrantedAuthorization) error
	GetAuthorizationByCode(ctx context.Context, code string) (model.GrantedAuthorization, error)
	RedeemAuthorizationCode(ctx context.Context, code string) error
	GetAuthorizationByAccessToken(ctx context.Context, accessToken string) (model.GrantedAuthorization, error)
	DeleteExpiredAuthorizations(ctx context.Context, pendingCutoff, grantedCutoff time.Time) (int64, error)
	Ping(ctx context.Context) error
}

// AuthorizationStore persists authorizations in the runtime database.
type AuthorizationStore struct {
	dbProvider provider.DBProviderInterface
}

// NewAuthorizationStore creates a new instance of AuthorizationStore.
func NewAuthorizationStore(dbProvider provider.DBProviderInterface) AuthorizationStoreInterface {
	return &AuthorizationStore{
		dbProvider: dbProvider,
	}
}

// CreatePendingAuthorization inserts a new pending authorization.
func (as *AuthorizationStore) CreatePendingAuthorization(ctx context.Context,
	pending model.PendingAuthorization) error {
	dbClient, err := as.getDBClient()
	if err != nil {
		return err
	}

	_, err = dbClient.Execute(ctx, constants.QueryInsertPendingAuthorization, pending.ID, pending.ClientID,
		pending.Scope, pending.RedirectURI, pending.ResponseType, pending.State, pending.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert pending authorization: %w", err)
	}
	return nil
}

// GetPendingAuthorization retrieves an authorization that has not been granted yet.
func (as *AuthorizationStore) GetPendingAuthorization(ctx context.Context,
	id string) (model.PendingAuthorization, error) {
	dbClient, err := as.getDBClient()
	if err != nil {
		return model.PendingAuthorization{}, err
	}

	authz, granted, err := queryAuthorization(ctx, dbClient, constants.QueryGetAuthorizationByID, id)
	if err != nil {
		return model.PendingAuthorization{}, err
	}
	if granted {
		return model.PendingAuthorization{}, constants.ErrAuthorizationAlreadyGranted
	}
	return authz.PendingAuthorization, nil
}

// GrantAuthorization stores the granted state. The update only applies to a record that is
// still pending, so an authorization is granted at most once.
func (as *AuthorizationStore) GrantAuthorization(ctx context.Context, granted model.GrantedAuthorization) error {
	dbClient, err := as.getDBClient()
	if err != nil {
		return err
	}

	rows, err := dbClient.Execute(ctx, constants.QueryGrantAuthorization, granted.ID, granted.UserID,
		nullableString(granted.Code), nullableUnix(granted.CodeExpiry), nullableString(granted.CodeState),
		granted.AccessToken, granted.ExpiryDate.Unix(), granted.GrantedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to grant authorization: %w", err)
	}
	if rows > 0 {
		return nil
	}

	// Nothing was updated. Tell a missing record apart from one granted concurrently.
	_, isGranted, err := queryAuthorization(ctx, dbClient, constants.QueryGetAuthorizationByID, granted.ID)
	if err != nil {
		return err
	}
	if isGranted {
		return constants.ErrAuthorizationAlreadyGranted
	}
	return fmt.Errorf("authorization %s was not updated", granted.ID)
}

// GetAuthorizationByCode retrieves the granted authorization holding the authorization code.
func (as *AuthorizationStore) GetAuthorizationByCode(ctx context.Context,
	code string) (model.GrantedAuthorization, error) {
	return as.getGrantedAuthorization(ctx, constants.QueryGetAuthorizationByCode, code)
}

// RedeemAuthorizationCode deactivates the authorization code. Only one caller can redeem a
// code; every other caller gets ErrCodeAlreadyRedeemed.
func (as *AuthorizationStore) RedeemAuthorizationCode(ctx context.Context, code string) error {
	dbClient, err := as.getDBClient()
	if err != nil {
		return err
	}

	rows, err := dbClient.Execute(ctx, constants.QueryRedeemAuthorizationCode, code,
		constants.AuthCodeStateInactive, constants.AuthCodeStateActive)
	if err != nil {
		return fmt.Errorf("failed to redeem authorization code: %w", err)
	}
	if rows == 0 {
		return constants.ErrCodeAlreadyRedeemed
	}
	return nil
}

// GetAuthorizationByAccessToken retrieves the granted authorization holding the access token.
func (as *AuthorizationStore) GetAuthorizationByAccessToken(ctx context.Context,
	accessToken string) (model.GrantedAuthorization, error) {
	return as.getGrantedAuthorization(ctx, constants.QueryGetAuthorizationByAccessToken, accessToken)
}

// DeleteExpiredAuthorizations removes pending authorizations created before pendingCutoff and
// granted authorizations whose access token expired before grantedCutoff.
func (as *AuthorizationStore) DeleteExpiredAuthorizations(ctx context.Context,
	pendingCutoff, grantedCutoff time.Time) (int64, error) {
	dbClient, err := as.getDBClient()
	if err != nil {
		return 0, err
	}

	rows, err := dbClient.Execute(ctx, constants.QueryDeleteExpiredAuthorizations,
		pendingCutoff.Unix(), grantedCutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired authorizations: %w", err)
	}
	return rows, nil
}

// Ping checks the connectivity of the runtime database.
func (as *AuthorizationStore) Ping(ctx context.Context) error {
	dbClient, err := as.getDBClient()
	if err != nil {
		return err
	}
	return dbClient.Ping(ctx)
}

func (as *AuthorizationStore) getDBClient() (client.DBClientInterface, error) {
	dbClient, err := as.dbProvider.GetDBClient(serverconst.RuntimeDB)
	if err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Error("Failed to get database client", log.Error(err))
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}
	return dbClient, nil
}

func (as *AuthorizationStore) getGrantedAuthorization(ctx context.Context, query dbmodel.DBQuery,
	value string) (model.GrantedAuthorization, error) {
	dbClient, err := as.getDBClient()
	if err != nil {
		return model.GrantedAuthorization{}, err
	}

	authz, granted, err := queryAuthorization(ctx, dbClient, query, value)
	if err != nil {
		return model.GrantedAuthorization{}, err
	}
	if !granted {
		return model.GrantedAuthorization{}, constants.ErrAuthorizationNotFound
	}
	return authz, nil
}

// queryAuthorization runs a single row authorization query. The second return value reports
// whether the record has been granted.
func queryAuthorization(ctx context.Context, dbClient client.DBClientInterface, query dbmodel.DBQuery,
	value string) (model.GrantedAuthorization, bool, error) {
	results, err := dbClient.Query(ctx, query, value)
	if err != nil {
		return model.GrantedAuthorization{}, false, fmt.Errorf("failed to retrieve authorization: %w", err)
	}
	if len(results) == 0 {
		return model.GrantedAuthorization{}, false, constants.ErrAuthorizationNotFound
	}
	if len(results) > 1 {
		return model.GrantedAuthorization{}, false, errors.New("unexpected number of authorizations found")
	}

	authz, err := buildAuthorizationFromResultRow(results[0])
	if err != nil {
		return model.GrantedAuthorization{}, false, err
	}
	return authz, authz.UserID != "", nil
}

func buildAuthorizationFromResultRow(row map[string]interface{}) (model.GrantedAuthorization, error) {
	var authz model.GrantedAuthorization
	var err error

	stringColumns := []struct {
		column string
		target *string
	}{
		{"id", &authz.ID},
		{"client_id", &authz.ClientID},
		{"scope", &authz.Scope},
		{"redirect_uri", &authz.RedirectURI},
		{"response_type", &authz.ResponseType},
		{"state", &authz.State},
		{"user_id", &authz.UserID},
		{"code", &authz.Code},
		{"code_state", &authz.CodeState},
		{"access_token", &authz.AccessToken},
	}
	for _, c := range stringColumns {
		if *c.target, err = dbutils.GetString(row, c.column); err != nil {
			return model.GrantedAuthorization{}, err
		}
	}

	timeColumns := []struct {
		column string
		target *time.Time
	}{
		{"created_at", &authz.CreatedAt},
		{"code_expiry", &authz.CodeExpiry},
		{"expiry_date", &authz.ExpiryDate},
		{"granted_at", &authz.GrantedAt},
	}
	for _, c := range timeColumns {
		if *c.target, err = getUnixTime(row, c.column); err != nil {
			return model.GrantedAuthorization{}, err
		}
	}

	if authz.ID == "" {
		return model.GrantedAuthorization{}, errors.New("authorization row has no id")
	}
	return authz, nil
}

// getUnixTime reads a column holding seconds since the epoch. NULL yields the zero time.
func getUnixTime(row map[string]interface{}, column string) (time.Time, error) {
	if row[column] == nil {
		return time.Time{}, nil
	}
	seconds, err := dbutils.GetInt64(row, column)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(seconds, 0).UTC(), nil
}

func nullableString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}

func nullableUnix(value time.Time) interface{} {
	if value.IsZero() {
		return nil
	}
	return value.Unix()
}
