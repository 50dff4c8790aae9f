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

// Package model defines the data structures for OAuth2 authorization.
package model

import (
	"time"

	"github.com/asgardeo/beacon/internal/oauth/oauth2/authz/constants"
)

// PendingAuthorization is an authorization request that passed validation and waits for the
// user to authenticate.
type PendingAuthorization struct {
	ID           string
	ClientID     string
	Scope        string
	RedirectURI  string
	ResponseType string
	State        string
	CreatedAt    time.Time
}

// IsExpired reports whether the pending authorization is older than the validity period.
func (p PendingAuthorization) IsExpired(now time.Time, validityPeriod time.Duration) bool {
	return !now.Before(p.CreatedAt.Add(validityPeriod))
}

// IssuedCredentials holds the secrets issued when an authorization is granted. Code and
// CodeExpiry are empty for the token response type.
type IssuedCredentials struct {
	Code        string
	CodeExpiry  time.Time
	AccessToken string
	ExpiryDate  time.Time
}

// Grant completes the pending authorization for the user.
func (p PendingAuthorization) Grant(userID string, credentials IssuedCredentials, now time.Time) GrantedAuthorization {
	granted := GrantedAuthorization{
		PendingAuthorization: p,
		UserID:               userID,
		AccessToken:          credentials.AccessToken,
		ExpiryDate:           credentials.ExpiryDate,
		GrantedAt:            now,
	}
	if credentials.Code != "" {
		granted.Code = credentials.Code
		granted.CodeExpiry = credentials.CodeExpiry
		granted.CodeState = constants.AuthCodeStateActive
	}
	return granted
}

// GrantedAuthorization is an authorization completed for an authenticated user.
type GrantedAuthorization struct {
	PendingAuthorization
	UserID      string
	Code        string
	CodeExpiry  time.Time
	CodeState   string
	AccessToken string
	ExpiryDate  time.Time
	GrantedAt   time.Time
}

// IsExpired reports whether the access token has expired. A token expiring exactly now is expired.
func (g GrantedAuthorization) IsExpired(now time.Time) bool {
	return !now.Before(g.ExpiryDate)
}

// IsCodeRedeemable reports whether the authorization code is active and not expired.
func (g GrantedAuthorization) IsCodeRedeemable(now time.Time) bool {
	return g.Code != "" && g.CodeState == constants.AuthCodeStateActive && now.Before(g.CodeExpiry)
}

// MinutesRemaining returns the whole minutes left until the access token expires.
func (g GrantedAuthorization) MinutesRemaining(now time.Time) int64 {
	remaining := g.ExpiryDate.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int64(remaining / time.Minute)
}
