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

// Package model defines the client application registration read by the OAuth endpoints.
package model

import (
	"slices"

	"github.com/google/uuid"
)

// ClientApplication is a third party application allowed to request tokens on behalf of a user.
type ClientApplication struct {
	ClientID           uuid.UUID
	Name               string
	RedirectURIs       []string
	Scopes             []string
	TokenExpiryMinutes int
	LoginPage          string
}

// IsRegisteredRedirectURI reports whether the URI is byte-identical to a registered redirect URI.
func (a *ClientApplication) IsRegisteredRedirectURI(redirectURI string) bool {
	return slices.Contains(a.RedirectURIs, redirectURI)
}

// IsAllowedScope reports whether the scope is one of the scopes the application is registered for.
func (a *ClientApplication) IsAllowedScope(scope string) bool {
	return slices.Contains(a.Scopes, scope)
}
