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

// Package constants defines constants related to OAuth2 authorization.
package constants

import (
	"errors"
	"time"
)

// Authorization code states.
const (
	AuthCodeStateActive   = "ACTIVE"
	AuthCodeStateInactive = "INACTIVE"
)

// ExpiredAuthorizationRetention is how long a granted authorization is kept after its access token
// expires, so that presenting the token is reported as expired rather than unknown.
const ExpiredAuthorizationRetention = time.Hour

var (
	// ErrAuthorizationNotFound is returned when no authorization matches the id, code or access token.
	ErrAuthorizationNotFound = errors.New("authorization not found")
	// ErrAuthorizationAlreadyGranted is returned when a pending authorization is granted a second time.
	ErrAuthorizationAlreadyGranted = errors.New("authorization already granted")
	// ErrCodeAlreadyRedeemed is returned when an authorization code has already been exchanged.
	ErrCodeAlreadyRedeemed = errors.New("authorization code already redeemed")
)
