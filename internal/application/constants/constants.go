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

// Package constants defines the constants and errors of the client registry.
package constants

import "errors"

// ErrApplicationNotFound is returned by the stores when no application has the given client id.
var ErrApplicationNotFound = errors.New("application not found")

const (
	// RedirectURISeparator separates the redirect URIs in storage.
	RedirectURISeparator = "\n"
	// ScopeSeparator separates the allowed scopes in storage.
	ScopeSeparator = " "
)
