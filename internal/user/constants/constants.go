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

// Package constants defines the constants and errors of the identity source.
package constants

import (
	"errors"

	"github.com/asgardeo/beacon/internal/system/error/serviceerror"
)

// ErrUserNotFound is returned by the store when the site has no user with the given id.
var ErrUserNotFound = errors.New("user not found")

// ErrorUserNotFound is the service error returned when the user cannot be resolved.
var ErrorUserNotFound = serviceerror.ServiceError{
	Type:             serviceerror.ClientErrorType,
	Code:             "USR-1001",
	Error:            "User not found",
	ErrorDescription: "The requested user could not be found",
}

// ErrorInvalidUserID is the service error returned when the user id is empty.
var ErrorInvalidUserID = serviceerror.ServiceError{
	Type:             serviceerror.ClientErrorType,
	Code:             "USR-1002",
	Error:            "Invalid user ID",
	ErrorDescription: "The provided user ID is invalid or empty",
}
