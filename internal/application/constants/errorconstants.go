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

package constants

import "github.com/asgardeo/beacon/internal/system/error/serviceerror"

// Client errors for client registry operations.
var (
	// ErrorInvalidClientID is the error returned when the client id is empty or not a valid identifier.
	ErrorInvalidClientID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "APP-1001",
		Error:            "Invalid client ID",
		ErrorDescription: "The provided client ID is invalid or empty",
	}
	// ErrorApplicationNotFound is the error returned when no application is registered for the client id.
	ErrorApplicationNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "APP-1002",
		Error:            "Application not found",
		ErrorDescription: "No application is registered for the provided client ID",
	}
)
