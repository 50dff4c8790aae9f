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

// Package claims maps a resolved site user to the flat claim set published by the user info
// endpoint and embedded in the identity token.
package claims

import (
	usermodel "github.com/asgardeo/beacon/internal/user/model"
)

const claimNamespace = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/"

// Claim names that are always present.
const (
	ClaimNameIdentifier = claimNamespace + "nameidentifier"
	ClaimName           = claimNamespace + "name"
	ClaimRoles          = "roles"
)

// claimTypeURIs is the claim name each profile claim type is published under.
var claimTypeURIs = map[usermodel.ClaimType]string{
	usermodel.ClaimTypeEmail:         claimNamespace + "emailaddress",
	usermodel.ClaimTypeGivenName:     claimNamespace + "givenname",
	usermodel.ClaimTypeSurname:       claimNamespace + "surname",
	usermodel.ClaimTypeDateOfBirth:   claimNamespace + "dateofbirth",
	usermodel.ClaimTypeGender:        claimNamespace + "gender",
	usermodel.ClaimTypeCountry:       claimNamespace + "country",
	usermodel.ClaimTypeLocality:      claimNamespace + "locality",
	usermodel.ClaimTypePostalCode:    claimNamespace + "postalcode",
	usermodel.ClaimTypeStreetAddress: claimNamespace + "streetaddress",
	usermodel.ClaimTypeHomePhone:     claimNamespace + "homephone",
	usermodel.ClaimTypeMobilePhone:   claimNamespace + "mobilephone",
	usermodel.ClaimTypeWebpage:       claimNamespace + "webpage",
}

// GetClaimURI returns the claim name for the claim type. The second value is false for
// ClaimTypeNone and for types without a published claim.
func GetClaimURI(claimType usermodel.ClaimType) (string, bool) {
	uri, ok := claimTypeURIs[claimType]
	return uri, ok
}

// BuildClaims returns the claims of the user. Profile values whose property declares no claim
// type are left out. When two properties map to the same claim the later one wins.
func BuildClaims(user *usermodel.User) map[string]interface{} {
	claims := map[string]interface{}{
		ClaimNameIdentifier: user.ID,
		ClaimName:           user.Username,
	}

	for _, value := range user.Profile {
		uri, ok := GetClaimURI(value.Property.ClaimType)
		if !ok {
			continue
		}
		claims[uri] = value.Value
	}

	if len(user.Roles) > 0 {
		roles := make([]string, len(user.Roles))
		copy(roles, user.Roles)
		claims[ClaimRoles] = roles
	}

	return claims
}
