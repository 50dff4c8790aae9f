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

// Package model defines the site user as resolved from the identity source.
package model

// ClaimType identifies the identity claim a profile property is published as.
type ClaimType string

// Claim types a profile property can declare.
const (
	ClaimTypeNone          ClaimType = ""
	ClaimTypeEmail         ClaimType = "email"
	ClaimTypeGivenName     ClaimType = "givenname"
	ClaimTypeSurname       ClaimType = "surname"
	ClaimTypeDateOfBirth   ClaimType = "dateofbirth"
	ClaimTypeGender        ClaimType = "gender"
	ClaimTypeCountry       ClaimType = "country"
	ClaimTypeLocality      ClaimType = "locality"
	ClaimTypePostalCode    ClaimType = "postalcode"
	ClaimTypeStreetAddress ClaimType = "streetaddress"
	ClaimTypeHomePhone     ClaimType = "homephone"
	ClaimTypeMobilePhone   ClaimType = "mobilephone"
	ClaimTypeWebpage       ClaimType = "webpage"
)

// ProfileProperty is a profile field defined for the site's users.
type ProfileProperty struct {
	Name      string
	ClaimType ClaimType
}

// ProfileValue is the value a user holds for a profile property.
type ProfileValue struct {
	Property ProfileProperty
	Value    string
}

// User represents a site user with profile values and role memberships.
type User struct {
	ID       string
	SiteID   string
	Username string
	Profile  []ProfileValue
	Roles    []string
}
