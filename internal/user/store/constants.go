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

package store

import dbmodel "github.com/asgardeo/beacon/internal/system/database/model"

var (
	// QueryGetUser fetches a user of a site.
	QueryGetUser = dbmodel.DBQuery{
		ID:    "USQ-USER_MGT-01",
		Query: "SELECT USER_ID, USERNAME FROM SITE_USER WHERE SITE_ID = $1 AND USER_ID = $2",
	}
	// QueryGetUserProfileValues fetches the profile values of a user together with the claim type
	// declared by each property.
	QueryGetUserProfileValues = dbmodel.DBQuery{
		ID: "USQ-USER_MGT-02",
		Query: "SELECT p.PROPERTY_NAME, p.CLAIM_TYPE, v.PROPERTY_VALUE " +
			"FROM USER_PROFILE_VALUE v JOIN USER_PROFILE_PROPERTY p " +
			"ON v.SITE_ID = p.SITE_ID AND v.PROPERTY_NAME = p.PROPERTY_NAME " +
			"WHERE v.SITE_ID = $1 AND v.USER_ID = $2 ORDER BY p.DISPLAY_ORDER, p.PROPERTY_NAME",
	}
	// QueryGetUserRoles fetches the names of the roles a user is a member of.
	QueryGetUserRoles = dbmodel.DBQuery{
		ID:    "USQ-USER_MGT-03",
		Query: "SELECT ROLE_NAME FROM USER_ROLE WHERE SITE_ID = $1 AND USER_ID = $2 ORDER BY ROLE_NAME",
	}
)
