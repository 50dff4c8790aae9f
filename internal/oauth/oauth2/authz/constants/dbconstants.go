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

import dbmodel "github.com/asgardeo/beacon/internal/system/database/model"

const authorizationColumns = "ID, CLIENT_ID, SCOPE, REDIRECT_URI, RESPONSE_TYPE, STATE, CREATED_AT, " +
	"USER_ID, CODE, CODE_EXPIRY, CODE_STATE, ACCESS_TOKEN, EXPIRY_DATE, GRANTED_AT"

// QueryInsertPendingAuthorization is the query to insert a new pending authorization.
var QueryInsertPendingAuthorization = dbmodel.DBQuery{
	ID: "AZQ-00001",
	Query: "INSERT INTO OAUTH_AUTHORIZATION (ID, CLIENT_ID, SCOPE, REDIRECT_URI, RESPONSE_TYPE, STATE, " +
		"CREATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7)",
}

// QueryGetAuthorizationByID is the query to retrieve an authorization by its id.
var QueryGetAuthorizationByID = dbmodel.DBQuery{
	ID:    "AZQ-00002",
	Query: "SELECT " + authorizationColumns + " FROM OAUTH_AUTHORIZATION WHERE ID = $1",
}

// QueryGrantAuthorization is the query to grant an authorization that is still pending.
var QueryGrantAuthorization = dbmodel.DBQuery{
	ID: "AZQ-00003",
	Query: "UPDATE OAUTH_AUTHORIZATION SET USER_ID = $2, CODE = $3, CODE_EXPIRY = $4, CODE_STATE = $5, " +
		"ACCESS_TOKEN = $6, EXPIRY_DATE = $7, GRANTED_AT = $8 WHERE ID = $1 AND USER_ID IS NULL",
}

// QueryGetAuthorizationByCode is the query to retrieve an authorization by its authorization code.
var QueryGetAuthorizationByCode = dbmodel.DBQuery{
	ID:    "AZQ-00004",
	Query: "SELECT " + authorizationColumns + " FROM OAUTH_AUTHORIZATION WHERE CODE = $1",
}

// QueryRedeemAuthorizationCode is the query to deactivate an authorization code that is still active.
var QueryRedeemAuthorizationCode = dbmodel.DBQuery{
	ID:    "AZQ-00005",
	Query: "UPDATE OAUTH_AUTHORIZATION SET CODE_STATE = $2 WHERE CODE = $1 AND CODE_STATE = $3",
}

// QueryGetAuthorizationByAccessToken is the query to retrieve an authorization by its access token.
var QueryGetAuthorizationByAccessToken = dbmodel.DBQuery{
	ID:    "AZQ-00006",
	Query: "SELECT " + authorizationColumns + " FROM OAUTH_AUTHORIZATION WHERE ACCESS_TOKEN = $1",
}

// QueryDeleteExpiredAuthorizations is the query to remove pending authorizations created before
// the first cutoff and granted authorizations whose access token expired before the second cutoff.
var QueryDeleteExpiredAuthorizations = dbmodel.DBQuery{
	ID: "AZQ-00007",
	Query: "DELETE FROM OAUTH_AUTHORIZATION WHERE (USER_ID IS NULL AND CREATED_AT < $1) " +
		"OR (USER_ID IS NOT NULL AND EXPIRY_DATE < $2)",
}
