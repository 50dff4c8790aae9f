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

package model

const (
	// DBTypePostgres is the driver name of PostgreSQL databases.
	DBTypePostgres = "postgres"
	// DBTypeSQLite is the driver name of SQLite databases.
	DBTypeSQLite = "sqlite"
)

// DBQuery represents a database query with an identifier and the SQL statement to execute.
type DBQuery struct {
	// ID is the unique identifier for the query. It is logged instead of the statement.
	ID string `json:"id"`
	// Query is the SQL statement used for every database type without a specific variant.
	Query string `json:"query"`
	// PostgresQuery is an optional PostgreSQL specific variant of the statement.
	PostgresQuery string `json:"postgres_query,omitempty"`
	// SQLiteQuery is an optional SQLite specific variant of the statement.
	SQLiteQuery string `json:"sqlite_query,omitempty"`
}

// GetID returns the unique identifier for the query.
func (d *DBQuery) GetID() string {
	return d.ID
}

// GetQuery returns the SQL statement to execute against the given database type.
func (d *DBQuery) GetQuery(dbType string) string {
	switch dbType {
	case DBTypePostgres:
		if d.PostgresQuery != "" {
			return d.PostgresQuery
		}
	case DBTypeSQLite:
		if d.SQLiteQuery != "" {
			return d.SQLiteQuery
		}
	}
	return d.Query
}
