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

// Package utils provides helpers for reading values out of database result rows.
package utils

import (
	"fmt"
	"strconv"
)

// GetString reads a text column from a result row. Drivers return either string or []byte
// for text columns. A missing or NULL column yields an empty string.
func GetString(row map[string]interface{}, column string) (string, error) {
	switch v := row[column].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("failed to parse column %s as string: unexpected type %T", column, v)
	}
}

// GetInt64 reads an integer column from a result row. A missing or NULL column yields zero.
func GetInt64(row map[string]interface{}, column string) (int64, error) {
	switch v := row[column].(type) {
	case nil:
		return 0, nil
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case []byte:
		return parseInt(column, string(v))
	case string:
		return parseInt(column, v)
	default:
		return 0, fmt.Errorf("failed to parse column %s as integer: unexpected type %T", column, v)
	}
}

func parseInt(column, value string) (int64, error) {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse column %s as integer: %w", column, err)
	}
	return parsed, nil
}
