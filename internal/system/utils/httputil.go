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

// Package utils provides utility functions for HTTP operations.
package utils

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/asgardeo/beacon/internal/system/constants"
	"github.com/asgardeo/beacon/internal/system/log"
)

// QueryParam is a single name and value pair appended to a URL in order.
type QueryParam struct {
	Name  string
	Value string
}

// WriteJSONError writes a JSON error response with the given details.
func WriteJSONError(w http.ResponseWriter, code, desc string, statusCode int, respHeaders []map[string]string) {
	logger := log.GetLogger()
	logger.Debug("Error in HTTP response", log.String("error", code), log.String("description", desc))

	for _, header := range respHeaders {
		for key, value := range header {
			w.Header().Set(key, value)
		}
	}
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)

	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(map[string]string{
		"error":             code,
		"error_description": desc,
	})
	if err != nil {
		logger.Error("Failed to write JSON error response", log.Error(err))
		return
	}
}

// WriteJSON writes the given value as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, value interface{}, respHeaders []map[string]string) {
	for _, header := range respHeaders {
		for key, value := range header {
			w.Header().Set(key, value)
		}
	}
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)

	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		log.GetLogger().Error("Failed to write JSON response", log.Error(err))
	}
}

// ParseURL parses the given URL string and returns a URL object.
func ParseURL(urlStr string) (*url.URL, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, err
	}
	return parsedURL, nil
}

// AppendQueryParams appends the given parameters to the query component of the URI, keeping
// their order. The URI is otherwise left untouched so an exact registered value stays exact.
// A fragment of the URI stays after the query.
func AppendQueryParams(uri string, params ...QueryParam) string {
	base, fragment, hasFragment := strings.Cut(uri, "#")
	result := appendParams(base, '?', params)
	if hasFragment {
		return result + "#" + fragment
	}
	return result
}

// AppendFragmentParams appends the given parameters to the fragment component of the URI.
func AppendFragmentParams(uri string, params ...QueryParam) string {
	return appendParams(uri, '#', params)
}

func appendParams(uri string, separator byte, params []QueryParam) string {
	if len(params) == 0 {
		return uri
	}

	var sb strings.Builder
	sb.WriteString(uri)
	if strings.IndexByte(uri, separator) >= 0 {
		if !strings.HasSuffix(uri, string(separator)) && !strings.HasSuffix(uri, "&") {
			sb.WriteByte('&')
		}
	} else {
		sb.WriteByte(separator)
	}

	for i, param := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(param.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(param.Value))
	}
	return sb.String()
}
