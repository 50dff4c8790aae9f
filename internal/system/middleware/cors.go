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

// Package middleware provides HTTP middleware functions for request processing.
package middleware

import (
	"net/http"
	"strconv"

	"github.com/asgardeo/beacon/internal/system/utils"
)

// CORSOptions represents the CORS configuration for HTTP requests.
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   string
	AllowedHeaders   string
	ExposedHeaders   string
	AllowCredentials bool
	// MaxAge is the number of seconds a preflight result may be cached. Zero omits the header.
	MaxAge int
}

// WithCORS wraps an HTTP handler with CORS headers based on the provided options.
// It returns the pattern and wrapped handler that can be registered with http.ServeMux.
func WithCORS(pattern string, handler http.HandlerFunc, opts CORSOptions) (string, http.HandlerFunc) {
	return pattern, func(w http.ResponseWriter, r *http.Request) {
		applyCORSHeaders(w, r, opts)
		handler(w, r)
	}
}

// applyCORSHeaders sets the CORS headers when the request comes from one of the allowed origins.
// Preflight only headers are set on OPTIONS requests.
func applyCORSHeaders(w http.ResponseWriter, r *http.Request, opts CORSOptions) {
	header := w.Header()
	header.Add("Vary", "Origin")

	allowedOrigin := utils.GetAllowedOrigin(opts.AllowedOrigins, r.Header.Get("Origin"))
	if allowedOrigin == "" {
		return
	}
	header.Set("Access-Control-Allow-Origin", allowedOrigin)
	if opts.AllowCredentials {
		header.Set("Access-Control-Allow-Credentials", "true")
	}
	if opts.ExposedHeaders != "" {
		header.Set("Access-Control-Expose-Headers", opts.ExposedHeaders)
	}

	if r.Method != http.MethodOptions {
		return
	}
	if opts.AllowedMethods != "" {
		header.Set("Access-Control-Allow-Methods", opts.AllowedMethods)
	}
	if opts.AllowedHeaders != "" {
		header.Set("Access-Control-Allow-Headers", opts.AllowedHeaders)
	}
	if opts.MaxAge > 0 {
		header.Set("Access-Control-Max-Age", strconv.Itoa(opts.MaxAge))
	}
}
