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

// Package services registers the HTTP routes of the server.
package services

import (
	"net/http"

	"github.com/asgardeo/beacon/internal/system/middleware"
)

// preflightMaxAge is how long, in seconds, browsers may cache a preflight response.
const preflightMaxAge = 600

// ServiceInterface defines a service that registers its routes on the multiplexer.
type ServiceInterface interface {
	RegisterRoutes(mux *http.ServeMux)
}

func handleOptions(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// registerWithCORS registers the handler and its preflight route for the path.
func registerWithCORS(mux *http.ServeMux, method, path string, handler http.HandlerFunc,
	opts middleware.CORSOptions) {
	if opts.MaxAge == 0 {
		opts.MaxAge = preflightMaxAge
	}
	mux.HandleFunc(middleware.WithCORS(method+" "+path, handler, opts))
	mux.HandleFunc(middleware.WithCORS(http.MethodOptions+" "+path, handleOptions, opts))
}
