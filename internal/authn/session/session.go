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

// Package session recognizes the site user authenticated by the site's login flow.
package session

import (
	"errors"
	"net/http"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/asgardeo/beacon/internal/system/config"
	"github.com/asgardeo/beacon/internal/system/log"
)

// ErrNotAuthenticated is returned when the request carries no valid site session.
var ErrNotAuthenticated = errors.New("no authenticated session")

// SessionResolverInterface defines the interface for resolving the authenticated user of a request.
type SessionResolverInterface interface {
	GetAuthenticatedUserID(r *http.Request) (string, error)
}

// SessionResolver reads the HS256 signed session token the login flow stores in a cookie.
type SessionResolver struct {
	cookieName string
	secret     []byte
	timeNow    func() time.Time
}

// NewSessionResolver creates a new instance of SessionResolver.
func NewSessionResolver(authn config.AuthnConfig) SessionResolverInterface {
	return &SessionResolver{
		cookieName: authn.SessionCookieName,
		secret:     []byte(authn.SessionSecret),
		timeNow:    time.Now,
	}
}

// GetAuthenticatedUserID returns the subject of the session token, or ErrNotAuthenticated when
// the cookie is absent, expired or not signed with the session secret.
func (sr *SessionResolver) GetAuthenticatedUserID(r *http.Request) (string, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SessionResolver"))

	cookie, err := r.Cookie(sr.cookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNotAuthenticated
	}

	token, err := gojwt.ParseWithClaims(cookie.Value, &gojwt.RegisteredClaims{},
		func(*gojwt.Token) (interface{}, error) { return sr.secret, nil },
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithTimeFunc(sr.timeNow),
		gojwt.WithExpirationRequired(),
	)
	if err != nil {
		logger.Debug("Rejected session token", log.Error(err))
		return "", ErrNotAuthenticated
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrNotAuthenticated
	}
	return subject, nil
}
