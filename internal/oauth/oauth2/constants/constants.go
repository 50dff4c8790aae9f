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

// Package constants defines constants used across the OAuth2 module.
package constants

// OAuth2 request parameters.
const (
	RequestParamGrantType        = "grant_type"
	RequestParamClientID         = "client_id"
	RequestParamRedirectURI      = "redirect_uri"
	RequestParamScope            = "scope"
	RequestParamCode             = "code"
	RequestParamResponseType     = "response_type"
	RequestParamState            = "state"
	RequestParamError            = "error"
	RequestParamErrorDescription = "error_description"
	RequestParamReturnURL        = "returnUrl"
)

// OAuth2 response parameters of the implicit flow.
const (
	ResponseParamAccessToken = "access_token"
	ResponseParamTokenType   = "token_type"
	ResponseParamExpiresIn   = "expires_in"
)

// OAuth2 endpoints.
const (
	OAuth2AuthorizationEndpoint = "/oauth2/authorize"
	OAuth2RespondEndpoint       = "/oauth2/respond/"
	OAuth2TokenEndpoint         = "/oauth2/token" // #nosec G101
	OAuth2UserInfoEndpoint      = "/oauth2/userinfo"
	OAuth2JWKSEndpoint          = "/oauth2/jwks"
)

// OAuth2 grant types.
const (
	GrantTypeAuthorizationCode = "authorization_code"
)

// OAuth2 response types.
const (
	ResponseTypeCode  = "code"
	ResponseTypeToken = "token"
)

// OAuth2 token types.
const (
	TokenTypeBearer = "Bearer"
	// TokenTypeBearerFragment is the token type written in implicit flow redirects.
	TokenTypeBearerFragment = "bearer"
)

// OAuth2 error codes.
const (
	ErrorInvalidRequest           = "invalid_request"
	ErrorInvalidClient            = "invalid_client"
	ErrorInvalidScope             = "invalid_scope"
	ErrorInvalidToken             = "invalid_token"
	ErrorExpiredToken             = "expired_token"
	ErrorInvalidAuthorizationCode = "invalid_authorization_code"
	ErrorUnsupportedGrantType     = "unsupported_grant_type"
	ErrorUnsupportedResponseType  = "unsupported_response_type"
	ErrorServerError              = "server_error"
)
