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

package managers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/beacon/internal/oauth/claims"
	authzstore "github.com/asgardeo/beacon/internal/oauth/oauth2/authz/store"
	"github.com/asgardeo/beacon/internal/system/config"
	serverconst "github.com/asgardeo/beacon/internal/system/constants"
	dbmodel "github.com/asgardeo/beacon/internal/system/database/model"
	"github.com/asgardeo/beacon/internal/system/database/provider"
	"github.com/asgardeo/beacon/internal/system/jwt"
	"github.com/asgardeo/beacon/internal/system/metrics"
	usermodel "github.com/asgardeo/beacon/internal/user/model"
)

const (
	identitySchemaPath = "../../dbscripts/identitydb/sqlite.sql"

	testSiteID        = "site-1"
	testCanonicalHost = "www.example.com"
	testSessionSecret = "session-secret"
	testClientID      = "5f0c6a3e-3c1f-4d8b-9a57-2f4d3c1b7e90"
	testRedirectURI   = "https://client.example.com/callback"
	testUserID        = "8d2b6f4a-1c3e-4a5b-9d7c-6e5f4a3b2c1d"
)

type ServiceManagerTestSuite struct {
	suite.Suite
	cfg        *config.Config
	dbProvider provider.DBProviderInterface
	jwtService jwt.JWTServiceInterface
	mux        *http.ServeMux
}

func TestServiceManagerSuite(t *testing.T) {
	suite.Run(t, new(ServiceManagerTestSuite))
}

func (suite *ServiceManagerTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		Database: config.DatabaseConfig{
			Identity: config.DataSource{
				Type:            dbmodel.DBTypeSQLite,
				Path:            "identity.db",
				MaxOpenConns:    1,
				MaxIdleConns:    1,
				ConnMaxLifetime: 60,
			},
		},
		Cache: config.CacheConfig{Disabled: true},
		Site:  config.SiteConfig{ID: testSiteID, CanonicalHost: testCanonicalHost, LoginPage: "/account/login"},
		Authn: config.AuthnConfig{SessionSecret: testSessionSecret},
		OAuth: config.OAuthConfig{SecretLength: 32},
	}
	suite.cfg.ApplyDefaults()

	suite.dbProvider = provider.NewDBProvider(suite.cfg.Database, suite.T().TempDir())
	suite.seedIdentityDB()

	mr := miniredis.RunT(suite.T())
	store := authzstore.NewRedisAuthorizationStoreWithClient(
		redis.NewClient(&redis.Options{Addr: mr.Addr()}), suite.cfg.Redis.KeyPrefix,
		time.Duration(suite.cfg.OAuth.PendingAuthorization.ValidityPeriod)*time.Second)
	suite.T().Cleanup(func() { _ = store.Close() })

	jwtService, err := jwt.NewJWTServiceFromFile("", suite.cfg.OAuth.IDToken.KeyID)
	require.NoError(suite.T(), err)
	suite.jwtService = jwtService

	suite.mux = http.NewServeMux()
	manager := NewServiceManager(suite.mux, suite.cfg, suite.dbProvider, store, suite.jwtService,
		metrics.NewMetrics())
	require.NoError(suite.T(), manager.RegisterServices())
}

func (suite *ServiceManagerTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.dbProvider.Close())
}

func (suite *ServiceManagerTestSuite) seedIdentityDB() {
	ctx := context.Background()
	dbClient, err := suite.dbProvider.GetDBClient(serverconst.IdentityDB)
	require.NoError(suite.T(), err)

	schema, err := os.ReadFile(filepath.Clean(identitySchemaPath))
	require.NoError(suite.T(), err)
	for _, statement := range strings.Split(string(schema), ";") {
		if strings.TrimSpace(statement) == "" {
			continue
		}
		_, err := dbClient.Execute(ctx, dbmodel.DBQuery{ID: "SCHEMA", Query: statement})
		require.NoError(suite.T(), err)
	}

	seed := []struct {
		query string
		args  []interface{}
	}{
		{
			query: "INSERT INTO OAUTH_CLIENT_APP (CLIENT_ID, APP_NAME, REDIRECT_URIS, SCOPES, " +
				"TOKEN_EXPIRY_MINUTES, LOGIN_PAGE) VALUES ($1, $2, $3, $4, $5, $6)",
			args: []interface{}{testClientID, "Client", testRedirectURI + "\nhttps://client.example.com/other",
				"profile email", 60, nil},
		},
		{
			query: "INSERT INTO SITE_USER (SITE_ID, USER_ID, USERNAME) VALUES ($1, $2, $3)",
			args:  []interface{}{testSiteID, testUserID, "alice"},
		},
		{
			query: "INSERT INTO USER_PROFILE_PROPERTY (SITE_ID, PROPERTY_NAME, CLAIM_TYPE, DISPLAY_ORDER) " +
				"VALUES ($1, $2, $3, $4)",
			args: []interface{}{testSiteID, "Email", "email", 1},
		},
		{
			query: "INSERT INTO USER_PROFILE_PROPERTY (SITE_ID, PROPERTY_NAME, CLAIM_TYPE, DISPLAY_ORDER) " +
				"VALUES ($1, $2, $3, $4)",
			args: []interface{}{testSiteID, "Nickname", nil, 2},
		},
		{
			query: "INSERT INTO USER_PROFILE_VALUE (SITE_ID, USER_ID, PROPERTY_NAME, PROPERTY_VALUE) " +
				"VALUES ($1, $2, $3, $4)",
			args: []interface{}{testSiteID, testUserID, "Email", "alice@example.com"},
		},
		{
			query: "INSERT INTO USER_PROFILE_VALUE (SITE_ID, USER_ID, PROPERTY_NAME, PROPERTY_VALUE) " +
				"VALUES ($1, $2, $3, $4)",
			args: []interface{}{testSiteID, testUserID, "Nickname", "ally"},
		},
		{
			query: "INSERT INTO USER_ROLE (SITE_ID, USER_ID, ROLE_NAME) VALUES ($1, $2, $3)",
			args:  []interface{}{testSiteID, testUserID, "editor"},
		},
	}
	for _, s := range seed {
		_, err := dbClient.Execute(ctx, dbmodel.DBQuery{ID: "SEED", Query: s.query}, s.args...)
		require.NoError(suite.T(), err)
	}
}

func (suite *ServiceManagerTestSuite) sessionCookie() *http.Cookie {
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		Subject:   testUserID,
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSessionSecret))
	require.NoError(suite.T(), err)
	return &http.Cookie{Name: suite.cfg.Authn.SessionCookieName, Value: token}
}

func (suite *ServiceManagerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, req)
	return rr
}

func (suite *ServiceManagerTestSuite) authorizeURL(redirectURI string) string {
	params := url.Values{}
	params.Set("client_id", testClientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("response_type", "code")
	params.Set("scope", "profile")
	params.Set("state", "xyz")
	return "/oauth2/authorize?" + params.Encode()
}

func (suite *ServiceManagerTestSuite) TestAuthorizationCodeFlow() {
	t := suite.T()

	// The user is not signed in, so the flow detours through the login page.
	rr := suite.serve(httptest.NewRequest(http.MethodGet, suite.authorizeURL(testRedirectURI), nil))
	require.Equal(t, http.StatusFound, rr.Code)
	loginURL := rr.Header().Get("Location")
	require.True(t, strings.HasPrefix(loginURL, "/account/login?returnUrl=/oauth2/respond/"), loginURL)
	respondPath := strings.TrimPrefix(loginURL, "/account/login?returnUrl=")

	// Back from the login page with a session.
	req := httptest.NewRequest(http.MethodGet, respondPath, nil)
	req.AddCookie(suite.sessionCookie())
	rr = suite.serve(req)
	require.Equal(t, http.StatusFound, rr.Code)
	location, err := url.Parse(rr.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "client.example.com", location.Host)
	assert.Equal(t, "/callback", location.Path)
	assert.Equal(t, "xyz", location.Query().Get("state"))
	code := location.Query().Get("code")
	require.NotEmpty(t, code)

	// The pending authorization is consumed.
	req = httptest.NewRequest(http.MethodGet, respondPath, nil)
	req.AddCookie(suite.sessionCookie())
	assert.Equal(t, http.StatusBadRequest, suite.serve(req).Code)

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", testClientID)
	form.Set("code", code)
	form.Set("redirect_uri", testRedirectURI)
	req = httptest.NewRequest(http.MethodPost, "/oauth2/token", strings.NewReader(form.Encode()))
	req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeFormURLEncoded)
	rr = suite.serve(req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "no-store", rr.Header().Get(serverconst.CacheControlHeaderName))

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
		TokenID     string `json:"token_id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tokenResponse))
	assert.NotEmpty(t, tokenResponse.AccessToken)
	assert.Equal(t, "Bearer", tokenResponse.TokenType)
	assert.InDelta(t, 59, tokenResponse.ExpiresIn, 1)

	tokenClaims, err := suite.jwtService.VerifyJWT(tokenResponse.TokenID, testClientID, testCanonicalHost)
	require.NoError(t, err)
	assert.Equal(t, testUserID, tokenClaims["sub"])
	assert.Equal(t, testUserID, tokenClaims[claims.ClaimNameIdentifier])
	assert.Equal(t, "alice", tokenClaims[claims.ClaimName])
	emailClaim, ok := claims.GetClaimURI(usermodel.ClaimTypeEmail)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", tokenClaims[emailClaim])
	assert.Equal(t, []interface{}{"editor"}, tokenClaims[claims.ClaimRoles])

	// A code is redeemable once.
	req = httptest.NewRequest(http.MethodPost, "/oauth2/token", strings.NewReader(form.Encode()))
	req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeFormURLEncoded)
	rr = suite.serve(req)
	assert.NotEqual(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/oauth2/userinfo", nil)
	req.Header.Set(serverconst.AuthorizationHeaderName, "Bearer "+tokenResponse.AccessToken)
	rr = suite.serve(req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var userInfo map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &userInfo))
	assert.Equal(t, testUserID, userInfo[claims.ClaimNameIdentifier])
	assert.Equal(t, "alice", userInfo[claims.ClaimName])
	assert.Equal(t, []interface{}{"editor"}, userInfo[claims.ClaimRoles])
	assert.Len(t, userInfo, 4)
}

func (suite *ServiceManagerTestSuite) TestAuthorizeRejectsUnregisteredRedirectURI() {
	req := httptest.NewRequest(http.MethodGet, suite.authorizeURL(testRedirectURI+"/"), nil)
	req.AddCookie(suite.sessionCookie())
	rr := suite.serve(req)

	assert.Equal(suite.T(), http.StatusBadRequest, rr.Code)
	assert.Empty(suite.T(), rr.Header().Get("Location"))
}

func (suite *ServiceManagerTestSuite) TestUserInfoWithoutToken() {
	rr := suite.serve(httptest.NewRequest(http.MethodGet, "/oauth2/userinfo", nil))
	assert.Equal(suite.T(), http.StatusBadRequest, rr.Code)
}

func (suite *ServiceManagerTestSuite) TestJWKS() {
	rr := suite.serve(httptest.NewRequest(http.MethodGet, "/oauth2/jwks", nil))
	require.Equal(suite.T(), http.StatusOK, rr.Code)

	var keySet struct {
		Keys []map[string]interface{} `json:"keys"`
	}
	require.NoError(suite.T(), json.Unmarshal(rr.Body.Bytes(), &keySet))
	require.Len(suite.T(), keySet.Keys, 1)
	assert.Equal(suite.T(), suite.cfg.OAuth.IDToken.KeyID, keySet.Keys[0]["kid"])
}

func (suite *ServiceManagerTestSuite) TestHealthAndMetrics() {
	rr := suite.serve(httptest.NewRequest(http.MethodGet, "/health/liveness", nil))
	assert.Equal(suite.T(), http.StatusOK, rr.Code)

	rr = suite.serve(httptest.NewRequest(http.MethodGet, "/health/readiness", nil))
	assert.Equal(suite.T(), http.StatusOK, rr.Code, rr.Body.String())

	rr = suite.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(suite.T(), http.StatusOK, rr.Code)
}

func (suite *ServiceManagerTestSuite) TestRunExpiredAuthorizationCleanupStopsOnCancel() {
	manager := NewServiceManager(http.NewServeMux(), suite.cfg, suite.dbProvider,
		authzstore.NewAuthorizationStore(suite.dbProvider), suite.jwtService, metrics.NewMetrics())
	require.NoError(suite.T(), manager.RegisterServices())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		manager.RunExpiredAuthorizationCleanup(ctx, time.Hour)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		suite.T().Fatal("cleanup loop did not stop")
	}
}
