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

// Package managers wires the components of the server and registers their routes.
package managers

import (
	"context"
	"net/http"
	"time"

	appmodel "github.com/asgardeo/beacon/internal/application/model"
	appservice "github.com/asgardeo/beacon/internal/application/service"
	appstore "github.com/asgardeo/beacon/internal/application/store"
	"github.com/asgardeo/beacon/internal/authn/session"
	"github.com/asgardeo/beacon/internal/oauth/jwks"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/authz"
	authzstore "github.com/asgardeo/beacon/internal/oauth/oauth2/authz/store"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/token"
	"github.com/asgardeo/beacon/internal/oauth/oauth2/userinfo"
	"github.com/asgardeo/beacon/internal/services"
	"github.com/asgardeo/beacon/internal/system/cache"
	"github.com/asgardeo/beacon/internal/system/config"
	serverconst "github.com/asgardeo/beacon/internal/system/constants"
	"github.com/asgardeo/beacon/internal/system/database/provider"
	healthhandler "github.com/asgardeo/beacon/internal/system/healthcheck/handler"
	healthservice "github.com/asgardeo/beacon/internal/system/healthcheck/service"
	"github.com/asgardeo/beacon/internal/system/jwt"
	"github.com/asgardeo/beacon/internal/system/log"
	"github.com/asgardeo/beacon/internal/system/metrics"
	userservice "github.com/asgardeo/beacon/internal/user/service"
	userstore "github.com/asgardeo/beacon/internal/user/store"
)

// ServiceManagerInterface defines the interface for registering the services of the server.
type ServiceManagerInterface interface {
	RegisterServices() error
	RunExpiredAuthorizationCleanup(ctx context.Context, interval time.Duration)
}

// ServiceManager builds the services from the shared resources of the server.
type ServiceManager struct {
	mux          *http.ServeMux
	config       *config.Config
	dbProvider   provider.DBProviderInterface
	authzStore   authzstore.AuthorizationStoreInterface
	jwtService   jwt.JWTServiceInterface
	metrics      *metrics.Metrics
	authzService authz.AuthorizationServiceInterface
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, cfg *config.Config, dbProvider provider.DBProviderInterface,
	authzStore authzstore.AuthorizationStoreInterface, jwtService jwt.JWTServiceInterface,
	m *metrics.Metrics) ServiceManagerInterface {
	return &ServiceManager{
		mux:        mux,
		config:     cfg,
		dbProvider: dbProvider,
		authzStore: authzStore,
		jwtService: jwtService,
		metrics:    m,
	}
}

// RegisterServices creates the handlers and registers their routes.
func (sm *ServiceManager) RegisterServices() error {
	cfg := sm.config

	appStore := appstore.NewCachedBackedApplicationStore(
		cache.NewCache[*appmodel.ClientApplication]("ClientApplicationCache", cfg.Cache),
		appstore.NewApplicationStore(sm.dbProvider))
	appService := appservice.NewApplicationService(appStore)
	userService := userservice.NewUserService(userstore.NewUserStore(sm.dbProvider))

	sm.authzService = authz.NewAuthorizationService(
		authz.NewAuthorizationValidator(appService),
		authz.NewResponseIssuer(sm.authzStore, cfg.OAuth),
		appService, sm.authzStore, cfg.Site, cfg.OAuth)
	authHandler := authz.NewAuthorizeHandler(sm.authzService, session.NewSessionResolver(cfg.Authn), sm.metrics)
	services.NewAuthorizationService(sm.mux, authHandler)

	exchanger := token.NewTokenExchanger(appService, sm.authzStore, userService, sm.jwtService, cfg.Site, cfg.OAuth)
	services.NewTokenService(sm.mux, token.NewTokenHandler(exchanger, sm.metrics), cfg.CORS.AllowedOrigins)

	userInfoService := userinfo.NewUserInfoService(sm.authzStore, userService, cfg.Site.ID)
	services.NewUserInfoService(sm.mux, userinfo.NewUserInfoHandler(userInfoService, sm.metrics),
		cfg.CORS.AllowedOrigins)

	services.NewJWKSAPIService(sm.mux, jwks.NewJWKSHandler(sm.jwtService), cfg.CORS.AllowedOrigins)

	healthCheckService := healthservice.NewHealthCheckService(
		healthservice.DependencyCheck{Name: "IdentityDB", Check: sm.pingIdentityDB},
		healthservice.DependencyCheck{Name: "AuthorizationStore", Check: sm.authzStore.Ping},
	)
	services.NewHealthService(sm.mux, healthhandler.NewHealthCheckHandler(healthCheckService))
	services.NewMetricsService(sm.mux, sm.metrics)

	return nil
}

// RunExpiredAuthorizationCleanup deletes expired authorizations on every tick until the context
// is cancelled. It must be called after RegisterServices.
func (sm *ServiceManager) RunExpiredAuthorizationCleanup(ctx context.Context, interval time.Duration) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "AuthorizationCleanup"))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := sm.authzService.DeleteExpiredAuthorizations(ctx)
			if err != nil {
				logger.Error("Failed to delete expired authorizations", log.Error(err))
				continue
			}
			if deleted > 0 {
				logger.Debug("Deleted expired authorizations", log.Any("count", deleted))
			}
		}
	}
}

func (sm *ServiceManager) pingIdentityDB(ctx context.Context) error {
	dbClient, err := sm.dbProvider.GetDBClient(serverconst.IdentityDB)
	if err != nil {
		return err
	}
	return dbClient.Ping(ctx)
}
