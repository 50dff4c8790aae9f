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

// Package main starts the Beacon authorization server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/asgardeo/beacon/internal/managers"
	authzstore "github.com/asgardeo/beacon/internal/oauth/oauth2/authz/store"
	"github.com/asgardeo/beacon/internal/system/cert"
	"github.com/asgardeo/beacon/internal/system/config"
	"github.com/asgardeo/beacon/internal/system/database/provider"
	"github.com/asgardeo/beacon/internal/system/jwt"
	"github.com/asgardeo/beacon/internal/system/log"
	"github.com/asgardeo/beacon/internal/system/metrics"
)

const (
	cleanupInterval = 10 * time.Minute
	shutdownTimeout = 15 * time.Second
)

func main() {
	logger := log.GetLogger()

	// Get the Beacon home directory.
	beaconHome := getBeaconHome(logger)

	// Initialize the server configurations.
	cfg := initConfigurations(logger, beaconHome)

	// Resources are released by run before the process exits.
	if err := run(logger, cfg, beaconHome); err != nil {
		logger.Error("Beacon stopped with an error", log.Error(err))
		log.Sync()
		os.Exit(1)
	}
	log.Sync()
}

// run starts the server and blocks until it stops, releasing the resources it acquired.
func run(logger *log.Logger, cfg *config.Config, beaconHome string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbProvider := provider.NewDBProvider(cfg.Database, beaconHome)
	defer func() {
		if err := dbProvider.Close(); err != nil {
			logger.Error("Failed to close the database connections", log.Error(err))
		}
	}()

	authzStore, closeStore, err := initAuthorizationStore(ctx, logger, cfg, dbProvider)
	if err != nil {
		return err
	}
	defer closeStore()

	jwtService, err := jwt.NewJWTServiceFromFile(resolvePath(beaconHome, cfg.OAuth.IDToken.SigningKeyFile),
		cfg.OAuth.IDToken.KeyID)
	if err != nil {
		return fmt.Errorf("failed to load the signing key: %w", err)
	}

	// Initialize the multiplexer and register services.
	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, cfg, dbProvider, authzStore, jwtService, metrics.NewMetrics())
	if err := serviceManager.RegisterServices(); err != nil {
		return fmt.Errorf("failed to register the services: %w", err)
	}

	go serviceManager.RunExpiredAuthorizationCleanup(ctx, cleanupInterval)

	return startServer(ctx, logger, cfg, mux, beaconHome)
}

// getBeaconHome retrieves and returns the Beacon home directory.
func getBeaconHome(logger *log.Logger) string {
	projectHomeFlag := flag.String("beaconHome", "", "Path to the Beacon home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		logger.Info("Using beaconHome from command line argument", log.String("beaconHome", *projectHomeFlag))
		return *projectHomeFlag
	}

	// If no command line argument is provided, use the current working directory.
	dir, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}

// initConfigurations loads the deployment configuration of the server.
func initConfigurations(logger *log.Logger, beaconHome string) *config.Config {
	configFilePath := path.Join(beaconHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}
	return cfg
}

// initAuthorizationStore creates the configured authorization store and returns it with a
// function releasing its resources.
func initAuthorizationStore(ctx context.Context, logger *log.Logger, cfg *config.Config,
	dbProvider provider.DBProviderInterface) (authzstore.AuthorizationStoreInterface, func(), error) {
	if cfg.OAuth.AuthorizationStore != config.AuthorizationStoreRedis {
		logger.Info("Using the runtime database for authorizations")
		return authzstore.NewAuthorizationStore(dbProvider), func() {}, nil
	}

	pendingValidity := time.Duration(cfg.OAuth.PendingAuthorization.ValidityPeriod) * time.Second
	redisStore, err := authzstore.NewRedisAuthorizationStore(ctx, cfg.Redis, pendingValidity)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize the redis authorization store: %w", err)
	}
	logger.Info("Using redis for authorizations", log.Bool("sentinel", cfg.Redis.MasterName != ""))

	return redisStore, func() {
		if err := redisStore.Close(); err != nil {
			logger.Error("Failed to close the redis client", log.Error(err))
		}
	}, nil
}

// startServer serves the multiplexer until the context is cancelled and then shuts down gracefully.
func startServer(ctx context.Context, logger *log.Logger, cfg *config.Config, mux *http.ServeMux,
	beaconHome string) error {
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           log.AccessLogHandler(logger, mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	tlsEnabled := cert.IsTLSEnabled(cfg.Security)
	if tlsEnabled {
		tlsConfig, err := cert.GetTLSConfig(cfg.Security, beaconHome)
		if err != nil {
			return fmt.Errorf("failed to load TLS configuration: %w", err)
		}
		server.TLSConfig = tlsConfig
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting Beacon...", log.String("address", serverAddr), log.Bool("tls", tlsEnabled))
		var err error
		if tlsEnabled {
			err = server.ListenAndServeTLS("", "")
		} else {
			err = server.ListenAndServe()
		}
		serverErr <- err
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Shutting down the server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down the server gracefully: %w", err)
		}
		return nil
	}
}

func resolvePath(home, file string) string {
	if file == "" || path.IsAbs(file) {
		return file
	}
	return path.Join(home, file)
}
