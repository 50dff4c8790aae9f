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

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"errors"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// Authorization store types.
const (
	AuthorizationStoreDatabase = "database"
	AuthorizationStoreRedis    = "redis"
)

const (
	defaultSecretLength             = 512
	defaultIDTokenValidityPeriod    = 120
	defaultPendingValidityPeriod    = 600
	defaultAuthzCodeValidityPeriod  = 600
	defaultLoginPath                = "/login"
	defaultSessionCookieName        = "beacon_session"
	defaultRedisKeyPrefix           = "beacon:oauth2:"
	defaultDatabaseMaxOpenConns     = 50
	defaultDatabaseMaxIdleConns     = 10
	defaultDatabaseConnMaxLifetime  = 3600
	defaultClientCacheSize          = 1000
	defaultClientCacheTTL           = 300
	defaultServerPort               = 8090
	defaultServerHostname           = "localhost"
	defaultSigningKeyIDWhenNotGiven = "beacon-signing-key"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
}

// SecurityConfig holds the security configuration details.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Identity DataSource `yaml:"identity"`
	Runtime  DataSource `yaml:"runtime"`
}

// RedisConfig holds the Redis connection details used by the Redis backed authorization store.
// Without a master name the single address is a standalone server. With a master name the
// addresses are the Sentinels monitoring that master.
type RedisConfig struct {
	Addresses  []string `yaml:"addresses"`
	MasterName string   `yaml:"master_name"`
	Username   string   `yaml:"username"`
	Password   string   `yaml:"password"`
	DB         int      `yaml:"db"`
	KeyPrefix  string   `yaml:"key_prefix"`
}

// CacheConfig holds the client registry cache configuration.
type CacheConfig struct {
	Disabled bool `yaml:"disabled"`
	Size     int  `yaml:"size"`
	TTL      int  `yaml:"ttl"`
}

// CORSConfig holds the CORS configuration details.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// SiteConfig holds the details of the site on behalf of which tokens are issued.
type SiteConfig struct {
	ID            string `yaml:"id"`
	CanonicalHost string `yaml:"canonical_host"`
	LoginPage     string `yaml:"login_page"`
	DefaultLogin  string `yaml:"default_login"`
}

// AuthnConfig holds the details required to recognize an authenticated site user.
type AuthnConfig struct {
	SessionCookieName string `yaml:"session_cookie_name"`
	SessionSecret     string `yaml:"session_secret"`
}

// ValidityConfig holds a validity period in seconds.
type ValidityConfig struct {
	ValidityPeriod int64 `yaml:"validity_period"`
}

// IDTokenConfig holds the configuration of the identity JWT returned by the token endpoint.
type IDTokenConfig struct {
	ValidityPeriod int64  `yaml:"validity_period"`
	KeyID          string `yaml:"key_id"`
	SigningKeyFile string `yaml:"signing_key_file"`
}

// OAuthConfig holds the OAuth configuration details.
type OAuthConfig struct {
	AuthorizationStore   string         `yaml:"authorization_store"`
	SecretLength         int            `yaml:"secret_length"`
	PendingAuthorization ValidityConfig `yaml:"pending_authorization"`
	AuthorizationCode    ValidityConfig `yaml:"authorization_code"`
	IDToken              IDTokenConfig  `yaml:"id_token"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Security SecurityConfig `yaml:"security"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Cache    CacheConfig    `yaml:"cache"`
	CORS     CORSConfig     `yaml:"cors"`
	Site     SiteConfig     `yaml:"site"`
	Authn    AuthnConfig    `yaml:"authn"`
	OAuth    OAuthConfig    `yaml:"oauth"`
}

// LoadConfig loads the configurations from the specified YAML file and applies the defaults.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills the unset configuration values with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Server.Hostname == "" {
		c.Server.Hostname = defaultServerHostname
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultServerPort
	}
	applyDataSourceDefaults(&c.Database.Identity)
	applyDataSourceDefaults(&c.Database.Runtime)

	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = defaultRedisKeyPrefix
	}
	if c.Cache.Size <= 0 {
		c.Cache.Size = defaultClientCacheSize
	}
	if c.Cache.TTL <= 0 {
		c.Cache.TTL = defaultClientCacheTTL
	}

	if c.Site.DefaultLogin == "" {
		c.Site.DefaultLogin = defaultLoginPath
	}
	if c.Site.CanonicalHost == "" {
		c.Site.CanonicalHost = c.Server.Hostname
	}
	if c.Authn.SessionCookieName == "" {
		c.Authn.SessionCookieName = defaultSessionCookieName
	}

	if c.OAuth.AuthorizationStore == "" {
		c.OAuth.AuthorizationStore = AuthorizationStoreDatabase
	}
	if c.OAuth.SecretLength <= 0 {
		c.OAuth.SecretLength = defaultSecretLength
	}
	if c.OAuth.PendingAuthorization.ValidityPeriod <= 0 {
		c.OAuth.PendingAuthorization.ValidityPeriod = defaultPendingValidityPeriod
	}
	if c.OAuth.AuthorizationCode.ValidityPeriod <= 0 {
		c.OAuth.AuthorizationCode.ValidityPeriod = defaultAuthzCodeValidityPeriod
	}
	if c.OAuth.IDToken.ValidityPeriod <= 0 {
		c.OAuth.IDToken.ValidityPeriod = defaultIDTokenValidityPeriod
	}
	if c.OAuth.IDToken.KeyID == "" {
		c.OAuth.IDToken.KeyID = defaultSigningKeyIDWhenNotGiven
	}
}

// Validate checks the configuration for values that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.OAuth.AuthorizationStore {
	case AuthorizationStoreDatabase:
	case AuthorizationStoreRedis:
		if len(c.Redis.Addresses) == 0 {
			return errors.New("redis addresses are required when the redis authorization store is used")
		}
		if len(c.Redis.Addresses) > 1 && c.Redis.MasterName == "" {
			return errors.New("redis master_name is required when more than one redis address is given")
		}
	default:
		return errors.New("unsupported authorization store: " + c.OAuth.AuthorizationStore)
	}
	if c.Authn.SessionSecret == "" {
		return errors.New("authn session secret is required")
	}
	return nil
}

func applyDataSourceDefaults(ds *DataSource) {
	if ds.MaxOpenConns <= 0 {
		ds.MaxOpenConns = defaultDatabaseMaxOpenConns
	}
	if ds.MaxIdleConns <= 0 {
		ds.MaxIdleConns = defaultDatabaseMaxIdleConns
	}
	if ds.ConnMaxLifetime <= 0 {
		ds.ConnMaxLifetime = defaultDatabaseConnMaxLifetime
	}
}
