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

// Package cert loads the server certificate used to serve the endpoints over TLS.
package cert

import (
	"crypto/tls"
	"errors"
	"os"
	"path"

	"github.com/asgardeo/beacon/internal/system/config"
)

// GetTLSConfig loads the TLS configuration from the configured certificate and key files.
// Relative file paths are resolved against the server home directory.
func GetTLSConfig(security config.SecurityConfig, home string) (*tls.Config, error) {
	certFilePath := resolve(home, security.CertFile)
	keyFilePath := resolve(home, security.KeyFile)

	if _, err := os.Stat(certFilePath); os.IsNotExist(err) {
		return nil, errors.New("certificate file not found at " + certFilePath)
	}
	if _, err := os.Stat(keyFilePath); os.IsNotExist(err) {
		return nil, errors.New("key file not found at " + keyFilePath)
	}

	certificate, err := tls.LoadX509KeyPair(certFilePath, keyFilePath)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{certificate},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// IsTLSEnabled reports whether both a certificate and a key are configured.
func IsTLSEnabled(security config.SecurityConfig) bool {
	return security.CertFile != "" && security.KeyFile != ""
}

func resolve(home, file string) string {
	if path.IsAbs(file) {
		return file
	}
	return path.Join(home, file)
}
