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

package cert

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/beacon/internal/system/config"
)

type CertTestSuite struct {
	suite.Suite
	testDir string
}

func TestCertSuite(t *testing.T) {
	suite.Run(t, new(CertTestSuite))
}

func (suite *CertTestSuite) SetupTest() {
	suite.testDir = suite.T().TempDir()
}

// writeTestCertificate writes a self-signed certificate and its key into the test directory.
func (suite *CertTestSuite) writeTestCertificate() {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(suite.T(), err)

	template := x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "localhost"},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		DNSNames:              []string{"localhost"},
	}
	derBytes, err := x509.CreateCertificate(rand.Reader, &template, &template, &privateKey.PublicKey, privateKey)
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), os.WriteFile(filepath.Join(suite.testDir, "server.cert"),
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: derBytes}), 0600))
	require.NoError(suite.T(), os.WriteFile(filepath.Join(suite.testDir, "server.key"),
		pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privateKey)}),
		0600))
}

func (suite *CertTestSuite) TestGetTLSConfig() {
	suite.writeTestCertificate()

	tlsConfig, err := GetTLSConfig(config.SecurityConfig{
		CertFile: "server.cert",
		KeyFile:  "server.key",
	}, suite.testDir)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), tlsConfig.Certificates, 1)
}

func (suite *CertTestSuite) TestGetTLSConfig_AbsolutePaths() {
	suite.writeTestCertificate()

	tlsConfig, err := GetTLSConfig(config.SecurityConfig{
		CertFile: filepath.Join(suite.testDir, "server.cert"),
		KeyFile:  filepath.Join(suite.testDir, "server.key"),
	}, "/nonexistent")

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), tlsConfig)
}

func (suite *CertTestSuite) TestGetTLSConfig_MissingFiles() {
	_, err := GetTLSConfig(config.SecurityConfig{CertFile: "server.cert", KeyFile: "server.key"}, suite.testDir)
	assert.ErrorContains(suite.T(), err, "certificate file not found")

	suite.writeTestCertificate()
	_, err = GetTLSConfig(config.SecurityConfig{CertFile: "server.cert", KeyFile: "other.key"}, suite.testDir)
	assert.ErrorContains(suite.T(), err, "key file not found")
}

func (suite *CertTestSuite) TestGetTLSConfig_InvalidPair() {
	require.NoError(suite.T(), os.WriteFile(filepath.Join(suite.testDir, "bad.cert"), []byte("bad"), 0600))
	require.NoError(suite.T(), os.WriteFile(filepath.Join(suite.testDir, "bad.key"), []byte("bad"), 0600))

	_, err := GetTLSConfig(config.SecurityConfig{CertFile: "bad.cert", KeyFile: "bad.key"}, suite.testDir)
	assert.Error(suite.T(), err)
}

func (suite *CertTestSuite) TestIsTLSEnabled() {
	assert.False(suite.T(), IsTLSEnabled(config.SecurityConfig{}))
	assert.False(suite.T(), IsTLSEnabled(config.SecurityConfig{CertFile: "a"}))
	assert.True(suite.T(), IsTLSEnabled(config.SecurityConfig{CertFile: "a", KeyFile: "b"}))
}
