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

// Package jwt provides functionality for generating and verifying the signed identity tokens.
package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/asgardeo/beacon/internal/system/log"
	"github.com/asgardeo/beacon/internal/system/utils"
)

const ephemeralKeySize = 2048

var (
	// ErrKeyNotLoaded is returned when a token is requested before a signing key is available.
	ErrKeyNotLoaded = errors.New("private key not loaded")
	// ErrInvalidToken is returned when a token fails signature or claim verification.
	ErrInvalidToken = errors.New("invalid token")
)

// JWTServiceInterface defines the interface for JWT operations.
type JWTServiceInterface interface {
	GetPublicKey() *rsa.PublicKey
	GetKeyID() string
	GenerateJWT(sub, aud, iss string, validityPeriod int64, claims map[string]interface{}) (string, int64, error)
	VerifyJWT(token, aud, iss string) (map[string]interface{}, error)
	GetJWKS() JWKS
}

// JWTService implements the JWTServiceInterface using RS256 signatures.
type JWTService struct {
	privateKey *rsa.PrivateKey
	keyID      string
	timeNow    func() time.Time
}

// NewJWTService creates a JWT service signing with the given key.
func NewJWTService(privateKey *rsa.PrivateKey, keyID string) JWTServiceInterface {
	return &JWTService{
		privateKey: privateKey,
		keyID:      keyID,
		timeNow:    time.Now,
	}
}

// NewJWTServiceFromFile loads a PEM encoded RSA private key from the file and creates a JWT
// service with it. When no file is given an ephemeral key is generated, which means tokens
// issued before a restart can no longer be verified.
func NewJWTServiceFromFile(keyFilePath, keyID string) (JWTServiceInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "JWTService"))

	if keyFilePath == "" {
		logger.Warn("No signing key configured. Generating an ephemeral signing key")
		key, err := rsa.GenerateKey(rand.Reader, ephemeralKeySize)
		if err != nil {
			return nil, fmt.Errorf("failed to generate signing key: %w", err)
		}
		return NewJWTService(key, keyID), nil
	}

	key, err := loadPrivateKey(keyFilePath)
	if err != nil {
		return nil, err
	}
	return NewJWTService(key, keyID), nil
}

// GetPublicKey returns the RSA public key corresponding to the server's private key.
func (js *JWTService) GetPublicKey() *rsa.PublicKey {
	if js.privateKey == nil {
		return nil
	}
	return &js.privateKey.PublicKey
}

// GetKeyID returns the identifier published for the signing key.
func (js *JWTService) GetKeyID() string {
	return js.keyID
}

// GenerateJWT generates a JWT signed with the server's private key. Custom claims never
// override the registered claims set here. Returns the token and its issued at time.
func (js *JWTService) GenerateJWT(sub, aud, iss string, validityPeriod int64,
	claims map[string]interface{}) (string, int64, error) {
	if js.privateKey == nil {
		return "", 0, ErrKeyNotLoaded
	}

	iat := js.timeNow()
	payload := gojwt.MapClaims{}
	for key, value := range claims {
		payload[key] = value
	}
	if sub != "" {
		payload["sub"] = sub
	}
	payload["iss"] = iss
	payload["aud"] = aud
	payload["iat"] = iat.Unix()
	payload["nbf"] = iat.Unix()
	payload["exp"] = iat.Add(time.Duration(validityPeriod) * time.Second).Unix()
	payload["jti"] = utils.GenerateUUID()

	token := gojwt.NewWithClaims(gojwt.SigningMethodRS256, payload)
	token.Header["kid"] = js.keyID

	signed, err := token.SignedString(js.privateKey)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, iat.Unix(), nil
}

// VerifyJWT verifies the signature, lifetime, audience and issuer of a token issued by this
// service and returns its claims.
func (js *JWTService) VerifyJWT(token, aud, iss string) (map[string]interface{}, error) {
	if js.privateKey == nil {
		return nil, ErrKeyNotLoaded
	}

	claims := gojwt.MapClaims{}
	_, err := gojwt.ParseWithClaims(token, claims, func(t *gojwt.Token) (interface{}, error) {
		return &js.privateKey.PublicKey, nil
	},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodRS256.Alg()}),
		gojwt.WithAudience(aud),
		gojwt.WithIssuer(iss),
		gojwt.WithTimeFunc(js.timeNow),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return claims, nil
}

// loadPrivateKey reads a PKCS1 or PKCS8 encoded RSA private key.
func loadPrivateKey(keyFilePath string) (*rsa.PrivateKey, error) {
	keyFilePath = filepath.Clean(keyFilePath)
	if _, err := os.Stat(keyFilePath); os.IsNotExist(err) {
		return nil, errors.New("key file not found at " + keyFilePath)
	}

	keyData, err := os.ReadFile(keyFilePath)
	if err != nil {
		return nil, err
	}

	block, _ := pem.Decode(keyData)
	if block == nil {
		return nil, errors.New("failed to decode PEM block containing private key")
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		return x509.ParsePKCS1PrivateKey(block.Bytes)
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, err
		}
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("not an RSA private key")
		}
		return rsaKey, nil
	default:
		return nil, errors.New("unsupported private key type: " + block.Type)
	}
}
