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

// Package jwtmock provides a mock implementation of the JWT service.
package jwtmock

import (
	"crypto/rsa"

	"github.com/stretchr/testify/mock"

	"github.com/asgardeo/beacon/internal/system/jwt"
)

// JWTServiceInterfaceMock is a mock implementation of the JWTServiceInterface.
type JWTServiceInterfaceMock struct {
	mock.Mock
}

// NewJWTServiceInterfaceMock creates a mock and asserts its expectations on cleanup.
func NewJWTServiceInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *JWTServiceInterfaceMock {
	m := &JWTServiceInterfaceMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// GetPublicKey provides a mock function with no fields.
func (m *JWTServiceInterfaceMock) GetPublicKey() *rsa.PublicKey {
	ret := m.Called()
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(*rsa.PublicKey)
}

// GetKeyID provides a mock function with no fields.
func (m *JWTServiceInterfaceMock) GetKeyID() string {
	ret := m.Called()
	return ret.String(0)
}

// GenerateJWT provides a mock function with given fields: sub, aud, iss, validityPeriod, claims.
func (m *JWTServiceInterfaceMock) GenerateJWT(sub, aud, iss string, validityPeriod int64,
	claims map[string]interface{}) (string, int64, error) {
	ret := m.Called(sub, aud, iss, validityPeriod, claims)
	return ret.String(0), ret.Get(1).(int64), ret.Error(2)
}

// VerifyJWT provides a mock function with given fields: token, aud, iss.
func (m *JWTServiceInterfaceMock) VerifyJWT(token, aud, iss string) (map[string]interface{}, error) {
	ret := m.Called(token, aud, iss)
	var claims map[string]interface{}
	if ret.Get(0) != nil {
		claims = ret.Get(0).(map[string]interface{})
	}
	return claims, ret.Error(1)
}

// GetJWKS provides a mock function with no fields.
func (m *JWTServiceInterfaceMock) GetJWKS() jwt.JWKS {
	ret := m.Called()
	return ret.Get(0).(jwt.JWKS)
}
